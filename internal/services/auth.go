package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	jwtservice "gearguard/pkg/service"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// formatManagerID renders a manager badge number like MGR-2503-0002.
func formatManagerID(t time.Time, n int64) string {
	return fmt.Sprintf("MGR-%s-%04d", t.Format("0601"), n)
}

func userCacheKey(id uuid.UUID) string {
	return "user:" + id.String()
}

type AuthServiceInterface interface {
	SignupAdmin(ctx context.Context, payload dto.SignupAdminDTO) (*entities.User, error)
	SignupMember(ctx context.Context, payload dto.SignupMemberDTO) (*entities.User, error)
	VerifyMember(ctx context.Context, payload dto.VerifyMemberDTO) (*dto.VerifyMemberResponseDTO, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*entities.User, error)
	GetUsers(ctx context.Context) ([]entities.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, payload dto.UpdateUserDTO) (*entities.User, error)
	DeactivateUser(ctx context.Context, id uuid.UUID) error
	ResolveActiveUser(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

type AuthService struct {
	userRepo     repositories.UserRepositoryInterface
	teamRepo     repositories.TeamRepositoryInterface
	memberRepo   repositories.MemberRepositoryInterface
	cacheRepo    repositories.CacheRepositoryInterface
	jwtService   jwtservice.JWTService
	userCacheTTL time.Duration
	logger       *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	memberRepo repositories.MemberRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService jwtservice.JWTService,
	userCacheTTL time.Duration,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:     userRepo,
		teamRepo:     teamRepo,
		memberRepo:   memberRepo,
		cacheRepo:    cacheRepo,
		jwtService:   jwtService,
		userCacheTTL: userCacheTTL,
		logger:       logger,
	}
}

// nextManagerID derives a badge number from the current admin count. When the
// number is already taken a random suffix is appended to keep it unique.
func (s *AuthService) nextManagerID(ctx context.Context, now time.Time) (string, error) {
	count, err := s.userRepo.CountByRole(ctx, authz.RoleAdmin)
	if err != nil {
		return "", err
	}

	managerID := formatManagerID(now, count+1)
	taken, err := s.userRepo.ManagerIDExists(ctx, managerID)
	if err != nil {
		return "", err
	}
	if taken {
		return fmt.Sprintf("%s-%d", managerID, rand.Intn(1000)), nil
	}
	return managerID, nil
}

func (s *AuthService) SignupAdmin(ctx context.Context, payload dto.SignupAdminDTO) (*entities.User, error) {
	exists, err := s.userRepo.ExistsByFirebaseUIDOrEmail(ctx, payload.FirebaseUID, payload.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "user already exists", nil, nil)
	}

	managerID, err := s.nextManagerID(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		FirebaseUID: payload.FirebaseUID,
		Email:       strings.ToLower(payload.Email),
		Name:        payload.Name,
		Role:        authz.RoleAdmin,
		ManagerID:   null.StringFrom(managerID),
		Department:  null.StringFromPtr(payload.Department),
		IsActive:    true,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info("admin signed up", zap.String("managerId", managerID))
	return s.userRepo.FindUser(ctx, id)
}

// verify checks the member-signup preconditions and reports the first failure
// as a user-facing message.
func (s *AuthService) verify(ctx context.Context, teamID, memberID uuid.UUID, email string) (*entities.TeamMember, string) {
	team, err := s.teamRepo.FindTeam(ctx, teamID)
	if err != nil || !team.IsActive {
		return nil, "team not found or inactive"
	}

	member, err := s.memberRepo.FindMemberInTeam(ctx, memberID, teamID)
	if err != nil {
		return nil, "member not found in the selected team"
	}
	if !member.IsActive {
		return nil, "member is inactive"
	}
	if !strings.EqualFold(member.Email, email) {
		return nil, "email does not match the team member record"
	}

	linked, err := s.userRepo.ExistsByMemberID(ctx, memberID)
	if err != nil || linked {
		return nil, "member is already linked to an account"
	}
	return member, ""
}

func (s *AuthService) VerifyMember(ctx context.Context, payload dto.VerifyMemberDTO) (*dto.VerifyMemberResponseDTO, error) {
	member, reason := s.verify(ctx, payload.TeamID, payload.MemberID, payload.Email)
	if member == nil {
		return &dto.VerifyMemberResponseDTO{Valid: false, Message: reason}, nil
	}
	return &dto.VerifyMemberResponseDTO{Valid: true, MemberName: member.Name}, nil
}

func (s *AuthService) SignupMember(ctx context.Context, payload dto.SignupMemberDTO) (*entities.User, error) {
	exists, err := s.userRepo.ExistsByFirebaseUIDOrEmail(ctx, payload.FirebaseUID, payload.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "user already exists", nil, nil)
	}

	member, reason := s.verify(ctx, payload.TeamID, payload.MemberID, payload.Email)
	if member == nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, reason, nil, nil)
	}

	user := &entities.User{
		FirebaseUID: payload.FirebaseUID,
		Email:       strings.ToLower(payload.Email),
		Name:        payload.Name,
		Role:        authz.RoleMember,
		TeamID:      uuid.NullUUID{UUID: payload.TeamID, Valid: true},
		MemberID:    uuid.NullUUID{UUID: payload.MemberID, Valid: true},
		IsActive:    true,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.userRepo.FindUser(ctx, id)
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindUserByFirebaseUID(ctx, payload.FirebaseUID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserDeactivated
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	s.cacheUser(ctx, user)

	return &dto.LoginResponseDTO{
		Token:     token,
		ExpiresIn: int64(s.jwtService.GetAccessTokenTTL().Seconds()),
		User:      user,
	}, nil
}

func (s *AuthService) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*entities.User, error) {
	return s.userRepo.FindUserByFirebaseUID(ctx, firebaseUID)
}

func (s *AuthService) GetUsers(ctx context.Context) ([]entities.User, error) {
	return s.userRepo.GetUsers(ctx)
}

func (s *AuthService) UpdateUser(ctx context.Context, id uuid.UUID, payload dto.UpdateUserDTO) (*entities.User, error) {
	if err := s.userRepo.UpdateUser(ctx, id, payload); err != nil {
		return nil, err
	}
	s.dropCachedUser(ctx, id)
	return s.userRepo.FindUser(ctx, id)
}

func (s *AuthService) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.DeactivateUser(ctx, id); err != nil {
		return err
	}
	s.dropCachedUser(ctx, id)
	return nil
}

// ResolveActiveUser returns the user for middleware checks, served from redis
// when fresh. An inactive user is an error, never a cache hit.
func (s *AuthService) ResolveActiveUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if cached, err := s.cacheRepo.Get(ctx, userCacheKey(id)); err == nil && cached != "" {
		var user entities.User
		if err := json.Unmarshal([]byte(cached), &user); err == nil {
			if !user.IsActive {
				return nil, apperrors.ErrUserDeactivated
			}
			return &user, nil
		}
	}

	user, err := s.userRepo.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserDeactivated
	}
	s.cacheUser(ctx, user)
	return user, nil
}

func (s *AuthService) cacheUser(ctx context.Context, user *entities.User) {
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := s.cacheRepo.Set(ctx, userCacheKey(user.ID), data, s.userCacheTTL); err != nil {
		s.logger.Debug("failed to cache user", zap.Error(err))
	}
}

func (s *AuthService) dropCachedUser(ctx context.Context, id uuid.UUID) {
	if err := s.cacheRepo.Del(ctx, userCacheKey(id)); err != nil {
		s.logger.Debug("failed to drop cached user", zap.Error(err))
	}
}
