package services

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	jwtservice "gearguard/pkg/service"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authServiceFixture struct {
	service    AuthServiceInterface
	userRepo   *fakeUserRepo
	teamRepo   *fakeTeamRepo
	memberRepo *fakeMemberRepo
	cacheRepo  *fakeCacheRepo
}

func newAuthServiceFixture() *authServiceFixture {
	f := &authServiceFixture{
		userRepo:   newFakeUserRepo(),
		teamRepo:   newFakeTeamRepo(),
		memberRepo: newFakeMemberRepo(),
		cacheRepo:  newFakeCacheRepo(),
	}
	jwtSvc := jwtservice.NewJWTService("test-secret", time.Hour, zap.NewNop())
	f.service = NewAuthService(f.userRepo, f.teamRepo, f.memberRepo, f.cacheRepo, jwtSvc, time.Minute, zap.NewNop())
	return f
}

func TestSignupAdminAssignsManagerID(t *testing.T) {
	f := newAuthServiceFixture()
	f.userRepo.add(&entities.User{Role: authz.RoleAdmin, ManagerID: null.StringFrom("MGR-0001-0001"), IsActive: true})
	f.userRepo.add(&entities.User{Role: authz.RoleAdmin, ManagerID: null.StringFrom("MGR-0001-0002"), IsActive: true})

	user, err := f.service.SignupAdmin(context.Background(), dto.SignupAdminDTO{
		FirebaseUID: "fb-admin-1",
		Email:       "Boss@Example.com",
		Name:        "Boss",
	})
	require.NoError(t, err)

	want := formatManagerID(time.Now(), 3)
	assert.Equal(t, want, user.ManagerID.String)
	assert.Equal(t, authz.RoleAdmin, user.Role)
	assert.Equal(t, "boss@example.com", user.Email)
	assert.True(t, user.IsActive)
}

// When the sequential badge number is already taken, a random 0-999 suffix is
// appended to the formatted ID rather than picking a different sequence.
func TestSignupAdminManagerIDCollisionAppendsSuffix(t *testing.T) {
	f := newAuthServiceFixture()
	taken := formatManagerID(time.Now(), 2)
	f.userRepo.add(&entities.User{Role: authz.RoleAdmin, ManagerID: null.StringFrom(taken), IsActive: true})

	user, err := f.service.SignupAdmin(context.Background(), dto.SignupAdminDTO{
		FirebaseUID: "fb-admin-2",
		Email:       "second@example.com",
		Name:        "Second",
	})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(user.ManagerID.String, taken+"-"))
	suffix, err := strconv.Atoi(strings.TrimPrefix(user.ManagerID.String, taken+"-"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, suffix, 0)
	assert.Less(t, suffix, 1000)
}

func TestSignupAdminRejectsDuplicate(t *testing.T) {
	f := newAuthServiceFixture()
	f.userRepo.add(&entities.User{FirebaseUID: "fb-admin-1", Email: "boss@example.com", Role: authz.RoleAdmin})

	_, err := f.service.SignupAdmin(context.Background(), dto.SignupAdminDTO{
		FirebaseUID: "fb-admin-1",
		Email:       "other@example.com",
		Name:        "Boss",
	})
	require.Error(t, err)
}

func membershipFixture(f *authServiceFixture) (teamID, memberID uuid.UUID) {
	teamID = f.teamRepo.add(&entities.MaintenanceTeam{Name: "Electrical Team", IsActive: true})
	memberID = f.memberRepo.add(&entities.TeamMember{
		Name:     "John Smith",
		Email:    "john.smith@gearguard.com",
		IsActive: true,
		TeamID:   uuid.NullUUID{UUID: teamID, Valid: true},
	})
	return teamID, memberID
}

func TestVerifyMemberHappyPath(t *testing.T) {
	f := newAuthServiceFixture()
	teamID, memberID := membershipFixture(f)

	res, err := f.service.VerifyMember(context.Background(), dto.VerifyMemberDTO{
		TeamID:   teamID,
		MemberID: memberID,
		Email:    "John.Smith@GearGuard.com",
	})
	require.NoError(t, err)

	assert.True(t, res.Valid)
	assert.Equal(t, "John Smith", res.MemberName)
}

func TestVerifyMemberEmailMismatch(t *testing.T) {
	f := newAuthServiceFixture()
	teamID, memberID := membershipFixture(f)

	res, err := f.service.VerifyMember(context.Background(), dto.VerifyMemberDTO{
		TeamID:   teamID,
		MemberID: memberID,
		Email:    "someone.else@gearguard.com",
	})
	require.NoError(t, err)

	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.Message)
}

func TestVerifyMemberWrongTeam(t *testing.T) {
	f := newAuthServiceFixture()
	_, memberID := membershipFixture(f)
	otherTeam := f.teamRepo.add(&entities.MaintenanceTeam{Name: "HVAC Team", IsActive: true})

	res, err := f.service.VerifyMember(context.Background(), dto.VerifyMemberDTO{
		TeamID:   otherTeam,
		MemberID: memberID,
		Email:    "john.smith@gearguard.com",
	})
	require.NoError(t, err)
	assert.False(t, res.Valid)
}

func TestVerifyMemberInactiveTeam(t *testing.T) {
	f := newAuthServiceFixture()
	teamID, memberID := membershipFixture(f)
	f.teamRepo.teams[teamID].IsActive = false

	res, err := f.service.VerifyMember(context.Background(), dto.VerifyMemberDTO{
		TeamID:   teamID,
		MemberID: memberID,
		Email:    "john.smith@gearguard.com",
	})
	require.NoError(t, err)
	assert.False(t, res.Valid)
}

func TestVerifyMemberAlreadyLinked(t *testing.T) {
	f := newAuthServiceFixture()
	teamID, memberID := membershipFixture(f)
	f.userRepo.add(&entities.User{
		FirebaseUID: "fb-existing",
		Email:       "john.smith@gearguard.com",
		Role:        authz.RoleMember,
		MemberID:    uuid.NullUUID{UUID: memberID, Valid: true},
	})

	res, err := f.service.VerifyMember(context.Background(), dto.VerifyMemberDTO{
		TeamID:   teamID,
		MemberID: memberID,
		Email:    "john.smith@gearguard.com",
	})
	require.NoError(t, err)
	assert.False(t, res.Valid)
}

func TestSignupMemberLinksTeamAndMember(t *testing.T) {
	f := newAuthServiceFixture()
	teamID, memberID := membershipFixture(f)

	user, err := f.service.SignupMember(context.Background(), dto.SignupMemberDTO{
		FirebaseUID: "fb-member-1",
		Email:       "john.smith@gearguard.com",
		Name:        "John Smith",
		TeamID:      teamID,
		MemberID:    memberID,
	})
	require.NoError(t, err)

	assert.Equal(t, authz.RoleMember, user.Role)
	assert.Equal(t, teamID, user.TeamID.UUID)
	assert.Equal(t, memberID, user.MemberID.UUID)
	assert.False(t, user.ManagerID.Valid)
}

func TestLoginIssuesToken(t *testing.T) {
	f := newAuthServiceFixture()
	f.userRepo.add(&entities.User{
		FirebaseUID: "fb-1",
		Email:       "boss@example.com",
		Name:        "Boss",
		Role:        authz.RoleAdmin,
		IsActive:    true,
	})

	res, err := f.service.Login(context.Background(), dto.LoginDTO{FirebaseUID: "fb-1"})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, int64(3600), res.ExpiresIn)
	assert.Equal(t, "Boss", res.User.Name)
}

func TestLoginRejectsDeactivatedUser(t *testing.T) {
	f := newAuthServiceFixture()
	f.userRepo.add(&entities.User{FirebaseUID: "fb-1", Role: authz.RoleAdmin, IsActive: false})

	_, err := f.service.Login(context.Background(), dto.LoginDTO{FirebaseUID: "fb-1"})
	assert.ErrorIs(t, err, apperrors.ErrUserDeactivated)
}

func TestResolveActiveUserRejectsDeactivated(t *testing.T) {
	f := newAuthServiceFixture()
	id := f.userRepo.add(&entities.User{FirebaseUID: "fb-1", Role: authz.RoleMember, IsActive: false})

	_, err := f.service.ResolveActiveUser(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrUserDeactivated)
}

func TestDeactivateUserDropsCache(t *testing.T) {
	f := newAuthServiceFixture()
	id := f.userRepo.add(&entities.User{FirebaseUID: "fb-1", Name: "Boss", Role: authz.RoleAdmin, IsActive: true})

	_, err := f.service.ResolveActiveUser(context.Background(), id)
	require.NoError(t, err)
	_, cached := f.cacheRepo.values[userCacheKey(id)]
	require.True(t, cached)

	require.NoError(t, f.service.DeactivateUser(context.Background(), id))
	_, cached = f.cacheRepo.values[userCacheKey(id)]
	assert.False(t, cached)
}
