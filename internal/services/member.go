package services

import (
	"context"
	"fmt"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MemberServiceInterface interface {
	GetMembers(ctx context.Context) ([]entities.TeamMember, error)
	FindMember(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error)
	CreateMember(ctx context.Context, payload dto.CreateMemberDTO) (*entities.TeamMember, error)
	UpdateMember(ctx context.Context, id uuid.UUID, payload dto.UpdateMemberDTO) (*entities.TeamMember, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
}

type MemberService struct {
	memberRepo   repositories.MemberRepositoryInterface
	activityRepo repositories.ActivityRepositoryInterface
	logger       *zap.Logger
}

func NewMemberService(
	memberRepo repositories.MemberRepositoryInterface,
	activityRepo repositories.ActivityRepositoryInterface,
	logger *zap.Logger,
) MemberServiceInterface {
	return &MemberService{memberRepo: memberRepo, activityRepo: activityRepo, logger: logger}
}

func (s *MemberService) GetMembers(ctx context.Context) ([]entities.TeamMember, error) {
	return s.memberRepo.GetMembers(ctx)
}

func (s *MemberService) FindMember(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error) {
	return s.memberRepo.FindMember(ctx, id)
}

func (s *MemberService) CreateMember(ctx context.Context, payload dto.CreateMemberDTO) (*entities.TeamMember, error) {
	id, err := s.memberRepo.CreateMember(ctx, payload)
	if err != nil {
		return nil, err
	}

	actorID, actorName := actorFromContext(ctx)
	metadata := &entities.ActivityMetadata{MemberID: id.String()}
	if payload.TeamID != nil {
		metadata.TeamID = payload.TeamID.String()
	}
	if _, err := s.activityRepo.RecordActivity(ctx, &entities.Activity{
		Type:        entities.ActivityMemberAdded,
		Title:       "Team member added",
		Description: fmt.Sprintf("%s joined the roster", payload.Name),
		UserID:      actorID,
		UserName:    actorName,
		Metadata:    metadata,
	}); err != nil {
		s.logger.Warn("failed to record member activity", zap.Error(err))
	}

	return s.memberRepo.FindMember(ctx, id)
}

func (s *MemberService) UpdateMember(ctx context.Context, id uuid.UUID, payload dto.UpdateMemberDTO) (*entities.TeamMember, error) {
	if err := s.memberRepo.UpdateMember(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.memberRepo.FindMember(ctx, id)
}

func (s *MemberService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	return s.memberRepo.DeleteMember(ctx, id)
}
