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

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindTeam(ctx context.Context, id uuid.UUID) (*entities.MaintenanceTeam, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.MaintenanceTeam, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, payload dto.UpdateTeamDTO) (*entities.MaintenanceTeam, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

type TeamService struct {
	teamRepo     repositories.TeamRepositoryInterface
	activityRepo repositories.ActivityRepositoryInterface
	logger       *zap.Logger
}

func NewTeamService(
	teamRepo repositories.TeamRepositoryInterface,
	activityRepo repositories.ActivityRepositoryInterface,
	logger *zap.Logger,
) TeamServiceInterface {
	return &TeamService{teamRepo: teamRepo, activityRepo: activityRepo, logger: logger}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	return s.teamRepo.GetTeams(ctx)
}

func (s *TeamService) FindTeam(ctx context.Context, id uuid.UUID) (*entities.MaintenanceTeam, error) {
	return s.teamRepo.FindTeam(ctx, id)
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.MaintenanceTeam, error) {
	id, err := s.teamRepo.CreateTeam(ctx, payload)
	if err != nil {
		return nil, err
	}

	actorID, actorName := actorFromContext(ctx)
	if _, err := s.activityRepo.RecordActivity(ctx, &entities.Activity{
		Type:        entities.ActivityTeamAssigned,
		Title:       "Maintenance team created",
		Description: fmt.Sprintf("Team %q created", payload.Name),
		UserID:      actorID,
		UserName:    actorName,
		Metadata:    &entities.ActivityMetadata{TeamID: id.String()},
	}); err != nil {
		s.logger.Warn("failed to record team activity", zap.Error(err))
	}

	return s.teamRepo.FindTeam(ctx, id)
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uuid.UUID, payload dto.UpdateTeamDTO) (*entities.MaintenanceTeam, error) {
	if err := s.teamRepo.UpdateTeam(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.teamRepo.FindTeam(ctx, id)
}

func (s *TeamService) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	return s.teamRepo.DeleteTeam(ctx, id)
}
