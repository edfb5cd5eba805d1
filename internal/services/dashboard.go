package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"

	"go.uber.org/zap"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type DashboardService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	memberRepo    repositories.MemberRepositoryInterface
	logger        *zap.Logger
}

func NewDashboardService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	memberRepo repositories.MemberRepositoryInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		equipmentRepo: equipmentRepo,
		requestRepo:   requestRepo,
		teamRepo:      teamRepo,
		memberRepo:    memberRepo,
		logger:        logger,
	}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	equipmentByStatus, err := s.equipmentRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	requestsByStage, err := s.requestRepo.CountByStage(ctx)
	if err != nil {
		return nil, err
	}
	teamsTotal, err := s.teamRepo.CountTeams(ctx)
	if err != nil {
		return nil, err
	}
	membersTotal, err := s.memberRepo.CountMembers(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsDTO{
		EquipmentByStatus: equipmentByStatus,
		RequestsByStage:   requestsByStage,
		TeamsTotal:        teamsTotal,
		MembersTotal:      membersTotal,
	}
	for _, count := range equipmentByStatus {
		stats.EquipmentTotal += count
	}
	for stage, count := range requestsByStage {
		stats.RequestsTotal += count
		if stage == entities.StageNew || stage == entities.StageInProgress {
			stats.OpenRequests += count
		}
	}
	return stats, nil
}
