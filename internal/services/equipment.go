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

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
	GetMaintenanceHistory(ctx context.Context, id uuid.UUID) ([]entities.MaintenanceRequest, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	activityRepo  repositories.ActivityRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	activityRepo repositories.ActivityRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		requestRepo:   requestRepo,
		activityRepo:  activityRepo,
		logger:        logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	return s.equipmentRepo.GetEquipments(ctx)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	id, err := s.equipmentRepo.CreateEquipment(ctx, payload)
	if err != nil {
		return nil, err
	}
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	if err := s.equipmentRepo.UpdateEquipment(ctx, id, payload); err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	actorID, actorName := actorFromContext(ctx)
	if _, err := s.activityRepo.RecordActivity(ctx, &entities.Activity{
		Type:        entities.ActivityEquipmentUpdated,
		Title:       "Equipment updated",
		Description: fmt.Sprintf("%s (%s)", equipment.Name, equipment.SerialNumber),
		UserID:      actorID,
		UserName:    actorName,
		Metadata: &entities.ActivityMetadata{
			EquipmentID: equipment.ID.String(),
			Status:      equipment.Status,
		},
	}); err != nil {
		s.logger.Warn("failed to record equipment activity", zap.Error(err))
	}

	return equipment, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	return s.equipmentRepo.DeleteEquipment(ctx, id)
}

// GetMaintenanceHistory lists all requests ever raised against the equipment,
// newest first.
func (s *EquipmentService) GetMaintenanceHistory(ctx context.Context, id uuid.UUID) ([]entities.MaintenanceRequest, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, id); err != nil {
		return nil, err
	}
	return s.requestRepo.GetEquipmentHistory(ctx, id)
}
