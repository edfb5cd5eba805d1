package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// formatRequestNumber renders the human-readable number for a request created
// at t with the given monthly sequence, e.g. REQ-202503-0001.
func formatRequestNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("REQ-%s-%04d", t.Format("200601"), seq)
}

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, filter dto.RequestListFilter) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id uuid.UUID, payload dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error)
	UpdateRequestStage(ctx context.Context, id uuid.UUID, stage string) (*entities.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id uuid.UUID) error
	GetCalendarEvents(ctx context.Context, rng dto.CalendarRangeDTO) ([]entities.MaintenanceRequest, error)
	GetEquipmentHistory(ctx context.Context, equipmentID uuid.UUID) ([]entities.MaintenanceRequest, error)
}

type RequestService struct {
	txManager     repositories.TxManagerInterface
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	sequenceRepo  repositories.SequenceRepositoryInterface
	activityRepo  repositories.ActivityRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	logger        *zap.Logger
}

func NewRequestService(
	txManager repositories.TxManagerInterface,
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	sequenceRepo repositories.SequenceRepositoryInterface,
	activityRepo repositories.ActivityRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		txManager:     txManager,
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		sequenceRepo:  sequenceRepo,
		activityRepo:  activityRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func actorFromContext(ctx context.Context) (uuid.NullUUID, null.String) {
	var userID uuid.NullUUID
	var userName null.String
	if id, err := utils.UserIDFromContext(ctx); err == nil {
		userID = uuid.NullUUID{UUID: id, Valid: true}
	}
	if name := utils.UserNameFromContext(ctx); name != "" {
		userName = null.StringFrom(name)
	}
	return userID, userName
}

// GetRequests lists requests. Callers without the view-all capability are
// scoped down to their own team's requests.
func (s *RequestService) GetRequests(ctx context.Context, filter dto.RequestListFilter) ([]entities.MaintenanceRequest, error) {
	role, err := utils.UserRoleFromContext(ctx)
	if err == nil && !authz.Can(role, authz.RequestsViewAll) {
		if id, err := utils.UserIDFromContext(ctx); err == nil {
			user, err := s.userRepo.FindUser(ctx, id)
			if err != nil {
				return nil, err
			}
			if user.TeamID.Valid {
				filter.TeamID = utils.ToPtr(user.TeamID.UUID)
			}
		}
	}
	return s.requestRepo.GetRequests(ctx, filter)
}

func (s *RequestService) FindRequest(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	return s.requestRepo.FindRequest(ctx, id)
}

// CreateRequest creates a work order in a single transaction: bump the
// monthly counter, auto-fill team/technician from the equipment defaults,
// force the equipment into under-maintenance (unless already scrapped),
// insert the request and append the activity row.
func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error) {
	now := time.Now()

	request := &entities.MaintenanceRequest{
		Subject:       payload.Subject,
		Description:   null.StringFromPtr(payload.Description),
		Type:          entities.RequestTypeCorrective,
		Stage:         entities.StageNew,
		Priority:      entities.PriorityMedium,
		ScheduledDate: null.TimeFromPtr(payload.ScheduledDate),
		Duration:      null.IntFromPtr(intPtrFrom(payload.Duration)),
		Cost:          null.Float64FromPtr(payload.Cost),
		Notes:         null.StringFromPtr(payload.Notes),
	}
	if payload.Type != nil {
		request.Type = *payload.Type
	}
	if payload.Priority != nil {
		request.Priority = *payload.Priority
	}
	if payload.EquipmentID != nil {
		request.EquipmentID = uuid.NullUUID{UUID: *payload.EquipmentID, Valid: true}
	}
	if payload.TeamID != nil {
		request.TeamID = uuid.NullUUID{UUID: *payload.TeamID, Valid: true}
	}
	if payload.AssignedToID != nil {
		request.AssignedToID = uuid.NullUUID{UUID: *payload.AssignedToID, Valid: true}
	}
	if payload.CreatedByID != nil {
		request.CreatedByID = uuid.NullUUID{UUID: *payload.CreatedByID, Valid: true}
	}

	var createdID uuid.UUID
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		seq, err := s.sequenceRepo.NextRequestSequence(ctx, tx, now.Format("200601"))
		if err != nil {
			return fmt.Errorf("next request sequence: %w", err)
		}
		request.RequestNumber = formatRequestNumber(now, seq)

		if request.EquipmentID.Valid {
			equipment, err := s.equipmentRepo.FindEquipmentForUpdate(ctx, tx, request.EquipmentID.UUID)
			if err != nil {
				return apperrors.NewHttpError(http.StatusBadRequest, "equipment not found", err, nil)
			}

			// Auto-fill: equipment defaults only fill blanks, never
			// override an explicit choice.
			if !request.TeamID.Valid && equipment.MaintenanceTeamID.Valid {
				request.TeamID = equipment.MaintenanceTeamID
			}
			if !request.AssignedToID.Valid && equipment.DefaultTechnicianID.Valid {
				request.AssignedToID = equipment.DefaultTechnicianID
			}

			// Scrapped equipment stays scrapped; everything else goes
			// under maintenance.
			if equipment.Status != entities.EquipmentStatusScrapped {
				if err := s.equipmentRepo.UpdateEquipmentStatus(ctx, tx, equipment.ID, entities.EquipmentStatusUnderMaintenance); err != nil {
					return err
				}
			}
		}

		createdID, err = s.requestRepo.CreateRequest(ctx, tx, request)
		if err != nil {
			return err
		}

		actorID, actorName := actorFromContext(ctx)
		_, err = s.activityRepo.CreateActivity(ctx, tx, &entities.Activity{
			Type:        entities.ActivityRequestCreated,
			Title:       "Maintenance request created",
			Description: fmt.Sprintf("%s (%s)", request.Subject, request.RequestNumber),
			UserID:      actorID,
			UserName:    actorName,
			Metadata: &entities.ActivityMetadata{
				RequestID:   createdID.String(),
				EquipmentID: uuidStringOrEmpty(request.EquipmentID),
				TeamID:      uuidStringOrEmpty(request.TeamID),
				Priority:    request.Priority,
			},
		})
		return err
	})
	if err != nil {
		s.logger.Error("failed to create maintenance request", zap.Error(err))
		return nil, err
	}

	return s.requestRepo.FindRequest(ctx, createdID)
}

// applyStage mutates the loaded request for the new stage value and runs the
// equipment side effect. Both the full update and the kanban stage move go
// through here so they cannot diverge.
func (s *RequestService) applyStage(ctx context.Context, tx pgx.Tx, request *entities.MaintenanceRequest, newStage string) (activityType string, err error) {
	request.Stage = newStage

	eff := effectsForStage(newStage)
	if eff.SetCompleted {
		request.CompletedDate = null.TimeFrom(time.Now())
	}
	if eff.EquipmentStatus != "" && request.EquipmentID.Valid {
		if err := s.equipmentRepo.UpdateEquipmentStatus(ctx, tx, request.EquipmentID.UUID, eff.EquipmentStatus); err != nil {
			return "", err
		}
	}

	if eff.SetCompleted {
		return entities.ActivityRequestCompleted, nil
	}
	return entities.ActivityRequestUpdated, nil
}

func (s *RequestService) UpdateRequest(ctx context.Context, id uuid.UUID, payload dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error) {
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		request, err := s.requestRepo.FindRequestForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if payload.Subject != nil {
			request.Subject = *payload.Subject
		}
		if payload.Description != nil {
			request.Description = null.StringFrom(*payload.Description)
		}
		if payload.Type != nil {
			request.Type = *payload.Type
		}
		if payload.Priority != nil {
			request.Priority = *payload.Priority
		}
		if payload.ScheduledDate != nil {
			request.ScheduledDate = null.TimeFrom(*payload.ScheduledDate)
		}
		if payload.Duration != nil {
			request.Duration = null.IntFrom(int(*payload.Duration))
		}
		if payload.Cost != nil {
			request.Cost = null.Float64From(*payload.Cost)
		}
		if payload.Notes != nil {
			request.Notes = null.StringFrom(*payload.Notes)
		}
		if payload.EquipmentID != nil {
			request.EquipmentID = uuid.NullUUID{UUID: *payload.EquipmentID, Valid: true}
		}
		if payload.TeamID != nil {
			request.TeamID = uuid.NullUUID{UUID: *payload.TeamID, Valid: true}
		}
		if payload.AssignedToID != nil {
			request.AssignedToID = uuid.NullUUID{UUID: *payload.AssignedToID, Valid: true}
		}

		activityType := entities.ActivityRequestUpdated
		if payload.Stage != nil {
			activityType, err = s.applyStage(ctx, tx, request, *payload.Stage)
			if err != nil {
				return err
			}
		}

		if err := s.requestRepo.SaveRequest(ctx, tx, request); err != nil {
			return err
		}

		actorID, actorName := actorFromContext(ctx)
		_, err = s.activityRepo.CreateActivity(ctx, tx, &entities.Activity{
			Type:        activityType,
			Title:       "Maintenance request updated",
			Description: fmt.Sprintf("%s (%s)", request.Subject, request.RequestNumber),
			UserID:      actorID,
			UserName:    actorName,
			Metadata: &entities.ActivityMetadata{
				RequestID:   request.ID.String(),
				EquipmentID: uuidStringOrEmpty(request.EquipmentID),
				Status:      request.Stage,
				Priority:    request.Priority,
			},
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.requestRepo.FindRequest(ctx, id)
}

// UpdateRequestStage backs the kanban drag-and-drop PATCH. It cascades to the
// equipment exactly like the full update path.
func (s *RequestService) UpdateRequestStage(ctx context.Context, id uuid.UUID, stage string) (*entities.MaintenanceRequest, error) {
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		request, err := s.requestRepo.FindRequestForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		activityType, err := s.applyStage(ctx, tx, request, stage)
		if err != nil {
			return err
		}

		if err := s.requestRepo.SaveRequest(ctx, tx, request); err != nil {
			return err
		}

		actorID, actorName := actorFromContext(ctx)
		_, err = s.activityRepo.CreateActivity(ctx, tx, &entities.Activity{
			Type:        activityType,
			Title:       "Request stage changed",
			Description: fmt.Sprintf("%s moved to %s", request.RequestNumber, stage),
			UserID:      actorID,
			UserName:    actorName,
			Metadata: &entities.ActivityMetadata{
				RequestID:   request.ID.String(),
				EquipmentID: uuidStringOrEmpty(request.EquipmentID),
				Status:      stage,
			},
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.requestRepo.FindRequest(ctx, id)
}

func (s *RequestService) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	return s.requestRepo.DeleteRequest(ctx, id)
}

func (s *RequestService) GetCalendarEvents(ctx context.Context, rng dto.CalendarRangeDTO) ([]entities.MaintenanceRequest, error) {
	return s.requestRepo.GetCalendarEvents(ctx, rng)
}

func (s *RequestService) GetEquipmentHistory(ctx context.Context, equipmentID uuid.UUID) ([]entities.MaintenanceRequest, error) {
	return s.requestRepo.GetEquipmentHistory(ctx, equipmentID)
}

func uuidStringOrEmpty(id uuid.NullUUID) string {
	if !id.Valid {
		return ""
	}
	return id.UUID.String()
}

func intPtrFrom(v *int64) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
