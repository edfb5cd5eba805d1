package repositories

import (
	"context"
	"errors"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const requestBaseFields = `r.id, r.request_number, r.subject, r.description, r.type, r.stage, r.priority,
	r.scheduled_date, r.completed_date, r.duration, r.cost, r.notes,
	r.equipment_id, r.team_id, r.assigned_to_id, r.created_by_id, r.created_at, r.updated_at`

var requestRelationColumns = []string{
	"e.id", "e.name", "e.serial_number", "e.category", "e.location", "e.status",
	"t.id", "t.name", "t.specialization", "t.is_active",
	"a.id", "a.name", "a.email", "a.role",
	"c.id", "c.name", "c.email", "c.role",
}

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, filter dto.RequestListFilter) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error)
	FindRequestForUpdate(ctx context.Context, q Querier, id uuid.UUID) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, q Querier, request *entities.MaintenanceRequest) (uuid.UUID, error)
	SaveRequest(ctx context.Context, q Querier, request *entities.MaintenanceRequest) error
	DeleteRequest(ctx context.Context, id uuid.UUID) error
	GetCalendarEvents(ctx context.Context, rng dto.CalendarRangeDTO) ([]entities.MaintenanceRequest, error)
	GetEquipmentHistory(ctx context.Context, equipmentID uuid.UUID) ([]entities.MaintenanceRequest, error)
	CountByStage(ctx context.Context) (map[string]int64, error)
}

type RequestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) RequestRepositoryInterface {
	return &RequestRepository{storage: storage, logger: logger}
}

func requestSelectBuilder() sq.SelectBuilder {
	columns := append([]string{requestBaseFields}, requestRelationColumns...)
	return psql.Select(columns...).
		From("maintenance_requests r").
		LeftJoin("equipments e ON e.id = r.equipment_id").
		LeftJoin("maintenance_teams t ON t.id = r.team_id").
		LeftJoin("team_members a ON a.id = r.assigned_to_id").
		LeftJoin("team_members c ON c.id = r.created_by_id")
}

func scanRequestWithRelations(row pgx.Row) (*entities.MaintenanceRequest, error) {
	var request entities.MaintenanceRequest

	var equipmentID uuid.NullUUID
	var equipmentName, equipmentSerial, equipmentCategory, equipmentLocation, equipmentStatus null.String

	var teamID uuid.NullUUID
	var teamName, teamSpecialization null.String
	var teamActive null.Bool

	var assigneeID uuid.NullUUID
	var assigneeName, assigneeEmail, assigneeRole null.String

	var creatorID uuid.NullUUID
	var creatorName, creatorEmail, creatorRole null.String

	err := row.Scan(
		&request.ID, &request.RequestNumber, &request.Subject, &request.Description,
		&request.Type, &request.Stage, &request.Priority,
		&request.ScheduledDate, &request.CompletedDate, &request.Duration, &request.Cost, &request.Notes,
		&request.EquipmentID, &request.TeamID, &request.AssignedToID, &request.CreatedByID,
		&request.CreatedAt, &request.UpdatedAt,
		&equipmentID, &equipmentName, &equipmentSerial, &equipmentCategory, &equipmentLocation, &equipmentStatus,
		&teamID, &teamName, &teamSpecialization, &teamActive,
		&assigneeID, &assigneeName, &assigneeEmail, &assigneeRole,
		&creatorID, &creatorName, &creatorEmail, &creatorRole,
	)
	if err != nil {
		return nil, err
	}

	if equipmentID.Valid {
		request.Equipment = &entities.Equipment{
			ID:           equipmentID.UUID,
			Name:         equipmentName.String,
			SerialNumber: equipmentSerial.String,
			Category:     equipmentCategory.String,
			Location:     equipmentLocation.String,
			Status:       equipmentStatus.String,
		}
	}
	if teamID.Valid {
		request.Team = &entities.MaintenanceTeam{
			ID:             teamID.UUID,
			Name:           teamName.String,
			Specialization: teamSpecialization,
			IsActive:       teamActive.Bool,
		}
	}
	if assigneeID.Valid {
		request.AssignedTo = &entities.TeamMember{
			ID:    assigneeID.UUID,
			Name:  assigneeName.String,
			Email: assigneeEmail.String,
			Role:  assigneeRole,
		}
	}
	if creatorID.Valid {
		request.CreatedBy = &entities.TeamMember{
			ID:    creatorID.UUID,
			Name:  creatorName.String,
			Email: creatorEmail.String,
			Role:  creatorRole,
		}
	}
	return &request, nil
}

func (r *RequestRepository) queryRequests(ctx context.Context, builder sq.SelectBuilder) ([]entities.MaintenanceRequest, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		request, err := scanRequestWithRelations(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *request)
	}
	return requests, rows.Err()
}

// GetRequests lists requests newest-first with optional equality filters on
// stage, type and team.
func (r *RequestRepository) GetRequests(ctx context.Context, filter dto.RequestListFilter) ([]entities.MaintenanceRequest, error) {
	builder := requestSelectBuilder().OrderBy("r.created_at DESC")

	if filter.Stage != "" {
		builder = builder.Where(sq.Eq{"r.stage": filter.Stage})
	}
	if filter.Type != "" {
		builder = builder.Where(sq.Eq{"r.type": filter.Type})
	}
	if filter.TeamID != nil {
		builder = builder.Where(sq.Eq{"r.team_id": *filter.TeamID})
	}

	return r.queryRequests(ctx, builder)
}

func (r *RequestRepository) FindRequest(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	builder := requestSelectBuilder().Where(sq.Eq{"r.id": id})
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	request, err := scanRequestWithRelations(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("request")
		}
		return nil, err
	}
	return request, nil
}

// FindRequestForUpdate loads the base row with a row lock for stage changes.
func (r *RequestRepository) FindRequestForUpdate(ctx context.Context, q Querier, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	var request entities.MaintenanceRequest
	err := q.QueryRow(ctx, `
		SELECT `+requestBaseFields+`
		FROM maintenance_requests r
		WHERE r.id = $1
		FOR UPDATE
	`, id).Scan(
		&request.ID, &request.RequestNumber, &request.Subject, &request.Description,
		&request.Type, &request.Stage, &request.Priority,
		&request.ScheduledDate, &request.CompletedDate, &request.Duration, &request.Cost, &request.Notes,
		&request.EquipmentID, &request.TeamID, &request.AssignedToID, &request.CreatedByID,
		&request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("request")
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepository) CreateRequest(ctx context.Context, q Querier, request *entities.MaintenanceRequest) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.QueryRow(ctx, `
		INSERT INTO maintenance_requests (request_number, subject, description, type, stage, priority,
			scheduled_date, duration, cost, notes, equipment_id, team_id, assigned_to_id, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`,
		request.RequestNumber, request.Subject, request.Description, request.Type, request.Stage,
		request.Priority, request.ScheduledDate, request.Duration, request.Cost, request.Notes,
		request.EquipmentID, request.TeamID, request.AssignedToID, request.CreatedByID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, translateConstraintError(err, "request")
	}
	return id, nil
}

// SaveRequest persists every mutable column of an already-loaded request.
// The request number is immutable and deliberately excluded.
func (r *RequestRepository) SaveRequest(ctx context.Context, q Querier, request *entities.MaintenanceRequest) error {
	result, err := q.Exec(ctx, `
		UPDATE maintenance_requests
		SET subject        = $1,
		    description    = $2,
		    type           = $3,
		    stage          = $4,
		    priority       = $5,
		    scheduled_date = $6,
		    completed_date = $7,
		    duration       = $8,
		    cost           = $9,
		    notes          = $10,
		    equipment_id   = $11,
		    team_id        = $12,
		    assigned_to_id = $13,
		    updated_at     = CURRENT_TIMESTAMP
		WHERE id = $14
	`,
		request.Subject, request.Description, request.Type, request.Stage, request.Priority,
		request.ScheduledDate, request.CompletedDate, request.Duration, request.Cost, request.Notes,
		request.EquipmentID, request.TeamID, request.AssignedToID, request.ID,
	)
	if err != nil {
		return translateConstraintError(err, "request")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("request")
	}
	return nil
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM maintenance_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("request")
	}
	return nil
}

// GetCalendarEvents returns preventive requests, optionally bounded by a
// scheduled-date range.
func (r *RequestRepository) GetCalendarEvents(ctx context.Context, rng dto.CalendarRangeDTO) ([]entities.MaintenanceRequest, error) {
	builder := requestSelectBuilder().
		Where(sq.Eq{"r.type": entities.RequestTypePreventive}).
		OrderBy("r.scheduled_date ASC NULLS LAST")

	if rng.Start != nil && rng.End != nil {
		builder = builder.Where(sq.GtOrEq{"r.scheduled_date": *rng.Start}).
			Where(sq.LtOrEq{"r.scheduled_date": *rng.End})
	}

	return r.queryRequests(ctx, builder)
}

func (r *RequestRepository) GetEquipmentHistory(ctx context.Context, equipmentID uuid.UUID) ([]entities.MaintenanceRequest, error) {
	builder := requestSelectBuilder().
		Where(sq.Eq{"r.equipment_id": equipmentID}).
		OrderBy("r.created_at DESC")
	return r.queryRequests(ctx, builder)
}

func (r *RequestRepository) CountByStage(ctx context.Context) (map[string]int64, error) {
	rows, err := r.storage.Query(ctx, `SELECT stage, COUNT(*) FROM maintenance_requests GROUP BY stage`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var stage string
		var count int64
		if err := rows.Scan(&stage, &count); err != nil {
			return nil, err
		}
		counts[stage] = count
	}
	return counts, rows.Err()
}
