package repositories

import (
	"context"
	"errors"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const equipmentBaseFields = `e.id, e.name, e.serial_number, e.category, e.location, e.department,
	e.assigned_to, e.manufacturer, e.model, e.purchase_date, e.warranty_expiry, e.status, e.notes,
	e.maintenance_team_id, e.default_technician_id, e.created_at, e.updated_at`

const equipmentWithRelationsQuery = `
	SELECT ` + equipmentBaseFields + `,
	       t.id, t.name, t.specialization, t.is_active,
	       dt.id, dt.name, dt.email, dt.role, dt.is_active
	FROM equipments e
	LEFT JOIN maintenance_teams t ON t.id = e.maintenance_team_id
	LEFT JOIN team_members dt ON dt.id = e.default_technician_id
`

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error)
	FindEquipmentForUpdate(ctx context.Context, q Querier, id uuid.UUID) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uuid.UUID, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) error
	UpdateEquipmentStatus(ctx context.Context, q Querier, id uuid.UUID, status string) error
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipmentWithRelations(row pgx.Row) (*entities.Equipment, error) {
	var equipment entities.Equipment
	var teamID, techID uuid.NullUUID
	var teamName, teamSpecialization null.String
	var teamActive null.Bool
	var techName, techEmail, techRole null.String
	var techActive null.Bool

	err := row.Scan(
		&equipment.ID, &equipment.Name, &equipment.SerialNumber, &equipment.Category, &equipment.Location,
		&equipment.Department, &equipment.AssignedTo, &equipment.Manufacturer, &equipment.Model,
		&equipment.PurchaseDate, &equipment.WarrantyExpiry, &equipment.Status, &equipment.Notes,
		&equipment.MaintenanceTeamID, &equipment.DefaultTechnicianID, &equipment.CreatedAt, &equipment.UpdatedAt,
		&teamID, &teamName, &teamSpecialization, &teamActive,
		&techID, &techName, &techEmail, &techRole, &techActive,
	)
	if err != nil {
		return nil, err
	}

	if teamID.Valid {
		equipment.MaintenanceTeam = &entities.MaintenanceTeam{
			ID:             teamID.UUID,
			Name:           teamName.String,
			Specialization: teamSpecialization,
			IsActive:       teamActive.Bool,
		}
	}
	if techID.Valid {
		equipment.DefaultTechnician = &entities.TeamMember{
			ID:       techID.UUID,
			Name:     techName.String,
			Email:    techEmail.String,
			Role:     techRole,
			IsActive: techActive.Bool,
		}
	}
	return &equipment, nil
}

// GetEquipments returns all equipment newest-first with team and default
// technician resolved.
func (r *EquipmentRepository) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	rows, err := r.storage.Query(ctx, equipmentWithRelationsQuery+` ORDER BY e.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	equipments := make([]entities.Equipment, 0)
	for rows.Next() {
		equipment, err := scanEquipmentWithRelations(rows)
		if err != nil {
			return nil, err
		}
		equipments = append(equipments, *equipment)
	}
	return equipments, rows.Err()
}

// FindEquipment resolves one record and counts its open maintenance requests
// (stage other than "repaired").
func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	equipment, err := scanEquipmentWithRelations(r.storage.QueryRow(ctx, equipmentWithRelationsQuery+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("equipment")
		}
		return nil, err
	}

	var open int64
	err = r.storage.QueryRow(ctx, `
		SELECT COUNT(*) FROM maintenance_requests
		WHERE equipment_id = $1 AND stage <> $2
	`, id, entities.StageRepaired).Scan(&open)
	if err != nil {
		return nil, err
	}
	equipment.OpenRequestsCount = &open

	return equipment, nil
}

// FindEquipmentForUpdate loads the base row with a row lock; it runs inside
// the create-request / stage-change transactions.
func (r *EquipmentRepository) FindEquipmentForUpdate(ctx context.Context, q Querier, id uuid.UUID) (*entities.Equipment, error) {
	var equipment entities.Equipment
	err := q.QueryRow(ctx, `
		SELECT `+equipmentBaseFields+`
		FROM equipments e
		WHERE e.id = $1
		FOR UPDATE
	`, id).Scan(
		&equipment.ID, &equipment.Name, &equipment.SerialNumber, &equipment.Category, &equipment.Location,
		&equipment.Department, &equipment.AssignedTo, &equipment.Manufacturer, &equipment.Model,
		&equipment.PurchaseDate, &equipment.WarrantyExpiry, &equipment.Status, &equipment.Notes,
		&equipment.MaintenanceTeamID, &equipment.DefaultTechnicianID, &equipment.CreatedAt, &equipment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("equipment")
		}
		return nil, err
	}
	return &equipment, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uuid.UUID, error) {
	status := entities.EquipmentStatusActive
	if payload.Status != nil {
		status = *payload.Status
	}

	var id uuid.UUID
	err := r.storage.QueryRow(ctx, `
		INSERT INTO equipments (name, serial_number, category, location, department, assigned_to,
			manufacturer, model, purchase_date, warranty_expiry, status, notes,
			maintenance_team_id, default_technician_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`,
		payload.Name, payload.SerialNumber, payload.Category, payload.Location, payload.Department,
		payload.AssignedTo, payload.Manufacturer, payload.Model, payload.PurchaseDate,
		payload.WarrantyExpiry, status, payload.Notes, payload.MaintenanceTeamID, payload.DefaultTechnicianID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, translateConstraintError(err, "equipment")
	}
	return id, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE equipments
		SET name                  = COALESCE($1, name),
		    serial_number         = COALESCE($2, serial_number),
		    category              = COALESCE($3, category),
		    location              = COALESCE($4, location),
		    department            = COALESCE($5, department),
		    assigned_to           = COALESCE($6, assigned_to),
		    manufacturer          = COALESCE($7, manufacturer),
		    model                 = COALESCE($8, model),
		    purchase_date         = COALESCE($9, purchase_date),
		    warranty_expiry       = COALESCE($10, warranty_expiry),
		    status                = COALESCE($11, status),
		    notes                 = COALESCE($12, notes),
		    maintenance_team_id   = COALESCE($13, maintenance_team_id),
		    default_technician_id = COALESCE($14, default_technician_id),
		    updated_at            = CURRENT_TIMESTAMP
		WHERE id = $15
	`,
		payload.Name, payload.SerialNumber, payload.Category, payload.Location, payload.Department,
		payload.AssignedTo, payload.Manufacturer, payload.Model, payload.PurchaseDate,
		payload.WarrantyExpiry, payload.Status, payload.Notes, payload.MaintenanceTeamID,
		payload.DefaultTechnicianID, id)
	if err != nil {
		return translateConstraintError(err, "equipment")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("equipment")
	}
	return nil
}

func (r *EquipmentRepository) UpdateEquipmentStatus(ctx context.Context, q Querier, id uuid.UUID, status string) error {
	result, err := q.Exec(ctx, `
		UPDATE equipments SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("equipment")
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM equipments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("equipment")
	}
	return nil
}

func (r *EquipmentRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.storage.Query(ctx, `SELECT status, COUNT(*) FROM equipments GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
