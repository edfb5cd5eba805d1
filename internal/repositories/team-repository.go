package repositories

import (
	"context"
	"errors"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const teamFields = "t.id, t.name, t.description, t.specialization, t.is_active, t.created_at, t.updated_at"

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindTeam(ctx context.Context, id uuid.UUID) (*entities.MaintenanceTeam, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (uuid.UUID, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, payload dto.UpdateTeamDTO) error
	DeleteTeam(ctx context.Context, id uuid.UUID) error
	CountTeams(ctx context.Context) (int64, error)
}

type TeamRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTeamRepository(storage *pgxpool.Pool, logger *zap.Logger) TeamRepositoryInterface {
	return &TeamRepository{storage: storage, logger: logger}
}

func scanTeam(row pgx.Row, team *entities.MaintenanceTeam) error {
	return row.Scan(
		&team.ID,
		&team.Name,
		&team.Description,
		&team.Specialization,
		&team.IsActive,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
}

// GetTeams returns all teams alphabetically, each with its members resolved.
func (r *TeamRepository) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT `+teamFields+`
		FROM maintenance_teams t
		ORDER BY t.name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]entities.MaintenanceTeam, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var team entities.MaintenanceTeam
		if err := scanTeam(rows, &team); err != nil {
			return nil, err
		}
		team.Members = make([]entities.TeamMember, 0)
		index[team.ID] = len(teams)
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	memberRows, err := r.storage.Query(ctx, `
		SELECT m.id, m.name, m.email, m.phone, m.role, m.avatar, m.is_active, m.team_id, m.created_at, m.updated_at
		FROM team_members m
		WHERE m.team_id IS NOT NULL
		ORDER BY m.name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var member entities.TeamMember
		if err := memberRows.Scan(
			&member.ID, &member.Name, &member.Email, &member.Phone, &member.Role,
			&member.Avatar, &member.IsActive, &member.TeamID, &member.CreatedAt, &member.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if i, ok := index[member.TeamID.UUID]; ok {
			teams[i].Members = append(teams[i].Members, member)
		}
	}
	return teams, memberRows.Err()
}

func (r *TeamRepository) FindTeam(ctx context.Context, id uuid.UUID) (*entities.MaintenanceTeam, error) {
	var team entities.MaintenanceTeam
	err := scanTeam(r.storage.QueryRow(ctx, `
		SELECT `+teamFields+`
		FROM maintenance_teams t
		WHERE t.id = $1
	`, id), &team)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("team")
		}
		return nil, err
	}

	memberRows, err := r.storage.Query(ctx, `
		SELECT m.id, m.name, m.email, m.phone, m.role, m.avatar, m.is_active, m.team_id, m.created_at, m.updated_at
		FROM team_members m
		WHERE m.team_id = $1
		ORDER BY m.name ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer memberRows.Close()

	team.Members = make([]entities.TeamMember, 0)
	for memberRows.Next() {
		var member entities.TeamMember
		if err := memberRows.Scan(
			&member.ID, &member.Name, &member.Email, &member.Phone, &member.Role,
			&member.Avatar, &member.IsActive, &member.TeamID, &member.CreatedAt, &member.UpdatedAt,
		); err != nil {
			return nil, err
		}
		team.Members = append(team.Members, member)
	}
	return &team, memberRows.Err()
}

func (r *TeamRepository) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (uuid.UUID, error) {
	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}

	var id uuid.UUID
	err := r.storage.QueryRow(ctx, `
		INSERT INTO maintenance_teams (name, description, specialization, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, payload.Name, payload.Description, payload.Specialization, isActive).Scan(&id)
	if err != nil {
		return uuid.Nil, translateConstraintError(err, "team")
	}
	return id, nil
}

func (r *TeamRepository) UpdateTeam(ctx context.Context, id uuid.UUID, payload dto.UpdateTeamDTO) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE maintenance_teams
		SET name           = COALESCE($1, name),
		    description    = COALESCE($2, description),
		    specialization = COALESCE($3, specialization),
		    is_active      = COALESCE($4, is_active),
		    updated_at     = CURRENT_TIMESTAMP
		WHERE id = $5
	`, payload.Name, payload.Description, payload.Specialization, payload.IsActive, id)
	if err != nil {
		return translateConstraintError(err, "team")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("team")
	}
	return nil
}

// DeleteTeam always succeeds for an existing team; rows referencing it have
// their foreign keys nulled by the schema (ON DELETE SET NULL).
func (r *TeamRepository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM maintenance_teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("team")
	}
	return nil
}

func (r *TeamRepository) CountTeams(ctx context.Context) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM maintenance_teams`).Scan(&count)
	return count, err
}
