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

const memberWithTeamQuery = `
	SELECT m.id, m.name, m.email, m.phone, m.role, m.avatar, m.is_active, m.team_id, m.created_at, m.updated_at,
	       t.id, t.name, t.description, t.specialization, t.is_active
	FROM team_members m
	LEFT JOIN maintenance_teams t ON t.id = m.team_id
`

type MemberRepositoryInterface interface {
	GetMembers(ctx context.Context) ([]entities.TeamMember, error)
	FindMember(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error)
	FindMemberInTeam(ctx context.Context, memberID, teamID uuid.UUID) (*entities.TeamMember, error)
	CreateMember(ctx context.Context, payload dto.CreateMemberDTO) (uuid.UUID, error)
	UpdateMember(ctx context.Context, id uuid.UUID, payload dto.UpdateMemberDTO) error
	DeleteMember(ctx context.Context, id uuid.UUID) error
	CountMembers(ctx context.Context) (int64, error)
}

type MemberRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMemberRepository(storage *pgxpool.Pool, logger *zap.Logger) MemberRepositoryInterface {
	return &MemberRepository{storage: storage, logger: logger}
}

func scanMemberWithTeam(row pgx.Row) (*entities.TeamMember, error) {
	var member entities.TeamMember
	var teamID uuid.NullUUID
	var teamName, teamDescription, teamSpecialization null.String
	var teamActive null.Bool

	err := row.Scan(
		&member.ID, &member.Name, &member.Email, &member.Phone, &member.Role,
		&member.Avatar, &member.IsActive, &member.TeamID, &member.CreatedAt, &member.UpdatedAt,
		&teamID, &teamName, &teamDescription, &teamSpecialization, &teamActive,
	)
	if err != nil {
		return nil, err
	}

	if teamID.Valid {
		member.Team = &entities.MaintenanceTeam{
			ID:             teamID.UUID,
			Name:           teamName.String,
			Description:    teamDescription,
			Specialization: teamSpecialization,
			IsActive:       teamActive.Bool,
		}
	}
	return &member, nil
}

// GetMembers returns all members alphabetically with their team resolved.
func (r *MemberRepository) GetMembers(ctx context.Context) ([]entities.TeamMember, error) {
	rows, err := r.storage.Query(ctx, memberWithTeamQuery+` ORDER BY m.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]entities.TeamMember, 0)
	for rows.Next() {
		member, err := scanMemberWithTeam(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *member)
	}
	return members, rows.Err()
}

func (r *MemberRepository) FindMember(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error) {
	member, err := scanMemberWithTeam(r.storage.QueryRow(ctx, memberWithTeamQuery+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("team member")
		}
		return nil, err
	}
	return member, nil
}

// FindMemberInTeam resolves a member only when it belongs to the given team;
// used by the signup verification flow.
func (r *MemberRepository) FindMemberInTeam(ctx context.Context, memberID, teamID uuid.UUID) (*entities.TeamMember, error) {
	member, err := scanMemberWithTeam(r.storage.QueryRow(ctx,
		memberWithTeamQuery+` WHERE m.id = $1 AND m.team_id = $2`, memberID, teamID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("team member")
		}
		return nil, err
	}
	return member, nil
}

func (r *MemberRepository) CreateMember(ctx context.Context, payload dto.CreateMemberDTO) (uuid.UUID, error) {
	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}

	var id uuid.UUID
	err := r.storage.QueryRow(ctx, `
		INSERT INTO team_members (name, email, phone, role, avatar, is_active, team_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, payload.Name, payload.Email, payload.Phone, payload.Role, payload.Avatar, isActive, payload.TeamID).Scan(&id)
	if err != nil {
		return uuid.Nil, translateConstraintError(err, "team member")
	}
	return id, nil
}

func (r *MemberRepository) UpdateMember(ctx context.Context, id uuid.UUID, payload dto.UpdateMemberDTO) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE team_members
		SET name       = COALESCE($1, name),
		    email      = COALESCE($2, email),
		    phone      = COALESCE($3, phone),
		    role       = COALESCE($4, role),
		    avatar     = COALESCE($5, avatar),
		    is_active  = COALESCE($6, is_active),
		    team_id    = COALESCE($7, team_id),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
	`, payload.Name, payload.Email, payload.Phone, payload.Role, payload.Avatar, payload.IsActive, payload.TeamID, id)
	if err != nil {
		return translateConstraintError(err, "team member")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("team member")
	}
	return nil
}

func (r *MemberRepository) DeleteMember(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("team member")
	}
	return nil
}

func (r *MemberRepository) CountMembers(ctx context.Context) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM team_members`).Scan(&count)
	return count, err
}
