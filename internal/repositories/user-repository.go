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

const userWithRelationsQuery = `
	SELECT u.id, u.firebase_uid, u.email, u.name, u.role, u.manager_id, u.department,
	       u.team_id, u.member_id, u.avatar, u.is_active, u.created_at, u.updated_at,
	       t.id, t.name, t.specialization, t.is_active,
	       m.id, m.name, m.email, m.role, m.is_active
	FROM users u
	LEFT JOIN maintenance_teams t ON t.id = u.team_id
	LEFT JOIN team_members m ON m.id = u.member_id
`

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context) ([]entities.User, error)
	FindUser(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindUserByFirebaseUID(ctx context.Context, firebaseUID string) (*entities.User, error)
	ExistsByFirebaseUIDOrEmail(ctx context.Context, firebaseUID, email string) (bool, error)
	ExistsByMemberID(ctx context.Context, memberID uuid.UUID) (bool, error)
	ManagerIDExists(ctx context.Context, managerID string) (bool, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	CreateUser(ctx context.Context, user *entities.User) (uuid.UUID, error)
	UpdateUser(ctx context.Context, id uuid.UUID, payload dto.UpdateUserDTO) error
	DeactivateUser(ctx context.Context, id uuid.UUID) error
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUserWithRelations(row pgx.Row) (*entities.User, error) {
	var user entities.User

	var teamID uuid.NullUUID
	var teamName, teamSpecialization null.String
	var teamActive null.Bool

	var memberID uuid.NullUUID
	var memberName, memberEmail, memberRole null.String
	var memberActive null.Bool

	err := row.Scan(
		&user.ID, &user.FirebaseUID, &user.Email, &user.Name, &user.Role, &user.ManagerID,
		&user.Department, &user.TeamID, &user.MemberID, &user.Avatar, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt,
		&teamID, &teamName, &teamSpecialization, &teamActive,
		&memberID, &memberName, &memberEmail, &memberRole, &memberActive,
	)
	if err != nil {
		return nil, err
	}

	if teamID.Valid {
		user.Team = &entities.MaintenanceTeam{
			ID:             teamID.UUID,
			Name:           teamName.String,
			Specialization: teamSpecialization,
			IsActive:       teamActive.Bool,
		}
	}
	if memberID.Valid {
		user.Member = &entities.TeamMember{
			ID:       memberID.UUID,
			Name:     memberName.String,
			Email:    memberEmail.String,
			Role:     memberRole,
			IsActive: memberActive.Bool,
		}
	}
	return &user, nil
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := r.storage.Query(ctx, userWithRelationsQuery+` ORDER BY u.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		user, err := scanUserWithRelations(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := scanUserWithRelations(r.storage.QueryRow(ctx, userWithRelationsQuery+` WHERE u.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user")
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindUserByFirebaseUID(ctx context.Context, firebaseUID string) (*entities.User, error) {
	user, err := scanUserWithRelations(r.storage.QueryRow(ctx, userWithRelationsQuery+` WHERE u.firebase_uid = $1`, firebaseUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user")
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) ExistsByFirebaseUIDOrEmail(ctx context.Context, firebaseUID, email string) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE firebase_uid = $1 OR LOWER(email) = LOWER($2))
	`, firebaseUID, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) ExistsByMemberID(ctx context.Context, memberID uuid.UUID) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE member_id = $1)
	`, memberID).Scan(&exists)
	return exists, err
}

func (r *UserRepository) ManagerIDExists(ctx context.Context, managerID string) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE manager_id = $1)
	`, managerID).Scan(&exists)
	return exists, err
}

func (r *UserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count)
	return count, err
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.storage.QueryRow(ctx, `
		INSERT INTO users (firebase_uid, email, name, role, manager_id, department, team_id, member_id, avatar, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`,
		user.FirebaseUID, user.Email, user.Name, user.Role, user.ManagerID, user.Department,
		user.TeamID, user.MemberID, user.Avatar, user.IsActive,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, translateConstraintError(err, "user")
	}
	return id, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uuid.UUID, payload dto.UpdateUserDTO) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE users
		SET name       = COALESCE($1, name),
		    department = COALESCE($2, department),
		    avatar     = COALESCE($3, avatar),
		    is_active  = COALESCE($4, is_active),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
	`, payload.Name, payload.Department, payload.Avatar, payload.IsActive, id)
	if err != nil {
		return translateConstraintError(err, "user")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user")
	}
	return nil
}

func (r *UserRepository) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, `
		UPDATE users SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user")
	}
	return nil
}
