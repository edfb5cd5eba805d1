package repositories

import (
	"context"
	"errors"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const activityFields = "a.id, a.type, a.title, a.description, a.user_id, a.user_name, a.metadata, a.created_at"

type ActivityRepositoryInterface interface {
	GetActivities(ctx context.Context) ([]entities.Activity, error)
	GetRecent(ctx context.Context, limit int) ([]entities.Activity, error)
	FindActivity(ctx context.Context, id uuid.UUID) (*entities.Activity, error)
	GetByType(ctx context.Context, activityType string) ([]entities.Activity, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]entities.Activity, error)
	CreateActivity(ctx context.Context, q Querier, activity *entities.Activity) (uuid.UUID, error)
	RecordActivity(ctx context.Context, activity *entities.Activity) (uuid.UUID, error)
}

type ActivityRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewActivityRepository(storage *pgxpool.Pool, logger *zap.Logger) ActivityRepositoryInterface {
	return &ActivityRepository{storage: storage, logger: logger}
}

func scanActivity(row pgx.Row) (*entities.Activity, error) {
	var activity entities.Activity
	err := row.Scan(
		&activity.ID, &activity.Type, &activity.Title, &activity.Description,
		&activity.UserID, &activity.UserName, &activity.Metadata, &activity.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) queryActivities(ctx context.Context, query string, args ...any) ([]entities.Activity, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]entities.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *activity)
	}
	return activities, rows.Err()
}

func (r *ActivityRepository) GetActivities(ctx context.Context) ([]entities.Activity, error) {
	return r.queryActivities(ctx, `
		SELECT `+activityFields+` FROM activities a ORDER BY a.created_at DESC
	`)
}

func (r *ActivityRepository) GetRecent(ctx context.Context, limit int) ([]entities.Activity, error) {
	return r.queryActivities(ctx, `
		SELECT `+activityFields+` FROM activities a ORDER BY a.created_at DESC LIMIT $1
	`, limit)
}

func (r *ActivityRepository) FindActivity(ctx context.Context, id uuid.UUID) (*entities.Activity, error) {
	activity, err := scanActivity(r.storage.QueryRow(ctx, `
		SELECT `+activityFields+` FROM activities a WHERE a.id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("activity")
		}
		return nil, err
	}
	return activity, nil
}

func (r *ActivityRepository) GetByType(ctx context.Context, activityType string) ([]entities.Activity, error) {
	return r.queryActivities(ctx, `
		SELECT `+activityFields+` FROM activities a WHERE a.type = $1 ORDER BY a.created_at DESC
	`, activityType)
}

func (r *ActivityRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]entities.Activity, error) {
	return r.queryActivities(ctx, `
		SELECT `+activityFields+` FROM activities a WHERE a.user_id = $1 ORDER BY a.created_at DESC
	`, userID)
}

// CreateActivity appends one log row; it accepts a Querier so core flows can
// write the activity inside their transaction.
func (r *ActivityRepository) CreateActivity(ctx context.Context, q Querier, activity *entities.Activity) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.QueryRow(ctx, `
		INSERT INTO activities (type, title, description, user_id, user_name, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		activity.Type, activity.Title, activity.Description,
		activity.UserID, activity.UserName, activity.Metadata,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, translateConstraintError(err, "activity")
	}
	return id, nil
}

// RecordActivity is the non-transactional variant used outside core flows.
func (r *ActivityRepository) RecordActivity(ctx context.Context, activity *entities.Activity) (uuid.UUID, error) {
	return r.CreateActivity(ctx, r.storage, activity)
}
