package services

import (
	"context"
	"encoding/json"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	recentActivityCacheKey   = "activities:recent"
	defaultRecentActivityLim = 20
)

type ActivityServiceInterface interface {
	GetActivities(ctx context.Context) ([]entities.Activity, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*entities.Activity, error)
	GetRecent(ctx context.Context, limit int) ([]entities.Activity, error)
	GetByType(ctx context.Context, activityType string) ([]entities.Activity, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]entities.Activity, error)
	RecordActivity(ctx context.Context, payload dto.CreateActivityDTO) (*entities.Activity, error)
}

type ActivityService struct {
	activityRepo repositories.ActivityRepositoryInterface
	cacheRepo    repositories.CacheRepositoryInterface
	recentTTL    time.Duration
	logger       *zap.Logger
}

func NewActivityService(
	activityRepo repositories.ActivityRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	recentTTL time.Duration,
	logger *zap.Logger,
) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
		cacheRepo:    cacheRepo,
		recentTTL:    recentTTL,
		logger:       logger,
	}
}

func (s *ActivityService) GetActivities(ctx context.Context) ([]entities.Activity, error) {
	return s.activityRepo.GetActivities(ctx)
}

func (s *ActivityService) GetActivity(ctx context.Context, id uuid.UUID) (*entities.Activity, error) {
	return s.activityRepo.FindActivity(ctx, id)
}

// GetRecent serves the dashboard feed from redis when fresh. The feed goes
// briefly stale after a write; the short TTL bounds that window. Only the
// default-sized feed is cached; custom limits go straight to the database.
func (s *ActivityService) GetRecent(ctx context.Context, limit int) ([]entities.Activity, error) {
	cacheable := limit <= 0 || limit == defaultRecentActivityLim
	if limit <= 0 {
		limit = defaultRecentActivityLim
	}

	if cacheable {
		if cached, err := s.cacheRepo.Get(ctx, recentActivityCacheKey); err == nil && cached != "" {
			var activities []entities.Activity
			if err := json.Unmarshal([]byte(cached), &activities); err == nil {
				return activities, nil
			}
		}
	}

	activities, err := s.activityRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if data, err := json.Marshal(activities); err == nil {
			if err := s.cacheRepo.Set(ctx, recentActivityCacheKey, data, s.recentTTL); err != nil {
				s.logger.Debug("failed to cache recent activities", zap.Error(err))
			}
		}
	}
	return activities, nil
}

func (s *ActivityService) GetByType(ctx context.Context, activityType string) ([]entities.Activity, error) {
	return s.activityRepo.GetByType(ctx, activityType)
}

func (s *ActivityService) GetByUser(ctx context.Context, userID uuid.UUID) ([]entities.Activity, error) {
	return s.activityRepo.GetByUser(ctx, userID)
}

// RecordActivity lets clients log events the server does not derive itself.
func (s *ActivityService) RecordActivity(ctx context.Context, payload dto.CreateActivityDTO) (*entities.Activity, error) {
	activity := &entities.Activity{
		Type:        payload.Type,
		Title:       payload.Title,
		Description: payload.Description,
		UserName:    null.StringFromPtr(payload.UserName),
		Metadata:    payload.Metadata,
	}
	if payload.UserID != nil {
		activity.UserID = uuid.NullUUID{UUID: *payload.UserID, Valid: true}
	} else if actorID, actorName := actorFromContext(ctx); actorID.Valid {
		activity.UserID = actorID
		if !activity.UserName.Valid {
			activity.UserName = actorName
		}
	}

	id, err := s.activityRepo.RecordActivity(ctx, activity)
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepo.Del(ctx, recentActivityCacheKey); err != nil {
		s.logger.Debug("failed to invalidate recent activities cache", zap.Error(err))
	}

	return s.activityRepo.FindActivity(ctx, id)
}
