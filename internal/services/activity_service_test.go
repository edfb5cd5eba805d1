package services

import (
	"context"
	"testing"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetRecentUsesCacheOnSecondCall(t *testing.T) {
	activityRepo := &fakeActivityRepo{}
	cacheRepo := newFakeCacheRepo()
	svc := NewActivityService(activityRepo, cacheRepo, time.Minute, zap.NewNop())

	_, err := activityRepo.RecordActivity(context.Background(), &entities.Activity{
		Type:        entities.ActivityRequestCreated,
		Title:       "Maintenance request created",
		Description: "Press is leaking oil",
	})
	require.NoError(t, err)

	first, err := svc.GetRecent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A write directly to the repository is invisible until the cache expires
	// or is invalidated.
	_, err = activityRepo.RecordActivity(context.Background(), &entities.Activity{
		Type:        entities.ActivityRequestUpdated,
		Title:       "Maintenance request updated",
		Description: "Press fixed",
	})
	require.NoError(t, err)

	second, err := svc.GetRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

// A caller-supplied limit caps the feed and skips the cached default feed.
func TestGetRecentHonorsLimit(t *testing.T) {
	activityRepo := &fakeActivityRepo{}
	cacheRepo := newFakeCacheRepo()
	svc := NewActivityService(activityRepo, cacheRepo, time.Minute, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := activityRepo.RecordActivity(context.Background(), &entities.Activity{
			Type:        entities.ActivityRequestCreated,
			Title:       "Maintenance request created",
			Description: "Seed entry",
		})
		require.NoError(t, err)
	}

	all, err := svc.GetRecent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	limited, err := svc.GetRecent(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	_, cached := cacheRepo.values[recentActivityCacheKey]
	assert.True(t, cached, "custom limit must not overwrite the default feed cache")
}

func TestGetActivityReturnsRecordedEntry(t *testing.T) {
	activityRepo := &fakeActivityRepo{}
	svc := NewActivityService(activityRepo, newFakeCacheRepo(), time.Minute, zap.NewNop())

	id, err := activityRepo.RecordActivity(context.Background(), &entities.Activity{
		Type:        entities.ActivityTeamAssigned,
		Title:       "Maintenance team created",
		Description: "HVAC Team",
	})
	require.NoError(t, err)

	activity, err := svc.GetActivity(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "HVAC Team", activity.Description)

	_, err = svc.GetActivity(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestRecordActivityInvalidatesRecentCache(t *testing.T) {
	activityRepo := &fakeActivityRepo{}
	cacheRepo := newFakeCacheRepo()
	svc := NewActivityService(activityRepo, cacheRepo, time.Minute, zap.NewNop())

	_, err := svc.GetRecent(context.Background(), 0)
	require.NoError(t, err)
	_, cached := cacheRepo.values[recentActivityCacheKey]
	require.True(t, cached)

	_, err = svc.RecordActivity(context.Background(), dto.CreateActivityDTO{
		Type:        entities.ActivityMemberAdded,
		Title:       "Team member added",
		Description: "John Smith joined the roster",
	})
	require.NoError(t, err)

	_, cached = cacheRepo.values[recentActivityCacheKey]
	assert.False(t, cached)

	recent, err := svc.GetRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}
