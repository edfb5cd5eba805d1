package repositories

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Needs a real database; set TEST_DATABASE_URL to run.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestNextRequestSequenceIsMonotonic(t *testing.T) {
	pool := testPool(t)
	repo := NewSequenceRepository()
	ctx := context.Background()

	_, err := pool.Exec(ctx, `DELETE FROM request_counters WHERE year_month = '000001'`)
	require.NoError(t, err)

	first, err := repo.NextRequestSequence(ctx, pool, "000001")
	require.NoError(t, err)
	second, err := repo.NextRequestSequence(ctx, pool, "000001")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

// Concurrent bumps must never hand out the same number twice.
func TestNextRequestSequenceUnderContention(t *testing.T) {
	pool := testPool(t)
	repo := NewSequenceRepository()
	ctx := context.Background()

	_, err := pool.Exec(ctx, `DELETE FROM request_counters WHERE year_month = '000002'`)
	require.NoError(t, err)

	const workers = 16
	results := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, err := repo.NextRequestSequence(ctx, pool, "000002")
			assert.NoError(t, err)
			results <- seq
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool)
	for seq := range results {
		assert.False(t, seen[seq], "duplicate sequence %d", seq)
		seen[seq] = true
	}
	assert.Len(t, seen, workers)
}
