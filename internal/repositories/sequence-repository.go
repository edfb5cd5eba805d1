package repositories

import (
	"context"
)

// SequenceRepositoryInterface hands out monotonically increasing sequence
// numbers scoped to a calendar month (the "202503" key). The upsert with an
// atomic increment closes the lost-update race a scan-for-highest approach
// would have under concurrent request creation.
type SequenceRepositoryInterface interface {
	NextRequestSequence(ctx context.Context, q Querier, yearMonth string) (int64, error)
}

// Querier re-exports the internal querier so services can pass a pgx.Tx.
type Querier = querier

type SequenceRepository struct{}

func NewSequenceRepository() SequenceRepositoryInterface {
	return &SequenceRepository{}
}

func (r *SequenceRepository) NextRequestSequence(ctx context.Context, q Querier, yearMonth string) (int64, error) {
	var seq int64
	err := q.QueryRow(ctx, `
		INSERT INTO request_counters (year_month, seq)
		VALUES ($1, 1)
		ON CONFLICT (year_month) DO UPDATE SET seq = request_counters.seq + 1
		RETURNING seq
	`, yearMonth).Scan(&seq)
	if err != nil {
		return 0, err
	}
	return seq, nil
}
