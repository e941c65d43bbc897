package app

import (
	"context"

	"carbon-quiz-service/internal/domain"
)

// SubmissionWriter inserts rows inside one store transaction.
type SubmissionWriter interface {
	InsertSignup(ctx context.Context, signup domain.Signup) (int64, error)
	InsertResult(ctx context.Context, rec domain.Record) (int64, error)
}

// SubmissionStore abstracts how submissions are persisted (memory, SQLite, Postgres).
// Failures of the store itself are reported wrapped in domain.ErrStoreUnavailable.
type SubmissionStore interface {
	// InTx runs fn in a single transaction; nothing fn wrote survives if it returns an error.
	InTx(ctx context.Context, fn func(w SubmissionWriter) error) error
	// ListAll returns every stored result, newest submission first.
	ListAll(ctx context.Context) ([]domain.Record, error)
	// GetByID returns domain.ErrNotFound when no result has the id.
	GetByID(ctx context.Context, id int64) (domain.Record, error)
	CountSignups(ctx context.Context) (int, error)
	// CountResultsAndAvgPercentage reports 0 as the average when there are no results.
	CountResultsAndAvgPercentage(ctx context.Context) (int, float64, error)
}

// ProgressStore keeps resumable quiz runs (in-memory, Redis).
type ProgressStore interface {
	Save(ctx context.Context, p domain.Progress) error
	// Load returns domain.ErrProgressNotFound for unknown or expired ids.
	Load(ctx context.Context, id string) (domain.Progress, error)
	Clear(ctx context.Context, id string) error
}

// OverviewReader serves the admin dashboard summary, possibly from a cache.
type OverviewReader interface {
	Overview(ctx context.Context) (domain.Overview, error)
}
