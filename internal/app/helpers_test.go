package app_test

import (
	"context"
	"errors"
	"time"

	"carbon-quiz-service/internal/app"
	"carbon-quiz-service/internal/bank"
	"carbon-quiz-service/internal/domain"
	"carbon-quiz-service/internal/infra/memory"
	"carbon-quiz-service/internal/scoring"
)

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newEngine() *scoring.Engine {
	return scoring.NewEngineWithClock(bank.Default(), clock)
}

func uniformAnswers(score int) []domain.Answer {
	b := bank.Default()
	out := make([]domain.Answer, 0, len(b.Questions))
	for _, q := range b.Questions {
		out = append(out, domain.Answer{QuestionID: q.ID, Score: score, Timestamp: fixedNow})
	}
	return out
}

var errWriteFailed = errors.New("disk full")

// flakyStore fails InsertResult while failing is set, after the signup row has
// already been staged, so a rollback is observable.
type flakyStore struct {
	*memory.SubmissionStore
	failing bool
}

func (s *flakyStore) InTx(ctx context.Context, fn func(w app.SubmissionWriter) error) error {
	return s.SubmissionStore.InTx(ctx, func(w app.SubmissionWriter) error {
		return fn(flakyWriter{SubmissionWriter: w, failing: s.failing})
	})
}

type flakyWriter struct {
	app.SubmissionWriter
	failing bool
}

func (w flakyWriter) InsertResult(ctx context.Context, rec domain.Record) (int64, error) {
	if w.failing {
		return 0, errors.Join(domain.ErrStoreUnavailable, errWriteFailed)
	}
	return w.SubmissionWriter.InsertResult(ctx, rec)
}
