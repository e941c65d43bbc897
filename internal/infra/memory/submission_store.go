package memory

import (
	"context"
	"sort"
	"sync"

	"carbon-quiz-service/internal/app"
	"carbon-quiz-service/internal/domain"
)

// SubmissionStore keeps signups and results in process memory. InTx holds the
// write lock for the whole callback and only publishes staged rows when it
// returns nil.
type SubmissionStore struct {
	mu         sync.RWMutex
	signups    []domain.Signup
	results    []domain.Record
	nextSignup int64
	nextResult int64
}

func NewSubmissionStore() *SubmissionStore {
	return &SubmissionStore{nextSignup: 1, nextResult: 1}
}

type stagedWriter struct {
	store   *SubmissionStore
	signups []domain.Signup
	results []domain.Record
}

func (w *stagedWriter) InsertSignup(_ context.Context, signup domain.Signup) (int64, error) {
	signup.ID = w.store.nextSignup + int64(len(w.signups))
	w.signups = append(w.signups, signup)
	return signup.ID, nil
}

func (w *stagedWriter) InsertResult(_ context.Context, rec domain.Record) (int64, error) {
	rec.ID = w.store.nextResult + int64(len(w.results))
	w.results = append(w.results, rec)
	return rec.ID, nil
}

func (s *SubmissionStore) InTx(_ context.Context, fn func(w app.SubmissionWriter) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := &stagedWriter{store: s}
	if err := fn(w); err != nil {
		return err
	}
	s.signups = append(s.signups, w.signups...)
	s.results = append(s.results, w.results...)
	s.nextSignup += int64(len(w.signups))
	s.nextResult += int64(len(w.results))
	return nil
}

func (s *SubmissionStore) ListAll(_ context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	out := make([]domain.Record, len(s.results))
	copy(out, s.results)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].SubmittedAt.After(out[j].SubmittedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *SubmissionStore) GetByID(_ context.Context, id int64) (domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.results {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.Record{}, domain.ErrNotFound
}

func (s *SubmissionStore) CountSignups(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.signups), nil
}

func (s *SubmissionStore) CountResultsAndAvgPercentage(_ context.Context) (int, float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum float64
	var n int
	for _, rec := range s.results {
		if rec.Percentage != nil {
			sum += *rec.Percentage
			n++
		}
	}
	if n == 0 {
		return len(s.results), 0, nil
	}
	return len(s.results), sum / float64(n), nil
}

// Put stores rec as is, assigning an id when rec.ID is zero. Used to seed rows
// that did not come through the scoring path.
func (s *SubmissionStore) Put(rec domain.Record) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.ID == 0 {
		rec.ID = s.nextResult
	}
	if rec.ID >= s.nextResult {
		s.nextResult = rec.ID + 1
	}
	s.results = append(s.results, rec)
	return rec.ID
}
