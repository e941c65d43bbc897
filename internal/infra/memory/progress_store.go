package memory

import (
	"context"
	"sync"
	"time"

	"carbon-quiz-service/internal/domain"
)

// ProgressStore is an in-memory implementation of app.ProgressStore.
// Entries older than ttl are treated as missing; a zero ttl keeps them forever.
type ProgressStore struct {
	ttl   time.Duration
	clock func() time.Time

	mu      sync.RWMutex
	entries map[string]domain.Progress
}

func NewProgressStore(ttl time.Duration) *ProgressStore {
	return &ProgressStore{
		ttl:     ttl,
		clock:   time.Now,
		entries: make(map[string]domain.Progress),
	}
}

func (s *ProgressStore) Save(_ context.Context, p domain.Progress) error {
	p.Answers = cloneAnswers(p.Answers)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[p.ID] = p
	return nil
}

func (s *ProgressStore) Load(_ context.Context, id string) (domain.Progress, error) {
	s.mu.RLock()
	p, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return domain.Progress{}, domain.ErrProgressNotFound
	}
	if s.ttl > 0 && s.clock().Sub(p.SavedAt) > s.ttl {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()
		return domain.Progress{}, domain.ErrProgressNotFound
	}
	p.Answers = cloneAnswers(p.Answers)
	return p, nil
}

func (s *ProgressStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func cloneAnswers(in []domain.Answer) []domain.Answer {
	out := make([]domain.Answer, len(in))
	copy(out, in)
	return out
}
