package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"carbon-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// ProgressStore keeps resumable quiz runs in Redis as JSON documents, one key
// per run. Every save refreshes the key's TTL.
type ProgressStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProgressStore(client *redis.Client, ttl time.Duration) *ProgressStore {
	return &ProgressStore{client: client, ttl: ttl}
}

func (s *ProgressStore) Save(ctx context.Context, p domain.Progress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.client.Set(ctx, s.key(p.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: save progress: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Load treats an undecodable document like a missing one.
func (s *ProgressStore) Load(ctx context.Context, id string) (domain.Progress, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Progress{}, domain.ErrProgressNotFound
	}
	if err != nil {
		return domain.Progress{}, fmt.Errorf("%w: load progress: %v", domain.ErrStoreUnavailable, err)
	}
	var p domain.Progress
	if err := json.Unmarshal(raw, &p); err != nil {
		_ = s.client.Del(ctx, s.key(id)).Err()
		return domain.Progress{}, domain.ErrProgressNotFound
	}
	if p.Answers == nil {
		p.Answers = []domain.Answer{}
	}
	return p, nil
}

func (s *ProgressStore) Clear(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("%w: clear progress: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *ProgressStore) key(id string) string {
	return "quiz:progress:" + id
}
