package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"carbon-quiz-service/internal/domain"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestProgressStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := NewProgressStore(newClient(mr), time.Hour)
	saved := domain.Progress{
		Version:      domain.ProgressVersion,
		ID:           "run-1",
		User:         domain.UserInfo{Email: "a@x.com", Company: "Acme"},
		CurrentIndex: 2,
		Answers:      []domain.Answer{{QuestionID: 1, Score: 2}, {QuestionID: 2, Score: 5}},
		SavedAt:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := store.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !mr.Exists("quiz:progress:run-1") {
		t.Fatalf("expected redis key to be set")
	}
	if ttl := mr.TTL("quiz:progress:run-1"); ttl != time.Hour {
		t.Fatalf("expected ttl 1h, got %v", ttl)
	}

	got, err := store.Load(ctx, "run-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.User.Company != "Acme" || got.CurrentIndex != 2 || len(got.Answers) != 2 || got.Answers[1].Score != 5 {
		t.Fatalf("unexpected progress %+v", got)
	}

	if err := store.Clear(ctx, "run-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if mr.Exists("quiz:progress:run-1") {
		t.Fatalf("expected redis key to be removed")
	}
	if _, err := store.Load(ctx, "run-1"); !errors.Is(err, domain.ErrProgressNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProgressStoreExpiresAndDropsGarbage(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := NewProgressStore(newClient(mr), time.Minute)
	_ = store.Save(ctx, domain.Progress{ID: "run-1"})
	mr.FastForward(2 * time.Minute)
	if _, err := store.Load(ctx, "run-1"); !errors.Is(err, domain.ErrProgressNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}

	_ = mr.Set("quiz:progress:run-2", "{not json")
	if _, err := store.Load(ctx, "run-2"); !errors.Is(err, domain.ErrProgressNotFound) {
		t.Fatalf("expected garbage to read as missing, got %v", err)
	}
	if mr.Exists("quiz:progress:run-2") {
		t.Fatalf("expected garbage key to be removed")
	}
}

func TestProgressStoreReportsUnavailableRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	client := newClient(mr)
	mr.Close()

	store := NewProgressStore(client, time.Minute)
	if err := store.Save(context.Background(), domain.Progress{ID: "x"}); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected store unavailable, got %v", err)
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
