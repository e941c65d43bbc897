package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"carbon-quiz-service/internal/domain"
)

func TestOverviewCacheCaches(t *testing.T) {
	loader := &countingLoader{overview: domain.Overview{TotalResults: 3}}
	cache := NewOverviewCache(loader, time.Minute)

	ov, err := cache.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if ov.TotalResults != 3 {
		t.Fatalf("expected 3 results, got %d", ov.TotalResults)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := cache.Overview(context.Background()); err != nil {
		t.Fatalf("overview 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestOverviewCacheExpires(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	loader := &countingLoader{}
	cache := newOverviewCache(loader, time.Minute, func() time.Time { return now })

	_, _ = cache.Overview(context.Background())
	now = now.Add(2 * time.Minute)
	_, _ = cache.Overview(context.Background())
	if loader.calls != 2 {
		t.Fatalf("expected reload after ttl, loader calls %d", loader.calls)
	}
}

func TestOverviewCacheZeroTTLDisablesCaching(t *testing.T) {
	loader := &countingLoader{}
	cache := NewOverviewCache(loader, 0)

	_, _ = cache.Overview(context.Background())
	_, _ = cache.Overview(context.Background())
	if loader.calls != 2 {
		t.Fatalf("expected every call to load, got %d", loader.calls)
	}
}

func TestOverviewCacheDoesNotCacheErrors(t *testing.T) {
	loader := &countingLoader{err: domain.ErrStoreUnavailable}
	cache := NewOverviewCache(loader, time.Minute)

	if _, err := cache.Overview(context.Background()); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected store error, got %v", err)
	}
	loader.setErr(nil)
	if _, err := cache.Overview(context.Background()); err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if loader.calls != 2 {
		t.Fatalf("expected two loads, got %d", loader.calls)
	}
}

type countingLoader struct {
	mu       sync.Mutex
	overview domain.Overview
	err      error
	calls    int
}

func (l *countingLoader) Overview(context.Context) (domain.Overview, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	return l.overview, l.err
}

func (l *countingLoader) setErr(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
}
