package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"carbon-quiz-service/internal/app"
	"carbon-quiz-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

const overviewKey = "overview"

// OverviewCache caches the admin overview with a TTL so dashboard refreshes do
// not rescan every stored submission.
type OverviewCache struct {
	loader app.OverviewReader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	cached    domain.Overview
	expiresAt time.Time
}

func NewOverviewCache(loader app.OverviewReader, ttl time.Duration) *OverviewCache {
	return newOverviewCache(loader, ttl, time.Now)
}

func newOverviewCache(loader app.OverviewReader, ttl time.Duration, clock func() time.Time) *OverviewCache {
	return &OverviewCache{
		loader: loader,
		ttl:    ttl,
		clock:  clock,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *OverviewCache) Overview(ctx context.Context) (domain.Overview, error) {
	if ov, ok := c.fresh(c.clock()); ok {
		return ov, nil
	}

	result, err, _ := c.sf.Do(overviewKey, func() (interface{}, error) {
		now := c.clock()
		if ov, ok := c.fresh(now); ok {
			return ov, nil
		}

		ov, err := c.loader.Overview(ctx)
		if err != nil {
			return domain.Overview{}, err
		}
		if ttl := c.ttlWithJitter(); ttl > 0 {
			c.mu.Lock()
			c.cached = ov
			c.expiresAt = now.Add(ttl)
			c.mu.Unlock()
		}
		return ov, nil
	})
	if err != nil {
		return domain.Overview{}, err
	}
	return result.(domain.Overview), nil
}

func (c *OverviewCache) fresh(now time.Time) (domain.Overview, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.expiresAt.After(now) {
		return c.cached, true
	}
	return domain.Overview{}, false
}

func (c *OverviewCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
