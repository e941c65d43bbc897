package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"carbon-quiz-service/internal/app"
	"carbon-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const overviewKey = "quiz:admin:overview"

// OverviewCache stores the serialized admin overview in Redis so every
// instance behind a load balancer shares one snapshot. Redis failures fall
// back to the loader; the cache is never the source of truth.
type OverviewCache struct {
	client *redis.Client
	loader app.OverviewReader
	ttl    time.Duration
	sf     singleflight.Group

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewOverviewCache(client *redis.Client, loader app.OverviewReader, ttl time.Duration) *OverviewCache {
	return &OverviewCache{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *OverviewCache) Overview(ctx context.Context) (domain.Overview, error) {
	if ov, ok := c.cached(ctx); ok {
		return ov, nil
	}

	result, err, _ := c.sf.Do(overviewKey, func() (interface{}, error) {
		// Re-check cache in case another caller filled it.
		if ov, ok := c.cached(ctx); ok {
			return ov, nil
		}

		ov, err := c.loader.Overview(ctx)
		if err != nil {
			return domain.Overview{}, err
		}

		ttl := c.ttlWithJitter()
		if ttl <= 0 {
			return ov, nil
		}
		raw, err := json.Marshal(ov)
		if err != nil {
			return ov, nil
		}
		if err := c.client.Set(ctx, overviewKey, raw, ttl).Err(); err != nil {
			log.Printf("overview cache: store: %v", err)
		}
		return ov, nil
	})
	if err != nil {
		return domain.Overview{}, err
	}
	return result.(domain.Overview), nil
}

func (c *OverviewCache) cached(ctx context.Context) (domain.Overview, bool) {
	raw, err := c.client.Get(ctx, overviewKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("overview cache: read: %v", err)
		}
		return domain.Overview{}, false
	}
	var ov domain.Overview
	if err := json.Unmarshal(raw, &ov); err != nil {
		log.Printf("overview cache: decode: %v", err)
		return domain.Overview{}, false
	}
	return ov, true
}

func (c *OverviewCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
