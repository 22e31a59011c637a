package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/sprintertech/sprinter-settlement/settlement"
)

const (
	RESULT_TTL = time.Minute * 10
)

// ResultCache keeps finished settlement results so a resubmitted deposit is
// answered from memory instead of being settled again.
type ResultCache struct {
	resultCache *ttlcache.Cache[string, *settlement.SettlementResult]
}

func NewResultCache(ctx context.Context, ttl time.Duration) *ResultCache {
	if ttl == 0 {
		ttl = RESULT_TTL
	}
	cache := ttlcache.New(
		ttlcache.WithTTL[string, *settlement.SettlementResult](ttl),
		ttlcache.WithDisableTouchOnHit[string, *settlement.SettlementResult](),
	)

	rc := &ResultCache{
		resultCache: cache,
	}

	go cache.Start()
	go rc.watch(ctx)
	return rc
}

func (c *ResultCache) Get(key string) (*settlement.SettlementResult, bool) {
	item := c.resultCache.Get(key)
	if item == nil {
		return nil, false
	}

	return item.Value(), true
}

func (c *ResultCache) Set(key string, result *settlement.SettlementResult) {
	c.resultCache.Set(key, result, ttlcache.DefaultTTL)
}

func (c *ResultCache) Len() int {
	return c.resultCache.Len()
}

func (c *ResultCache) watch(ctx context.Context) {
	<-ctx.Done()
	c.resultCache.Stop()
}
