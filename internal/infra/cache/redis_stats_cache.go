package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// staleGenerationTTL bounds the lifetime of a generation hash when no TTL is configured.
const staleGenerationTTL = 24 * time.Hour

// hashClient is the subset of the redis client the stats cache needs.
type hashClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// redisStatsCache keeps the fields of one generation in one hash. Invalidate bumps
// the generation counter, so a value computed before it lands in a hash no reader
// looks at any more.
type redisStatsCache struct {
	client hashClient
	key    string
	genKey string
	ttl    time.Duration
}

// NewRedisStatsCache creates a StatsCache stored under the product stats hash.
func NewRedisStatsCache(client hashClient, ttl time.Duration) service.StatsCache {
	return &redisStatsCache{
		client: client,
		key:    constants.ProductStatsHashKey,
		genKey: constants.ProductStatsGenerationKey,
		ttl:    ttl,
	}
}

func (c *redisStatsCache) hashKey(gen service.Generation) string {
	return c.key + ":" + strconv.FormatInt(int64(gen), 10)
}

func (c *redisStatsCache) generation(ctx context.Context) (service.Generation, error) {
	gen, err := c.client.Get(ctx, c.genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to read stats generation")
	}

	return service.Generation(gen), nil
}

func (c *redisStatsCache) Get(ctx context.Context, field string, dest any) (service.Generation, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return 0, err
	}

	raw, err := c.client.HGet(ctx, c.hashKey(gen), field).Bytes()
	if errors.Is(err, redis.Nil) {
		return gen, service.ErrCacheMiss
	}
	if err != nil {
		return gen, errors.Wrapf(err, "failed to read stats field %s", field)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return gen, errors.Wrapf(err, "failed to decode stats field %s", field)
	}

	return gen, nil
}

func (c *redisStatsCache) Set(ctx context.Context, gen service.Generation, field string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode stats field %s", field)
	}

	key := c.hashKey(gen)
	if err := c.client.HSet(ctx, key, field, raw).Err(); err != nil {
		return errors.Wrapf(err, "failed to write stats field %s", field)
	}

	ttl := c.ttl
	if ttl <= 0 {
		ttl = staleGenerationTTL
	}
	if err := c.client.Expire(ctx, key, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set stats expiry")
	}

	return nil
}

func (c *redisStatsCache) Invalidate(ctx context.Context) error {
	next, err := c.client.Incr(ctx, c.genKey).Result()
	if err != nil {
		return errors.Wrap(err, "failed to invalidate stats")
	}

	return errors.Wrap(c.client.Del(ctx, c.hashKey(service.Generation(next-1))).Err(), "failed to drop stale stats")
}
