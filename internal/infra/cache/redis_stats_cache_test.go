package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHashClient keeps strings and hashes in memory and records expirations.
type fakeHashClient struct {
	values  map[string]string
	hashes  map[string]map[string]string
	expires map[string]time.Duration
	err     error
}

func newFakeHashClient() *fakeHashClient {
	return &fakeHashClient{
		values:  map[string]string{},
		hashes:  map[string]map[string]string{},
		expires: map[string]time.Duration{},
	}
}

func (f *fakeHashClient) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	value, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(value, nil)
}

func (f *fakeHashClient) Incr(_ context.Context, key string) *redis.IntCmd {
	n, _ := strconv.ParseInt(f.values[key], 10, 64)
	n++
	f.values[key] = strconv.FormatInt(n, 10)

	return redis.NewIntResult(n, nil)
}

func (f *fakeHashClient) HGet(_ context.Context, key, field string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	value, ok := f.hashes[key][field]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(value, nil)
}

func (f *fakeHashClient) HSet(_ context.Context, key string, values ...any) *redis.IntCmd {
	if f.hashes[key] == nil {
		f.hashes[key] = map[string]string{}
	}
	for i := 0; i+1 < len(values); i += 2 {
		f.hashes[key][values[i].(string)] = string(values[i+1].([]byte))
	}

	return redis.NewIntResult(int64(len(values)/2), nil)
}

func (f *fakeHashClient) Expire(_ context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.expires[key] = expiration

	return redis.NewBoolResult(true, nil)
}

func (f *fakeHashClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(f.hashes, key)
		delete(f.expires, key)
	}

	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestRedisStatsCache_SetThenGet(t *testing.T) {
	client := newFakeHashClient()
	statsCache := NewRedisStatsCache(client, time.Minute)
	ctx := context.Background()

	gen, err := statsCache.Get(ctx, constants.StatsPriceRanges, &map[string]int{})
	require.ErrorIs(t, err, service.ErrCacheMiss)
	require.NoError(t, statsCache.Set(ctx, gen, constants.StatsPriceRanges, map[string]int{"0-100": 3}))

	var got map[string]int
	_, err = statsCache.Get(ctx, constants.StatsPriceRanges, &got)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"0-100": 3}, got)
	assert.Equal(t, time.Minute, client.expires[constants.ProductStatsHashKey+":0"])
}

func TestRedisStatsCache_Miss(t *testing.T) {
	statsCache := NewRedisStatsCache(newFakeHashClient(), time.Minute)

	var got float64
	gen, err := statsCache.Get(context.Background(), constants.StatsAveragePrice, &got)
	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.Equal(t, service.Generation(0), gen)
}

func TestRedisStatsCache_InvalidateDropsAllFields(t *testing.T) {
	client := newFakeHashClient()
	statsCache := NewRedisStatsCache(client, 0)
	ctx := context.Background()

	require.NoError(t, statsCache.Set(ctx, 0, constants.StatsAveragePrice, 12.5))
	require.NoError(t, statsCache.Set(ctx, 0, constants.StatsTotalPVValue, 3.0))
	assert.Equal(t, staleGenerationTTL, client.expires[constants.ProductStatsHashKey+":0"])
	require.NoError(t, statsCache.Invalidate(ctx))

	var got float64
	gen, err := statsCache.Get(ctx, constants.StatsAveragePrice, &got)
	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.Equal(t, service.Generation(1), gen)
	_, err = statsCache.Get(ctx, constants.StatsTotalPVValue, &got)
	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.NotContains(t, client.hashes, constants.ProductStatsHashKey+":0")
}

func TestRedisStatsCache_ValueComputedBeforeInvalidateIsNeverServed(t *testing.T) {
	statsCache := NewRedisStatsCache(newFakeHashClient(), time.Minute)
	ctx := context.Background()

	var got float64
	gen, err := statsCache.Get(ctx, constants.StatsAveragePrice, &got)
	require.ErrorIs(t, err, service.ErrCacheMiss)

	// A product write lands while the reader is still computing the old average.
	require.NoError(t, statsCache.Invalidate(ctx))
	require.NoError(t, statsCache.Set(ctx, gen, constants.StatsAveragePrice, 10.0))

	next, err := statsCache.Get(ctx, constants.StatsAveragePrice, &got)
	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.Greater(t, next, gen)

	require.NoError(t, statsCache.Set(ctx, next, constants.StatsAveragePrice, 20.0))
	_, err = statsCache.Get(ctx, constants.StatsAveragePrice, &got)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, got, 1e-9)
}

func TestRedisStatsCache_BackendError(t *testing.T) {
	client := newFakeHashClient()
	client.err = assert.AnError
	statsCache := NewRedisStatsCache(client, time.Minute)

	var got float64
	_, err := statsCache.Get(context.Background(), constants.StatsAveragePrice, &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrCacheMiss)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNoopStatsCache(t *testing.T) {
	statsCache := NewNoopStatsCache()
	ctx := context.Background()

	require.NoError(t, statsCache.Set(ctx, 0, constants.StatsAveragePrice, 1.0))

	var got float64
	_, err := statsCache.Get(ctx, constants.StatsAveragePrice, &got)
	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.NoError(t, statsCache.Invalidate(ctx))
}
