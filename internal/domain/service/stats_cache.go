package service

import (
	"context"

	"storefront/internal/errors"
)

// ErrCacheMiss is returned by StatsCache.Get when the field is not cached.
var ErrCacheMiss = errors.New("cache miss")

// Generation identifies the cache contents a Get observed. Invalidate advances it.
type Generation int64

// StatsCache stores computed product aggregates under named fields.
// All fields are dropped together by Invalidate.
type StatsCache interface {
	// Get decodes the cached field into dest or returns ErrCacheMiss. The current
	// generation is returned with a miss so the caller can Set against it.
	Get(ctx context.Context, field string, dest any) (Generation, error)

	// Set stores value under field for gen. Values stored for a generation that
	// Invalidate has since advanced past are never served.
	Set(ctx context.Context, gen Generation, field string, value any) error

	// Invalidate drops every cached field.
	Invalidate(ctx context.Context) error
}
