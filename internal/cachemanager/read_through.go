package cachemanager

import (
	"context"
	"time"
)

// ReadThrough computes missing values with load and caches successes.
type ReadThrough[V, I any] struct {
	cache Cache[V]
	load  func(ctx context.Context, input I) (V, error)
	ttl   time.Duration
}

// NewReadThrough wraps cache. A nil cache disables caching.
func NewReadThrough[V, I any](cache Cache[V], ttl time.Duration, load func(ctx context.Context, input I) (V, error)) *ReadThrough[V, I] {
	return &ReadThrough[V, I]{cache: cache, load: load, ttl: ttl}
}

// Get returns the cached value for key or loads it from input.
// Errors are not cached.
func (r *ReadThrough[V, I]) Get(ctx context.Context, key string, input I) (V, error) {
	if r.cache == nil {
		return r.load(ctx, input)
	}
	if v, ok := r.cache.Get(ctx, key); ok {
		return v, nil
	}
	v, err := r.load(ctx, input)
	if err != nil {
		return v, err
	}
	r.cache.Set(ctx, key, v, r.ttl)
	return v, nil
}

// Invalidate drops every cached value.
func (r *ReadThrough[V, I]) Invalidate(ctx context.Context) {
	if r.cache != nil {
		r.cache.Flush(ctx)
	}
}
