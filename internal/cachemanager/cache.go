// Package cachemanager caches rendered output, such as glamour previews,
// keyed by whatever determines the rendering.
package cachemanager

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/zehraz1/portfolio/internal/log"
)

const (
	DefaultExpiration      = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// Cache stores values of type V by string key.
type Cache[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
	Flush(ctx context.Context)
	Len() int
}

// Key joins the parts that identify a cached value.
func Key(parts ...any) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = fmt.Sprint(p)
	}
	return strings.Join(s, "|")
}

// Memory is a Cache backed by go-cache. It is safe for concurrent use, so
// one instance can be shared by every SSH session.
type Memory[V any] struct {
	name  string
	cache *gocache.Cache
}

var _ Cache[string] = (*Memory[string])(nil)

// NewMemory creates an in-memory cache. name only appears in log lines.
func NewMemory[V any](name string, expiration, cleanup time.Duration) *Memory[V] {
	return &Memory[V]{name: name, cache: gocache.New(expiration, cleanup)}
}

// Get returns the cached value for key.
func (m *Memory[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	raw, ok := m.cache.Get(key)
	if !ok {
		return zero, false
	}
	v, ok := raw.(V)
	if !ok {
		log.Error(log.CatCache, "cached value has wrong type", "cache", m.name, "key", key)
		return zero, false
	}
	log.Debug(log.CatCache, "hit", "cache", m.name, "key", key)
	return v, true
}

// Set stores value. A ttl of 0 uses the cache default.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	m.cache.Set(key, value, ttl)
}

// Delete removes keys.
func (m *Memory[V]) Delete(_ context.Context, keys ...string) {
	for _, k := range keys {
		m.cache.Delete(k)
	}
}

// Flush drops everything, e.g. after content is reloaded.
func (m *Memory[V]) Flush(_ context.Context) {
	m.cache.Flush()
	log.Debug(log.CatCache, "flushed", "cache", m.name)
}

// Len returns the number of items, including expired ones not yet evicted.
func (m *Memory[V]) Len() int {
	return m.cache.ItemCount()
}
