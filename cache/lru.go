// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package cache provides a small generic read-through LRU, the same shape
// as the teacher's cache package, adapted to Go generics so callers don't
// juggle interface{} on either side of Get/Add.
package cache

import lru "github.com/hashicorp/golang-lru"

// LRU is a fixed-capacity, least-recently-used cache keyed by K.
type LRU[K comparable, V any] struct {
	inner *lru.Cache
}

// New builds an LRU holding at most maxSize entries.
func New[K comparable, V any](maxSize int) (*LRU[K, V], error) {
	inner, err := lru.New(maxSize)
	if err != nil {
		return nil, err
	}
	return &LRU[K, V]{inner: inner}, nil
}

// Get returns the cached value for key, if present.
func (l *LRU[K, V]) Get(key K) (V, bool) {
	v, ok := l.inner.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Add inserts or refreshes key's value, evicting the least-recently-used
// entry if the cache is full.
func (l *LRU[K, V]) Add(key K, value V) {
	l.inner.Add(key, value)
}

// Remove drops key, if present. Used for invalidation on writes that would
// otherwise make a cached value stale.
func (l *LRU[K, V]) Remove(key K) {
	l.inner.Remove(key)
}

// Loader produces the value for a cache miss.
type Loader[K comparable, V any] func(key K) (V, error)

// GetOrLoad returns the cached value for key, or computes and caches it via
// load on a miss.
func (l *LRU[K, V]) GetOrLoad(key K, load Loader[K, V]) (V, error) {
	if v, ok := l.Get(key); ok {
		return v, nil
	}
	v, err := load(key)
	if err != nil {
		var zero V
		return zero, err
	}
	l.Add(key, v)
	return v, nil
}
