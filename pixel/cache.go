// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixel

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/softgpu"
	"github.com/gogpu/softgpu/state"
)

// shardCount is the number of cache shards for reduced lock contention.
// Must be a power of 2 for fast modulo via bitwise AND.
const shardCount = 16

const shardMask = shardCount - 1

// Cache maps a PixelFuncID to its specialized pixel function.
//
// Entries are immutable once inserted and the cache holds at most one entry
// per distinct identifier. The cache is never partially invalidated: Clear
// drops every entry wholesale (used on context resets). Because synthesis
// is deterministic, a function resolved after a clear behaves identically
// to the one resolved before it.
//
// Thread safety: concurrent Resolve calls are safe. A miss synthesizes the
// function under the shard lock, so two callers racing on the same
// identifier cannot duplicate-insert conflicting entries.
type Cache struct {
	shards [shardCount]cacheShard

	// Statistics (atomic for zero-allocation reads)
	hits   atomic.Uint64
	misses atomic.Uint64
}

type cacheShard struct {
	mu      sync.RWMutex
	entries map[state.PixelFuncID]Func
}

// NewCache creates an empty pixel-function cache.
func NewCache() *Cache {
	c := &Cache{}
	for i := range c.shards {
		c.shards[i].entries = make(map[state.PixelFuncID]Func)
	}
	return c
}

func (c *Cache) shardFor(id *state.PixelFuncID) *cacheShard {
	return &c.shards[id.Key()&shardMask]
}

// Resolve returns the specialized pixel function for an identifier,
// synthesizing and inserting it on a miss.
func (c *Cache) Resolve(id state.PixelFuncID) Func {
	shard := c.shardFor(&id)

	shard.mu.RLock()
	fn, ok := shard.entries[id]
	shard.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return fn
	}

	shard.mu.Lock()
	defer shard.mu.Unlock()

	// Re-check after acquiring the write lock: another goroutine may have
	// synthesized the entry in the meantime.
	if fn, ok := shard.entries[id]; ok {
		c.hits.Add(1)
		return fn
	}

	c.misses.Add(1)
	fn = New(id)
	shard.entries[id] = fn
	softgpu.Logger().Debug("pixel: synthesized function", "key", id.Key())
	return fn
}

// Clear removes all entries. In-flight functions already resolved remain
// valid; future Resolve calls re-synthesize.
func (c *Cache) Clear() {
	for i := range c.shards {
		shard := &c.shards[i]
		shard.mu.Lock()
		shard.entries = make(map[state.PixelFuncID]Func)
		shard.mu.Unlock()
	}
}

// Len returns the total number of cached functions.
func (c *Cache) Len() int {
	total := 0
	for i := range c.shards {
		shard := &c.shards[i]
		shard.mu.RLock()
		total += len(shard.entries)
		shard.mu.RUnlock()
	}
	return total
}

// Stats holds cache hit/miss counters.
type Stats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

// Stats returns current cache statistics.
func (c *Cache) Stats() Stats {
	return Stats{
		Len:    c.Len(),
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}

// ResetStats resets the hit/miss counters to zero.
func (c *Cache) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
}
