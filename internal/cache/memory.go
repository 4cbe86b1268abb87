// In-memory cache implementation
//
// A sharded, size-bounded LRU with per-entry TTL. Sharding spreads lock
// contention across concurrent parses; each shard is an independent LRU
// bounded to MaxSize/ShardSize entries.
package cache

import (
	"container/list"
	"hash/fnv"
	"sync"
	"time"
)

// MemoryOptions configures a memory-backed Cache.
type MemoryOptions struct {
	MaxSize   int
	ShardSize int
}

type entry struct {
	key       Key
	value     interface{}
	expiresAt time.Time
	hasTTL    bool
}

type shard struct {
	mu       sync.Mutex
	capacity int
	items    map[Key]*list.Element
	order    *list.List // front = most recently used
	hits     uint64
	misses   uint64
	evictions   uint64
	expirations uint64
}

func newShard(capacity int) *shard {
	return &shard{
		capacity: capacity,
		items:    make(map[Key]*list.Element),
		order:    list.New(),
	}
}

func (s *shard) get(key Key) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.items[key]
	if !ok {
		s.misses++
		return nil, false
	}
	e := el.Value.(*entry)
	if e.hasTTL && time.Now().After(e.expiresAt) {
		s.order.Remove(el)
		delete(s.items, key)
		s.expirations++
		s.misses++
		return nil, false
	}
	s.order.MoveToFront(el)
	s.hits++
	return e.value, true
}

func (s *shard) set(key Key, value interface{}, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.items[key]; ok {
		e := el.Value.(*entry)
		e.value = value
		if ttl > 0 {
			e.hasTTL = true
			e.expiresAt = time.Now().Add(ttl)
		} else {
			e.hasTTL = false
		}
		s.order.MoveToFront(el)
		return
	}

	e := &entry{key: key, value: value}
	if ttl > 0 {
		e.hasTTL = true
		e.expiresAt = time.Now().Add(ttl)
	}
	el := s.order.PushFront(e)
	s.items[key] = el

	if s.capacity > 0 && len(s.items) > s.capacity {
		back := s.order.Back()
		if back != nil {
			s.order.Remove(back)
			delete(s.items, back.Value.(*entry).key)
			s.evictions++
		}
	}
}

func (s *shard) delete(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.items[key]; ok {
		s.order.Remove(el)
		delete(s.items, key)
	}
}

func (s *shard) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[Key]*list.Element)
	s.order = list.New()
}

func (s *shard) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// memoryCache is a sharded LRU implementation of Cache.
type memoryCache struct {
	shards []*shard
}

// NewMemoryWithOptions creates a sharded in-memory cache.
func NewMemoryWithOptions(opts MemoryOptions) Cache {
	shardSize := opts.ShardSize
	if shardSize <= 0 {
		shardSize = 1
	}
	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = 10000
	}
	perShard := maxSize / shardSize
	if perShard <= 0 {
		perShard = 1
	}

	shards := make([]*shard, shardSize)
	for i := range shards {
		shards[i] = newShard(perShard)
	}
	return &memoryCache{shards: shards}
}

func (c *memoryCache) shardFor(key Key) *shard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return c.shards[h.Sum32()%uint32(len(c.shards))]
}

func (c *memoryCache) Get(key Key) (interface{}, bool) {
	return c.shardFor(key).get(key)
}

func (c *memoryCache) Set(key Key, value interface{}, ttl time.Duration) {
	c.shardFor(key).set(key, value, ttl)
}

func (c *memoryCache) Delete(key Key) {
	c.shardFor(key).delete(key)
}

func (c *memoryCache) Clear() {
	for _, s := range c.shards {
		s.clear()
	}
}

func (c *memoryCache) Size() int {
	total := 0
	for _, s := range c.shards {
		total += s.size()
	}
	return total
}

func (c *memoryCache) Stats() Stats {
	var st Stats
	for _, s := range c.shards {
		s.mu.Lock()
		st.Hits += s.hits
		st.Misses += s.misses
		st.Evictions += s.evictions
		st.Expirations += s.expirations
		st.Size += len(s.items)
		s.mu.Unlock()
	}
	return st
}
