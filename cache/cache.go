// Package cache implements a fixed-capacity LRU cache of int keys to int
// values with O(1) Get and Put.
//
// An LRUCache is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every call under a single lock.
package cache

// cache/cache.go

import (
	"github.com/evanjt06/intlru/internal"
	"go.uber.org/zap"
)

// ErrInvalidCapacity is returned by NewLRUCache for capacities below 1.
var ErrInvalidCapacity = internal.ErrInvalidCapacity

type LRUCache struct {
	capacity int
	index    map[int]int // key -> arena slot
	nodes    []entry     // slots 0 and 1 are the head/tail sentinels
	free     []int
	onEvict  func(key, value int)
	Logger   *zap.SugaredLogger
}

type Option func(*LRUCache)

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(kv *LRUCache) {
		if logger != nil {
			kv.Logger = logger
		}
	}
}

// WithEvictCallback registers fn to be called for every evicted entry,
// after the entry has left the cache.
func WithEvictCallback(fn func(key, value int)) Option {
	return func(kv *LRUCache) {
		kv.onEvict = fn
	}
}

// constructor
func NewLRUCache(capacity int, opts ...Option) (*LRUCache, error) {
	if err := internal.ValidateCapacity(capacity); err != nil {
		return nil, err
	}

	kv := &LRUCache{
		capacity: capacity,
		index:    make(map[int]int),
		nodes:    make([]entry, 2),
		Logger:   zap.NewNop().Sugar(),
	}
	kv.nodes[head].next = tail
	kv.nodes[tail].prev = head

	for _, opt := range opts {
		opt(kv)
	}

	return kv, nil
}

// flush all logs
func (kv *LRUCache) Close() {
	_ = kv.Logger.Sync()
}

// Get returns the value for key and marks it most recently used.
// A miss returns false and leaves the cache untouched.
func (kv *LRUCache) Get(key int) (int, bool) {
	i, ok := kv.index[key]
	if !ok {
		return 0, false
	}

	kv.moveToHead(i)

	kv.Logger.Debugw("Moved entry to front of LRU",
		"key", key,
	)
	return kv.nodes[i].value, true
}

// Put inserts or overwrites key and marks it most recently used. Inserting
// a new key into a full cache evicts the least recently used entry.
func (kv *LRUCache) Put(key, value int) {
	if i, ok := kv.index[key]; ok {
		kv.nodes[i].value = value
		kv.moveToHead(i)

		kv.Logger.Debugw("Updated entry and moved to front of LRU",
			"key", key,
			"value", value,
		)
		return
	}

	i := kv.alloc(key, value)
	kv.index[key] = i
	kv.insertAtHead(i)

	kv.Logger.Debugw("Inserted entry at front of LRU",
		"key", key,
		"value", value,
	)

	if len(kv.index) > kv.capacity {
		kv.evict()
	}
}

func (kv *LRUCache) evict() {
	i := kv.popTail()
	evicted := kv.nodes[i]
	delete(kv.index, evicted.key)
	kv.release(i)

	kv.Logger.Debugw("Deleted entry due to capacity",
		"key", evicted.key,
	)

	if kv.onEvict != nil {
		kv.onEvict(evicted.key, evicted.value)
	}
}

func (kv *LRUCache) Len() int {
	return len(kv.index)
}

func (kv *LRUCache) Cap() int {
	return kv.capacity
}

// Keys returns the resident keys from most to least recently used without
// changing their order.
func (kv *LRUCache) Keys() []int {
	keys := make([]int, 0, len(kv.index))
	for i := kv.nodes[head].next; i != tail; i = kv.nodes[i].next {
		keys = append(keys, kv.nodes[i].key)
	}
	return keys
}
