package mcpserver

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/oas2ir/parser"
)

// resultCache keeps recent conversion results for the life of the server.
// It is bounded by entry count (least recently used goes first) and every
// entry carries its own expiry.
type resultCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front is most recently used
	byKey    map[string]*list.Element
	sweeping atomic.Bool
}

type cachedResult struct {
	key       string
	result    *parser.Result
	expiresAt time.Time
}

func newResultCache(capacity int) *resultCache {
	return &resultCache{
		capacity: capacity,
		order:    list.New(),
		byKey:    make(map[string]*list.Element),
	}
}

var results = newResultCache(cfg.CacheMaxSize)

// lookup returns the live result for key and marks it recently used. An
// expired entry is dropped on the way.
func (c *resultCache) lookup(key string) *parser.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.byKey[key]
	if !ok {
		return nil
	}
	entry := el.Value.(*cachedResult)
	if time.Now().After(entry.expiresAt) {
		c.removeLocked(el)
		return nil
	}
	c.order.MoveToFront(el)
	return entry.result
}

// store records result under key until ttl elapses.
func (c *resultCache) store(key string, result *parser.Result, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry := &cachedResult{key: key, result: result, expiresAt: time.Now().Add(ttl)}
	if el, ok := c.byKey[key]; ok {
		el.Value = entry
		c.order.MoveToFront(el)
		return
	}
	for c.capacity > 0 && c.order.Len() >= c.capacity {
		c.removeLocked(c.order.Back())
	}
	c.byKey[key] = c.order.PushFront(entry)
}

// purgeExpired drops every entry whose expiry is before now.
func (c *resultCache) purgeExpired(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if now.After(el.Value.(*cachedResult).expiresAt) {
			c.removeLocked(el)
		}
		el = next
	}
}

// runSweeper purges expired entries every interval until ctx ends. Only one
// sweeper runs at a time; extra calls return immediately.
func (c *resultCache) runSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || !c.sweeping.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeping.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				c.purgeExpired(now)
			}
		}
	}()
}

func (c *resultCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.byKey = make(map[string]*list.Element)
}

func (c *resultCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *resultCache) removeLocked(el *list.Element) {
	c.order.Remove(el)
	delete(c.byKey, el.Value.(*cachedResult).key)
}
