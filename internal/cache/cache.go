package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	value      interface{}
	sliding    time.Duration
	slideUntil time.Time
	hardUntil  time.Time
}

func (e *entry) expired(now time.Time) bool {
	return !now.Before(e.slideUntil) || !now.Before(e.hardUntil)
}

// Cache is a process-wide store with per-entry sliding and absolute
// expiration. Get, Set and Delete are individually atomic; a
// check-miss/compute/set sequence is not, so concurrent cold misses may
// compute the same value twice. Last write wins.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
	done    chan struct{}
}

func New() *Cache {
	c := &Cache{
		entries: make(map[string]*entry),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go c.sweepLoop()
	return c
}

// Get returns the live value for key and pushes its sliding deadline
// forward.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	now := c.now()
	if e.expired(now) {
		delete(c.entries, key)
		return nil, false
	}
	e.slideUntil = now.Add(e.sliding)
	if e.slideUntil.After(e.hardUntil) {
		e.slideUntil = e.hardUntil
	}
	return e.value, true
}

// Set stores value under key. The entry lives for at most absolute, and
// dies earlier if unread for longer than sliding.
func (c *Cache) Set(key string, value interface{}, sliding, absolute time.Duration) {
	now := c.now()
	c.mu.Lock()
	c.entries[key] = &entry{
		value:      value,
		sliding:    sliding,
		slideUntil: now.Add(sliding),
		hardUntil:  now.Add(absolute),
	}
	c.mu.Unlock()
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// DeletePrefix removes every entry whose key starts with prefix.
func (c *Cache) DeletePrefix(prefix string) {
	c.mu.Lock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) Stop() {
	close(c.done)
}

func (c *Cache) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.done:
			return
		}
	}
}

func (c *Cache) sweep() {
	now := c.now()
	c.mu.Lock()
	for k, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
}
