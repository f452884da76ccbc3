// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package authz

import (
	"strings"
	"sync"
	"time"
)

// decisionCache memoizes (role, object, action) decisions. Entries expire
// after ttl and are swept by a background goroutine until stop.
type decisionCache struct {
	ttl      time.Duration
	now      func() time.Time
	mu       sync.RWMutex
	items    map[string]decision
	stopChan chan struct{}
	stopOnce sync.Once
}

type decision struct {
	allowed   bool
	expiresAt time.Time
}

func newDecisionCache(ttl time.Duration) *decisionCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	c := &decisionCache{
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]decision),
		stopChan: make(chan struct{}),
	}
	go c.sweep()
	return c
}

func cacheKey(subject, object, action string) string {
	return subject + "|" + object + "|" + action
}

func (c *decisionCache) get(subject, object, action string) (allowed, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, found := c.items[cacheKey(subject, object, action)]
	if !found || c.now().After(d.expiresAt) {
		return false, false
	}
	return d.allowed, true
}

func (c *decisionCache) set(subject, object, action string, allowed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[cacheKey(subject, object, action)] = decision{
		allowed:   allowed,
		expiresAt: c.now().Add(c.ttl),
	}
}

// invalidateSubject drops every decision cached for subject.
func (c *decisionCache) invalidateSubject(subject string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := subject + "|"
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

func (c *decisionCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]decision)
}

func (c *decisionCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *decisionCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, d := range c.items {
		if now.After(d.expiresAt) {
			delete(c.items, key)
		}
	}
}

func (c *decisionCache) sweep() {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

// stop is idempotent.
func (c *decisionCache) stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
}
