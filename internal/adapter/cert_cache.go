// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/rsa"
	"fmt"
	"sync"
	"time"
)

// minRefetchInterval limits how often an unknown kid may force a download
// while the cached set is still fresh.
const minRefetchInterval = time.Minute

type fetchKeysFunc func(ctx context.Context) (map[string]*rsa.PublicKey, time.Duration, error)

// certCache holds the public keys published by the identity provider, keyed
// by kid, until the max-age announced by the endpoint runs out.
type certCache struct {
	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
	expiresAt time.Time
	fetch     fetchKeysFunc
}

func newCertCache(fetch fetchKeysFunc) *certCache {
	return &certCache{
		keys:  make(map[string]*rsa.PublicKey),
		fetch: fetch,
	}
}

// key returns the public key for kid, downloading the key set when the cache
// is stale or does not know kid.
func (c *certCache) key(ctx context.Context, kid string, now time.Time) (*rsa.PublicKey, error) {
	c.mu.RLock()
	k, ok := c.keys[kid]
	fresh := now.Before(c.expiresAt)
	c.mu.RUnlock()
	if ok && fresh {
		return k, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// another request may have refreshed while we waited for the lock
	fresh = now.Before(c.expiresAt)
	if k, ok = c.keys[kid]; ok && fresh {
		return k, nil
	}
	if fresh && now.Sub(c.fetchedAt) < minRefetchInterval {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKeyID, kid)
	}

	keys, ttl, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.keys = keys
	c.fetchedAt = now
	c.expiresAt = now.Add(ttl)

	if k, ok = c.keys[kid]; ok {
		return k, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKeyID, kid)
}
