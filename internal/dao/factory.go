// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of b3t

package dao

import (
	"context"
	"time"
)

// StoreFactory implements the Factory interface over an in-memory catalogue.
type StoreFactory struct {
	catalog *Catalog
	cache   *ResourceCache
	latency time.Duration
}

// NewFactory creates a new StoreFactory. A nil catalogue uses the seed data.
func NewFactory(c *Catalog) *StoreFactory {
	if c == nil {
		c = SeedCatalog()
	}
	return &StoreFactory{
		catalog: c,
		cache:   NewResourceCache(DefaultCacheTTL),
	}
}

// SetLatency simulates a remote round trip on every list call.
func (f *StoreFactory) SetLatency(d time.Duration) {
	f.latency = d
}

// Catalog returns the backing catalogue.
func (f *StoreFactory) Catalog() *Catalog {
	return f.catalog
}

// Cache returns the snapshot cache.
func (f *StoreFactory) Cache() *ResourceCache {
	return f.cache
}

// Wait blocks for the configured latency or until the context is done.
func (f *StoreFactory) Wait(ctx context.Context) error {
	if f.latency <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(f.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
