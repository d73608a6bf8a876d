package store

import (
	"context"
	"fmt"
	"log"

	"eduradarbackend/internal/chart"
)

// CachedSource wraps an upstream chart.Source with snapshot persistence.
// Successful fetches are saved; when the upstream fails the latest snapshot
// is served instead, so the chart degrades to stale data rather than empty.
// With no snapshot available the upstream error is returned unchanged.
type CachedSource struct {
	upstream chart.Source
	store    *SnapshotStore
}

// NewCachedSource wraps upstream with the given store.
func NewCachedSource(upstream chart.Source, store *SnapshotStore) (*CachedSource, error) {
	if upstream == nil {
		return nil, fmt.Errorf("cached source requires an upstream")
	}
	if store == nil {
		return nil, fmt.Errorf("cached source requires a store")
	}
	return &CachedSource{upstream: upstream, store: store}, nil
}

// Name returns the upstream source name.
func (c *CachedSource) Name() string { return c.upstream.Name() }

// Fetch delegates to the upstream and falls back to the latest snapshot on
// failure.
func (c *CachedSource) Fetch(ctx context.Context) ([]chart.RawRecord, error) {
	records, err := c.upstream.Fetch(ctx)
	if err == nil {
		if _, saveErr := c.store.Save(records); saveErr != nil {
			log.Printf("store: snapshot save failed: %v", saveErr)
		}
		return records, nil
	}

	cached, cacheErr := c.store.Latest()
	if cacheErr != nil {
		return nil, err
	}
	log.Printf("store: %s failed (%v), serving latest snapshot", c.upstream.Name(), err)
	return cached, nil
}
