package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/citywatch/storage-service/internal/domain"
)

// DefaultLatestLimit bounds the latest-remarks window when no explicit
// limit is configured.
const DefaultLatestLimit = 25

// AddOptions selects which derived projections an upsert touches besides
// the per-remark mirror.
type AddOptions struct {
	Geo    bool
	Latest bool
}

// GeoEntry is one member of the geo index: remark membership plus its
// point coordinates (longitude, latitude).
type GeoEntry struct {
	RemarkID    uuid.UUID `json:"remarkId"`
	Coordinates []float64 `json:"coordinates"`
}

// RemarkCache owns the remark projections: the id-keyed mirror, the geo
// index and the bounded latest window.
type RemarkCache struct {
	cache       Cache
	latestLimit int
}

// NewRemarkCache creates a RemarkCache with the given latest-window bound.
// A non-positive limit falls back to DefaultLatestLimit.
func NewRemarkCache(c Cache, latestLimit int) *RemarkCache {
	if latestLimit <= 0 {
		latestLimit = DefaultLatestLimit
	}
	return &RemarkCache{cache: c, latestLimit: latestLimit}
}

// Add upserts the remark mirror and, per opts, registers the remark in the
// geo index and pushes it onto the latest window.
func (c *RemarkCache) Add(ctx context.Context, remark *domain.Remark, opts AddOptions) error {
	if err := c.cache.Add(ctx, remarkKey(remark.ID), remark); err != nil {
		return fmt.Errorf("cache.RemarkCache.Add: %w", err)
	}
	if opts.Geo {
		if err := c.addGeo(ctx, remark); err != nil {
			return fmt.Errorf("cache.RemarkCache.Add: geo: %w", err)
		}
	}
	if opts.Latest {
		if err := c.addLatest(ctx, remark.ID); err != nil {
			return fmt.Errorf("cache.RemarkCache.Add: latest: %w", err)
		}
	}
	return nil
}

// GetByID returns the mirrored remark or domain.ErrNotFound when the
// mirror is absent or stale-typed.
func (c *RemarkCache) GetByID(ctx context.Context, id uuid.UUID) (*domain.Remark, error) {
	v, err := c.cache.Get(ctx, remarkKey(id))
	if err != nil {
		return nil, fmt.Errorf("cache.RemarkCache.GetByID: %w", err)
	}
	remark, ok := v.(*domain.Remark)
	if !ok {
		return nil, fmt.Errorf("cache.RemarkCache.GetByID: %w", domain.ErrNotFound)
	}
	return remark, nil
}

// Delete removes the mirror and evicts the remark from the geo index and
// the latest window.
func (c *RemarkCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.cache.Delete(ctx, remarkKey(id)); err != nil {
		return fmt.Errorf("cache.RemarkCache.Delete: %w", err)
	}
	if err := c.removeGeo(ctx, id); err != nil {
		return fmt.Errorf("cache.RemarkCache.Delete: geo: %w", err)
	}
	if err := c.removeLatest(ctx, id); err != nil {
		return fmt.Errorf("cache.RemarkCache.Delete: latest: %w", err)
	}
	return nil
}

// Geo returns the current geo index members.
func (c *RemarkCache) Geo(ctx context.Context) ([]GeoEntry, error) {
	entries, err := c.geoEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("cache.RemarkCache.Geo: %w", err)
	}
	return entries, nil
}

// Latest returns the latest-window remark ids, newest first.
func (c *RemarkCache) Latest(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := c.latestIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("cache.RemarkCache.Latest: %w", err)
	}
	return ids, nil
}

func (c *RemarkCache) addGeo(ctx context.Context, remark *domain.Remark) error {
	entries, err := c.geoEntries(ctx)
	if err != nil {
		return err
	}
	next := make([]GeoEntry, 0, len(entries)+1)
	for _, e := range entries {
		if e.RemarkID != remark.ID {
			next = append(next, e)
		}
	}
	next = append(next, GeoEntry{RemarkID: remark.ID, Coordinates: remark.Location.Coordinates})
	return c.cache.Add(ctx, geoKey, next)
}

func (c *RemarkCache) removeGeo(ctx context.Context, id uuid.UUID) error {
	entries, err := c.geoEntries(ctx)
	if err != nil {
		return err
	}
	next := make([]GeoEntry, 0, len(entries))
	for _, e := range entries {
		if e.RemarkID != id {
			next = append(next, e)
		}
	}
	return c.cache.Add(ctx, geoKey, next)
}

// addLatest pushes the id to the front of the window, deduplicating an
// existing occurrence and evicting the oldest entries beyond the bound.
func (c *RemarkCache) addLatest(ctx context.Context, id uuid.UUID) error {
	ids, err := c.latestIDs(ctx)
	if err != nil {
		return err
	}
	next := make([]uuid.UUID, 0, len(ids)+1)
	next = append(next, id)
	for _, existing := range ids {
		if existing != id {
			next = append(next, existing)
		}
	}
	if len(next) > c.latestLimit {
		next = next[:c.latestLimit]
	}
	return c.cache.Add(ctx, latestKey, next)
}

func (c *RemarkCache) removeLatest(ctx context.Context, id uuid.UUID) error {
	ids, err := c.latestIDs(ctx)
	if err != nil {
		return err
	}
	next := make([]uuid.UUID, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			next = append(next, existing)
		}
	}
	return c.cache.Add(ctx, latestKey, next)
}

func (c *RemarkCache) geoEntries(ctx context.Context) ([]GeoEntry, error) {
	v, err := c.cache.Get(ctx, geoKey)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	entries, _ := v.([]GeoEntry)
	return entries, nil
}

func (c *RemarkCache) latestIDs(ctx context.Context) ([]uuid.UUID, error) {
	v, err := c.cache.Get(ctx, latestKey)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ids, _ := v.([]uuid.UUID)
	return ids, nil
}
