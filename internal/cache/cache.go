// Package cache implements the derived, read-optimized projections kept
// next to the authoritative repository: per-entity mirrors, the remark geo
// index, the bounded latest-remarks window and per-user remark-id lists.
//
// Projections are never a source of truth. Every write here is best-effort
// on top of an already committed repository write: a failure must surface
// to the caller (so the execution envelope reports it) but readers that
// miss the cache fall back to the repository.
package cache

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Cache is the generic key-value backend contract. Implementations provide
// their own concurrency control; keys are never locked by this package.
type Cache interface {
	Add(ctx context.Context, key string, value any) error
	Get(ctx context.Context, key string) (any, error)
	Delete(ctx context.Context, key string) error
}

const (
	geoKey    = "remarks:geo"
	latestKey = "remarks:latest"
)

func remarkKey(id uuid.UUID) string { return "remarks:" + id.String() }

func userKey(userID string) string { return "users:" + userID }

func userRemarksKey(userID string) string { return "users:" + userID + ":remarks" }

func accountStateKey(userID string) string { return "users:" + userID + ":state" }

func entityKey(prefix, id string) string { return fmt.Sprintf("%s:%s", prefix, id) }
