package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/citywatch/storage-service/internal/domain"
)

// UserCache owns the user mirror and the per-user list of authored
// remark ids.
type UserCache struct {
	cache Cache
}

// NewUserCache creates a UserCache on top of the generic backend.
func NewUserCache(c Cache) *UserCache {
	return &UserCache{cache: c}
}

// Add upserts the user mirror.
func (c *UserCache) Add(ctx context.Context, user *domain.User) error {
	if err := c.cache.Add(ctx, userKey(user.UserID), user); err != nil {
		return fmt.Errorf("cache.UserCache.Add: %w", err)
	}
	return nil
}

// GetByID returns the mirrored user or domain.ErrNotFound.
func (c *UserCache) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	v, err := c.cache.Get(ctx, userKey(userID))
	if err != nil {
		return nil, fmt.Errorf("cache.UserCache.GetByID: %w", err)
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil, fmt.Errorf("cache.UserCache.GetByID: %w", domain.ErrNotFound)
	}
	return user, nil
}

// Delete removes the user mirror. The remark-id list is kept; it is
// rebuildable from the repository and owned by remark lifecycle events.
func (c *UserCache) Delete(ctx context.Context, userID string) error {
	if err := c.cache.Delete(ctx, userKey(userID)); err != nil {
		return fmt.Errorf("cache.UserCache.Delete: %w", err)
	}
	return nil
}

// AddRemark appends the remark id to the user's authored-remarks list.
// Idempotent: a duplicate id leaves the list unchanged.
func (c *UserCache) AddRemark(ctx context.Context, userID string, remarkID uuid.UUID) error {
	ids, err := c.remarkIDs(ctx, userID)
	if err != nil {
		return fmt.Errorf("cache.UserCache.AddRemark: %w", err)
	}
	for _, existing := range ids {
		if existing == remarkID {
			return nil
		}
	}
	ids = append(append(make([]uuid.UUID, 0, len(ids)+1), ids...), remarkID)
	if err := c.cache.Add(ctx, userRemarksKey(userID), ids); err != nil {
		return fmt.Errorf("cache.UserCache.AddRemark: %w", err)
	}
	return nil
}

// RemoveRemark drops the remark id from the user's authored-remarks list.
// Removing an id that is not present is a no-op.
func (c *UserCache) RemoveRemark(ctx context.Context, userID string, remarkID uuid.UUID) error {
	ids, err := c.remarkIDs(ctx, userID)
	if err != nil {
		return fmt.Errorf("cache.UserCache.RemoveRemark: %w", err)
	}
	next := make([]uuid.UUID, 0, len(ids))
	for _, existing := range ids {
		if existing != remarkID {
			next = append(next, existing)
		}
	}
	if len(next) == len(ids) {
		return nil
	}
	if err := c.cache.Add(ctx, userRemarksKey(userID), next); err != nil {
		return fmt.Errorf("cache.UserCache.RemoveRemark: %w", err)
	}
	return nil
}

// Remarks returns the ids of remarks authored by the user.
func (c *UserCache) Remarks(ctx context.Context, userID string) ([]uuid.UUID, error) {
	ids, err := c.remarkIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cache.UserCache.Remarks: %w", err)
	}
	return ids, nil
}

func (c *UserCache) remarkIDs(ctx context.Context, userID string) ([]uuid.UUID, error) {
	v, err := c.cache.Get(ctx, userRemarksKey(userID))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ids, _ := v.([]uuid.UUID)
	return ids, nil
}
