package cache

import (
	"context"
	"fmt"

	"github.com/citywatch/storage-service/internal/domain"
)

// mirror is a single-key, last-write-wins mirror of one entity type,
// keyed by "{prefix}:{id}".
type mirror[T any] struct {
	cache  Cache
	prefix string
}

func (m *mirror[T]) Add(ctx context.Context, id string, entity *T) error {
	if err := m.cache.Add(ctx, entityKey(m.prefix, id), entity); err != nil {
		return fmt.Errorf("cache.%s.Add: %w", m.prefix, err)
	}
	return nil
}

func (m *mirror[T]) GetByID(ctx context.Context, id string) (*T, error) {
	v, err := m.cache.Get(ctx, entityKey(m.prefix, id))
	if err != nil {
		return nil, fmt.Errorf("cache.%s.GetByID: %w", m.prefix, err)
	}
	entity, ok := v.(*T)
	if !ok {
		return nil, fmt.Errorf("cache.%s.GetByID: %w", m.prefix, domain.ErrNotFound)
	}
	return entity, nil
}

func (m *mirror[T]) Delete(ctx context.Context, id string) error {
	if err := m.cache.Delete(ctx, entityKey(m.prefix, id)); err != nil {
		return fmt.Errorf("cache.%s.Delete: %w", m.prefix, err)
	}
	return nil
}

// OperationCache mirrors asynchronous operation records.
type OperationCache struct{ mirror[domain.Operation] }

// NewOperationCache creates the operation mirror.
func NewOperationCache(c Cache) *OperationCache {
	return &OperationCache{mirror[domain.Operation]{cache: c, prefix: "operations"}}
}

// GroupCache mirrors groups.
type GroupCache struct{ mirror[domain.Group] }

// NewGroupCache creates the group mirror.
func NewGroupCache(c Cache) *GroupCache {
	return &GroupCache{mirror[domain.Group]{cache: c, prefix: "groups"}}
}

// OrganizationCache mirrors organizations.
type OrganizationCache struct{ mirror[domain.Organization] }

// NewOrganizationCache creates the organization mirror.
func NewOrganizationCache(c Cache) *OrganizationCache {
	return &OrganizationCache{mirror[domain.Organization]{cache: c, prefix: "organizations"}}
}

// UserNotificationSettingsCache mirrors per-user notification preferences,
// keyed by the stable user id.
type UserNotificationSettingsCache struct {
	mirror[domain.NotificationSettings]
}

// NewUserNotificationSettingsCache creates the settings mirror.
func NewUserNotificationSettingsCache(c Cache) *UserNotificationSettingsCache {
	return &UserNotificationSettingsCache{
		mirror[domain.NotificationSettings]{cache: c, prefix: "notification-settings"},
	}
}
