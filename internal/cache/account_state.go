package cache

import (
	"context"
	"fmt"
)

// AccountStateService keeps the ephemeral per-user state flag under
// "users:{id}:state". It is set and deleted independently of the
// repository record.
type AccountStateService struct {
	cache Cache
}

// NewAccountStateService creates the service on top of the generic backend.
func NewAccountStateService(c Cache) *AccountStateService {
	return &AccountStateService{cache: c}
}

// Set stores the state flag for the user.
func (s *AccountStateService) Set(ctx context.Context, userID, state string) error {
	if err := s.cache.Add(ctx, accountStateKey(userID), state); err != nil {
		return fmt.Errorf("cache.AccountStateService.Set: %w", err)
	}
	return nil
}

// Get returns the state flag, or domain.ErrNotFound when none is set.
func (s *AccountStateService) Get(ctx context.Context, userID string) (string, error) {
	v, err := s.cache.Get(ctx, accountStateKey(userID))
	if err != nil {
		return "", fmt.Errorf("cache.AccountStateService.Get: %w", err)
	}
	state, _ := v.(string)
	return state, nil
}

// Delete clears the state flag.
func (s *AccountStateService) Delete(ctx context.Context, userID string) error {
	if err := s.cache.Delete(ctx, accountStateKey(userID)); err != nil {
		return fmt.Errorf("cache.AccountStateService.Delete: %w", err)
	}
	return nil
}
