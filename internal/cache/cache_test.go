package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/citywatch/storage-service/internal/domain"
)

// fakeCache is a map-backed Cache used by the projection tests.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]any
	failOn  string // key whose writes fail, for error-path tests
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]any)}
}

func (f *fakeCache) Add(ctx context.Context, key string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn != "" && key == f.failOn {
		return fmt.Errorf("backend down")
	}
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.entries[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.entries))
	for k := range f.entries {
		keys = append(keys, k)
	}
	return keys
}
