package memory

import (
	"context"
	"sync"

	"nolij-demo-be/internal/repository/contract"
)

// PreferenceRepository is the in-memory preference store for tests and
// no-database demo mode.
type PreferenceRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{values: make(map[string]string)}
}

var _ contract.PreferenceRepository = (*PreferenceRepository)(nil)

func (r *PreferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *PreferenceRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}
