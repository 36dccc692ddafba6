package contract

import "context"

// PreferenceRepository stores the durable key/value preferences (welcome
// modal flag, default persona).
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
