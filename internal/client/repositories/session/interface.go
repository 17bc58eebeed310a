package session

import "context"

// Repository is a small key/value store for session state that survives
// restarts: the user's own profile and the active event context.
type Repository interface {
	// Get returns the stored value or nil when the key was never set.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key; deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
