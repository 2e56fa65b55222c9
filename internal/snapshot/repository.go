// Package snapshot persists the durable session snapshot: a small key-value
// store recording who is currently logged in and which storage root was
// last granted. It is the Go analogue of origin-scoped browser storage.
package snapshot

import "context"

// Well-known snapshot keys.
const (
	KeyCurrentUser  = "current_user"
	KeyIsLoggedIn   = "is_logged_in"
	KeyDirectoryRef = "directory_ref"
)

// Repository is a durable key-value store for snapshot data.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set upserts.
//   - Delete of an absent key is a no-op.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
