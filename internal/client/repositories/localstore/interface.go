// Package localstore is the client's durable key-value storage, the
// counterpart of the browser's localStorage: plain string keys mapping to
// opaque byte values, persisted in a local sqlite file.
package localstore

import (
	"context"
)

// Repository is the storage contract used by the session store and the
// category manager. Get returns (nil, nil) for a missing key; Delete is
// idempotent. SetMany and DeleteMany apply all their keys atomically:
// either every key is written/removed or none is.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, kv map[string][]byte) error
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
