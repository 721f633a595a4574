// Package kv is the persistence adapter: a durable key/value store over the
// local SQLite database. Nothing above this package talks to storage
// directly; the registry and session store keep their whole state under
// single keys and round-trip it through here on every mutation.
package kv

import "context"

// Store is the persistence contract. Get returns (nil, nil) when the key is
// absent; Set replaces the full value for a key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
