// Package state provides the client's durable key-value storage, used to
// persist the session across runs.
package state

import "context"

// Store is a small durable KV store. Get returns (nil, nil) when the key
// is absent, so callers can treat missing and present uniformly.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
