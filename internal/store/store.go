package store

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// KV is the persistence adapter used for session durability across restarts.
// Values are opaque JSON documents; callers go through the envelope codec in
// this package rather than writing raw bytes.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
