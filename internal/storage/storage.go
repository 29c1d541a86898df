// Package storage provides the key/value persistence boundary used to keep
// the cart between sessions.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// KV is a string key/value store. Implementations must be safe for
// concurrent use.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
