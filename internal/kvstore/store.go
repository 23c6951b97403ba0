// Package kvstore defines the secure key-value store holding the wallet
// credentials and security state. Values are opaque strings; drivers keep
// them encrypted at rest.
package kvstore

import (
	"context"
	"errors"
)

const (
	FileStore     = "file"
	BadgerStore   = "badger"
	InMemoryStore = "memory"
)

// ErrClosed is returned by every operation on a closed store
var ErrClosed = errors.New("store is closed")

type Store interface {
	// Get returns found=false for a missing key.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	// Delete of a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
