// Package storage is the persisted key-value capability behind the auth and
// favorites state. Substrates are interchangeable: a local SQLite file
// (default), Redis, or a plain in-memory map.
package storage

import (
	"context"
	"errors"
)

// Keys under which client state is persisted.
const (
	KeyAuthToken = "authToken"
	KeyUser      = "user"
	KeyFavorites = "favorites"
)

var ErrKeyNotFound = errors.New("key not found in store")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
