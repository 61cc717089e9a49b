package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested slot does not exist.
var ErrNotFound = errors.New("storage: slot not found")

// Store is a synchronous key-value slot, the persistence collaborator
// the cart writes through. Implementations hold raw serialized strings
// and make no attempt to interpret them.
type Store interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key, raw string) error
	Delete(ctx context.Context, key string) error
}
