package core

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVRepository.Get for absent keys.
var ErrKeyNotFound = errors.New("key not found")

type KVRepository interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) (bool, error)
	Keys(ctx context.Context) ([]string, error)
}
