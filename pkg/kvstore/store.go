// Package kvstore persists small pieces of client state (tokens, language,
// layout flags) so they survive restarts.
package kvstore

import (
	"context"
	"errors"
)

// Well-known keys.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyLanguage     = "language"
	KeySidebarOpen  = "sidebar-open"
)

// ErrNotFound is returned by Get when the key has never been stored.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a durable string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// GetOrDefault reads key and returns fallback when it is missing.
func GetOrDefault(ctx context.Context, s Store, key, fallback string) (string, error) {
	v, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}
	return v, nil
}
