package kvstore

import (
	"context"
	"errors"
	"strings"
)

const keyNamespace = "shilpokotha"

const (
	cartsPrefix     = "carts"
	wishlistsPrefix = "wishlists"
	profilesPrefix  = "profiles"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is the string-keyed blob storage every per-user record store sits on.
// Values are opaque strings; callers handle their own JSON encoding.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

// CartsKey returns the namespaced key holding the all-users carts blob.
func CartsKey() string {
	return buildKey(cartsPrefix)
}

// WishlistsKey returns the namespaced key holding the all-users wishlists blob.
func WishlistsKey() string {
	return buildKey(wishlistsPrefix)
}

// ProfilesKey returns the namespaced key holding the all-users profiles blob.
func ProfilesKey() string {
	return buildKey(profilesPrefix)
}

func buildKey(parts ...string) string {
	clean := []string{keyNamespace}
	for _, part := range parts {
		if part == "" {
			continue
		}
		clean = append(clean, strings.TrimSpace(part))
	}
	return strings.Join(clean, ":")
}
