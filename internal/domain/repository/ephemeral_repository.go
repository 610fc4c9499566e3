package repository

import (
	"context"
	"errors"
	"time"
)

// ErrRecordNotFound is returned when an ephemeral record is absent. An
// expired record and one that never existed are indistinguishable.
var ErrRecordNotFound = errors.New("ephemeral record not found")

// EphemeralRepository is the expiring key/value collaborator behind pending
// 2FA challenges, staged registrations and recovery codes. Keys carry a
// purpose prefix (e.g. "2fa:", "register:", "recovery:") so unrelated
// workflows sharing the store cannot collide. Overwriting a live key is
// permitted and resets its TTL; all expiry is delegated to the store.
type EphemeralRepository interface {
	// Set stores value under key for the given lifetime.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Get retrieves the value stored under key.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes the given keys. Deleting an absent key is not an error.
	Delete(ctx context.Context, keys ...string) error
}
