package redis

import (
	"context"
	"time"

	"authd/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ephemeralRepository implements repository.EphemeralRepository on top of
// Redis key TTLs. The store owns expiry; nothing here schedules cleanup.
type ephemeralRepository struct {
	client *redis.Client
}

// NewEphemeralRepository is the constructor for ephemeralRepository.
func NewEphemeralRepository(client *redis.Client) repository.EphemeralRepository {
	return &ephemeralRepository{
		client: client,
	}
}

// Set stores value under key for the given lifetime. Overwriting a live key
// resets its TTL.
func (repo *ephemeralRepository) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := repo.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set ephemeral record")
	}

	return nil
}

// Get retrieves the value stored under key.
func (repo *ephemeralRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := repo.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrRecordNotFound
		}

		return "", errors.Wrap(err, "failed to get ephemeral record")
	}

	return value, nil
}

// Delete removes the given keys. Deleting an absent key is not an error.
func (repo *ephemeralRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := repo.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "failed to delete ephemeral records")
	}

	return nil
}
