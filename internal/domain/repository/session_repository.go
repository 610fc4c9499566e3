package repository

import (
	"context"
	"errors"

	"authd/internal/domain/entity"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when no session matches the lookup.
	ErrSessionNotFound = errors.New("session not found")
	// ErrDuplicateSession is returned when an active session already exists
	// for the same (user, user agent) pair. Callers should re-fetch instead
	// of retrying the insert.
	ErrDuplicateSession = errors.New("active session already exists")
)

// SessionRepository defines the operations for session rows. Sessions are
// deactivated, never deleted, so every lookup that feeds authorization
// filters on the active flag.
type SessionRepository interface {
	// FindActive retrieves the active session for a (user, user agent) pair.
	FindActive(ctx context.Context, userID int64, userAgent string) (*entity.Session, error)

	// FindByAccessToken retrieves a session by its current access token.
	FindByAccessToken(ctx context.Context, accessToken string) (*entity.Session, error)

	// FindByRefreshToken retrieves a session by its refresh token.
	FindByRefreshToken(ctx context.Context, refreshToken string) (*entity.Session, error)

	// FindByUserID retrieves all sessions belonging to a user, newest first.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Session, error)

	// Create persists a new session row with active=true.
	Create(ctx context.Context, session *entity.Session) error

	// UpdateAccessToken rotates the access token in place and bumps last activity.
	UpdateAccessToken(ctx context.Context, id int64, accessToken string) error

	// Deactivate logically ends a session by flipping its active flag.
	Deactivate(ctx context.Context, id int64) error
}
