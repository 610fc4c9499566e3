// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"authd/internal/domain/entity"
)

// SessionUsecase defines the interface for session lifecycle operations.
type SessionUsecase interface {
	// Obtain returns the session for a (user, user agent) pair, creating,
	// repairing or rotating one as needed.
	Obtain(ctx context.Context, user *entity.User, userAgent string) (*entity.Session, error)

	// Refresh rotates the access token of the session owning the refresh
	// token. The refresh token itself is never rotated.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// Owner resolves the identity behind a live access token.
	Owner(ctx context.Context, accessToken string) (*entity.BaseUserInfo, error)

	// Logout logically ends the session owning the access token.
	Logout(ctx context.Context, accessToken string) error

	// List returns a user's sessions without token material.
	List(ctx context.Context, userID int64) ([]*entity.SessionInfo, error)
}
