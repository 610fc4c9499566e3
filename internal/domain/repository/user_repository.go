// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authd/internal/domain/entity"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when a username is already taken locally.
	ErrDuplicateUser = errors.New("username already exists")
)

// UserRepository defines the standard operations for credential persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their local id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByDirectoryID retrieves the user owning the given user-directory id.
	FindByDirectoryID(ctx context.Context, directoryID int64) (*entity.User, error)

	// Create persists a new credential row.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored hash and salt in one write.
	UpdatePassword(ctx context.Context, id int64, passwordHash, salt string) error

	// UpdateTotpSecret links a second-factor secret to the account.
	UpdateTotpSecret(ctx context.Context, id int64, secret string) error
}
