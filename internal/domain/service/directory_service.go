package service

import (
	"context"
	"errors"
)

// Directory collaborator outcomes the workflows branch on.
var (
	// ErrDirectoryUserNotFound is returned when no directory account matches.
	ErrDirectoryUserNotFound = errors.New("user not found in directory")
	// ErrDirectoryConflict is returned when the directory rejects a create
	// because the username or email is already taken platform-wide.
	ErrDirectoryConflict = errors.New("directory user already exists")
)

// DirectoryUser is an account as the remote user directory sees it.
type DirectoryUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// DirectoryService is the remote service owning canonical username/email
// uniqueness across the platform. The local row store only mirrors credential
// material and is not authoritative for either.
type DirectoryService interface {
	// CreateUser registers the identity with the directory and returns the
	// record it created, including the canonical id.
	CreateUser(ctx context.Context, username, email string) (*DirectoryUser, error)

	// FindByEmail resolves a directory account by email.
	FindByEmail(ctx context.Context, email string) (*DirectoryUser, error)
}
