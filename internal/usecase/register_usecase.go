// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"authd/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to stage a new registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// RegisterUsecase defines the interface for the registration workflow.
// Registration is two-phase: staging writes only an ephemeral record and
// mails a confirmation code; the durable account exists after Confirm.
type RegisterUsecase interface {
	// Register validates the credentials, stages the pending account and
	// mails the confirmation link. Completion means "staged", not
	// "registered".
	Register(ctx context.Context, input RegisterInput) error

	// Confirm consumes a confirmation code, creates the directory identity
	// and persists the local credential row.
	Confirm(ctx context.Context, code string) (*entity.User, error)
}
