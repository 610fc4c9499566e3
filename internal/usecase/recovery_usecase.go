// Package usecase contains the application-specific business rules.
package usecase

import "context"

// --- Input DTOs ---

// ConfirmRecoveryInput carries a recovery code and the replacement password.
type ConfirmRecoveryInput struct {
	Code     string
	Password string
}

// RecoveryUsecase defines the interface for the password recovery workflow.
type RecoveryUsecase interface {
	// Initiate stages a single-use recovery code for an email and mails it.
	// At most one recovery may be pending per email at a time.
	Initiate(ctx context.Context, email string) error

	// Exists reports whether a recovery is currently pending for an email.
	Exists(ctx context.Context, email string) (bool, error)

	// Confirm consumes a recovery code and replaces the stored credential.
	Confirm(ctx context.Context, input ConfirmRecoveryInput) error
}
