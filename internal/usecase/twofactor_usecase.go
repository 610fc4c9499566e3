// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"authd/internal/domain/entity"
)

// --- Input DTOs ---

// ConfirmTwoFactorLoginInput carries the follow-up submission after a login
// that ended in a pending second-factor challenge.
type ConfirmTwoFactorLoginInput struct {
	Username  string
	Code      string
	UserAgent string
}

// --- Output DTOs ---

// TwoFactorSetupOutput returns the enrollment material for a fresh secret.
// Nothing is persisted until the secret is confirmed through Link.
type TwoFactorSetupOutput struct {
	Secret string
	URL    string
	QRCode string
}

// TwoFactorUsecase defines the interface for second-factor operations.
type TwoFactorUsecase interface {
	// Setup generates a candidate secret and its enrollment payload for a
	// user with no second factor linked yet.
	Setup(ctx context.Context, userID int64) (*TwoFactorSetupOutput, error)

	// Link verifies a code against the candidate secret and persists it.
	Link(ctx context.Context, userID int64, secret, code string) error

	// PendLogin stages a "waiting for second factor" record for a user whose
	// password just checked out. Called by the login flow.
	PendLogin(ctx context.Context, user *entity.User) error

	// ConfirmLogin resolves a pending challenge and issues the session.
	ConfirmLogin(ctx context.Context, input ConfirmTwoFactorLoginInput) (*entity.Session, error)
}
