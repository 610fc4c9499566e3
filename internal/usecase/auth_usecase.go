// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"authd/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username  string
	Password  string
	UserAgent string
}

// --- Output DTOs ---

// LoginOutput returns the result of a credential check: either an issued
// session, or a signal that a second-factor code must be submitted first.
type LoginOutput struct {
	TwoFactorPending bool
	Session          *entity.Session
}

// AuthUsecase defines the interface for the login entry point.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
