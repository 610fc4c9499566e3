// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "time"

// TokenClaims is the decoded content of a signed token.
type TokenClaims struct {
	UserID    int64     // Subject the token was issued for.
	ExpiresAt time.Time // Absolute expiry embedded at issue time.
	Refresh   bool      // Distinguishes refresh tokens from access tokens.
}

// TokenService issues and inspects the two token classes. Tokens are
// stateless and self-verifying; only the session row remembers which token
// strings are current, so hard revocation additionally requires the session
// to be active.
type TokenService interface {
	// GenerateAccess creates a short-lived access token for a user.
	GenerateAccess(userID int64) (string, error)

	// GenerateRefresh creates a long-lived refresh token for a user.
	GenerateRefresh(userID int64) (string, error)

	// Decode verifies the token's structure and signature and returns its
	// claims. It does not check expiry; expired tokens still decode.
	Decode(token string) (*TokenClaims, error)

	// IsLive reports whether the token decodes and has not yet expired.
	IsLive(token string) bool
}
