// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"authd/config"
	"authd/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Both token classes are signed with one secret; a "refresh" claim tells them apart.
type jwtService struct {
	secret     string        // Secret key for signing both token classes.
	accessTTL  time.Duration // Time-to-live for access tokens.
	refreshTTL time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:     cfg.SecretKey.JWT,
		accessTTL:  cfg.Auth.AccessTokenTTL,  // e.g., 1 hour
		refreshTTL: cfg.Auth.RefreshTokenTTL, // e.g., 7 days
	}, nil
}

// GenerateAccess creates a short-lived access token for a user.
func (s *jwtService) GenerateAccess(userID int64) (string, error) {
	return s.generateToken(userID, s.accessTTL, false)
}

// GenerateRefresh creates a long-lived refresh token for a user.
func (s *jwtService) GenerateRefresh(userID int64) (string, error) {
	return s.generateToken(userID, s.refreshTTL, true)
}

// Decode verifies the token's shape and signature and returns its claims.
// Expiry is deliberately not validated here so that an expired token can
// still be decoded; liveness is IsLive's concern.
func (s *jwtService) Decode(tokenString string) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("subject missing from token")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in token")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("expiry missing from token")
	}

	refresh, _ := claims["refresh"].(bool)

	return &service.TokenClaims{
		UserID:    userID,
		ExpiresAt: time.Unix(int64(exp), 0),
		Refresh:   refresh,
	}, nil
}

// IsLive reports whether the token decodes and the current time is strictly
// before its embedded expiry.
func (s *jwtService) IsLive(tokenString string) bool {
	claims, err := s.Decode(tokenString)
	if err != nil {
		return false
	}

	return time.Now().Before(claims.ExpiresAt)
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID int64, ttl time.Duration, refresh bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     strconv.FormatInt(userID, 10), // Subject (who the token is for)
		"iat":     now.Unix(),                    // Issued At
		"exp":     now.Add(ttl).Unix(),           // Expiration Time
		"refresh": refresh,                       // Distinguishes refresh tokens from access tokens
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
