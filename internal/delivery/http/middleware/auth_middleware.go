// Package middleware contains the HTTP middleware chain.
package middleware

import (
	"strings"

	"authd/internal/delivery/http/response"
	"authd/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID      = "userID"
	ContextKeyUsername    = "username"
	ContextKeyAccessToken = "accessToken"
)

// AuthMiddleware guards routes behind a live access token. Resolution goes
// through the session layer rather than bare token decoding, so a logged-out
// session rejects even a not-yet-expired token.
type AuthMiddleware struct {
	sessionUsecase usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUsecase usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessionUsecase: sessionUsecase}
}

// Authenticate is the core middleware function that validates the access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		owner, err := m.sessionUsecase.Owner(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, owner.ID)
		c.Set(ContextKeyUsername, owner.Username)
		c.Set(ContextKeyAccessToken, tokenString)

		return next(c)
	}
}
