// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"authd/internal/delivery/http/response"
	"authd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for login and token handlers.
type AuthHandler struct {
	authUsecase    usecase.AuthUsecase
	sessionUsecase usecase.SessionUsecase
	logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUsecase usecase.AuthUsecase, sessionUsecase usecase.SessionUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase:    authUsecase,
		sessionUsecase: sessionUsecase,
		logger:         logger,
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type tokenRequest struct {
	AccessToken string `json:"jwt" validate:"required"`
}

// Login handles the credential check. The response either carries a session
// or tells the caller to follow up with a second-factor code.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.authUsecase.Login(c.Request().Context(), usecase.LoginInput{
		Username:  input.Username,
		Password:  input.Password,
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if output.TwoFactorPending {
		return response.Success(c, http.StatusOK, map[string]any{
			"two_factor_pending": true,
		}, "Second-factor code required")
	}

	return response.Success(c, http.StatusOK, output.Session, "Login successful")
}

// Refresh rotates the access token of the session owning the refresh token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var input refreshRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	accessToken, err := h.sessionUsecase.Refresh(c.Request().Context(), input.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"jwt": accessToken}, "Token refreshed successfully")
}

// Owner answers "who does this access token belong to" for other services.
func (h *AuthHandler) Owner(c echo.Context) error {
	var input tokenRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owner input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	owner, err := h.sessionUsecase.Owner(c.Request().Context(), input.AccessToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, owner, "")
}

// Logout logically ends the session owning the access token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var input tokenRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.sessionUsecase.Logout(c.Request().Context(), input.AccessToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}
