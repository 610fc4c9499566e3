package handler

import (
	"log/slog"
	"net/http"

	"authd/internal/delivery/http/middleware"
	"authd/internal/delivery/http/response"
	"authd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TwoFactorHandler holds dependencies for second-factor handlers.
type TwoFactorHandler struct {
	twoFactorUsecase usecase.TwoFactorUsecase
	logger           *slog.Logger
}

// NewTwoFactorHandler is the constructor for TwoFactorHandler, injected by Fx.
func NewTwoFactorHandler(twoFactorUsecase usecase.TwoFactorUsecase, logger *slog.Logger) *TwoFactorHandler {
	return &TwoFactorHandler{
		twoFactorUsecase: twoFactorUsecase,
		logger:           logger,
	}
}

type linkRequest struct {
	Secret string `json:"secret" validate:"required"`
	Code   string `json:"code" validate:"required"`
}

type confirmLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Code     string `json:"code" validate:"required"`
}

// Setup issues a candidate secret and its enrollment QR code. Requires
// authentication; conflicts if a second factor is already linked.
func (h *TwoFactorHandler) Setup(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(int64)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	output, err := h.twoFactorUsecase.Setup(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"secret": output.Secret,
		"url":    output.URL,
		"qrcode": output.QRCode,
	}, "Second-factor enrollment issued")
}

// Link confirms a candidate secret with a live code and persists it.
func (h *TwoFactorHandler) Link(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(int64)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var input linkRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.twoFactorUsecase.Link(c.Request().Context(), userID, input.Secret, input.Code); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Second factor linked")
}

// ConfirmLogin resolves a pending login challenge and returns the session.
func (h *TwoFactorHandler) ConfirmLogin(c echo.Context) error {
	var input confirmLoginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	session, err := h.twoFactorUsecase.ConfirmLogin(c.Request().Context(), usecase.ConfirmTwoFactorLoginInput{
		Username:  input.Username,
		Code:      input.Code,
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Login successful")
}
