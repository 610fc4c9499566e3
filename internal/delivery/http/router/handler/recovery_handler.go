package handler

import (
	"log/slog"
	"net/http"

	"authd/internal/delivery/http/response"
	"authd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecoveryHandler holds dependencies for password recovery handlers.
type RecoveryHandler struct {
	recoveryUsecase usecase.RecoveryUsecase
	logger          *slog.Logger
}

// NewRecoveryHandler is the constructor for RecoveryHandler, injected by Fx.
func NewRecoveryHandler(recoveryUsecase usecase.RecoveryUsecase, logger *slog.Logger) *RecoveryHandler {
	return &RecoveryHandler{
		recoveryUsecase: recoveryUsecase,
		logger:          logger,
	}
}

type recoveryRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type confirmRecoveryRequest struct {
	Code     string `json:"code" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Initiate stages a recovery code and mails it.
func (h *RecoveryHandler) Initiate(c echo.Context) error {
	var input recoveryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recovery input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.recoveryUsecase.Initiate(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recovery mail sent")
}

// Exists reports whether a recovery is pending for an email.
func (h *RecoveryHandler) Exists(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BindingError(c, "INVALID_INPUT", "Missing email")
	}

	pending, err := h.recoveryUsecase.Exists(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"pending": pending}, "")
}

// Confirm consumes a recovery code and replaces the password.
func (h *RecoveryHandler) Confirm(c echo.Context) error {
	var input confirmRecoveryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.recoveryUsecase.Confirm(c.Request().Context(), usecase.ConfirmRecoveryInput{
		Code:     input.Code,
		Password: input.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}
