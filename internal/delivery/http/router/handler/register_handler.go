package handler

import (
	"log/slog"
	"net/http"

	"authd/internal/delivery/http/response"
	"authd/internal/domain/entity"
	"authd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegisterHandler holds dependencies for registration handlers.
type RegisterHandler struct {
	registerUsecase usecase.RegisterUsecase
	logger          *slog.Logger
}

// NewRegisterHandler is the constructor for RegisterHandler, injected by Fx.
func NewRegisterHandler(registerUsecase usecase.RegisterUsecase, logger *slog.Logger) *RegisterHandler {
	return &RegisterHandler{
		registerUsecase: registerUsecase,
		logger:          logger,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register stages a pending account and mails the confirmation link.
func (h *RegisterHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.registerUsecase.Register(c.Request().Context(), usecase.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Confirmation mail sent")
}

// Confirm consumes the mailed confirmation code and creates the account.
func (h *RegisterHandler) Confirm(c echo.Context) error {
	code := c.QueryParam("id")
	if code == "" {
		return response.BindingError(c, "INVALID_INPUT", "Missing confirmation code")
	}

	user, err := h.registerUsecase.Confirm(c.Request().Context(), code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entity.BaseUserInfo{
		ID:       user.ID,
		Username: user.Username,
	}, "Registration confirmed")
}
