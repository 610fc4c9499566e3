package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"authd/internal/delivery/http/middleware"
	"authd/internal/delivery/http/response"
	"authd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session listing handlers.
type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
	logger         *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(sessionUsecase usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
		logger:         logger,
	}
}

// List returns a user's sessions without token material. Users may only list
// their own sessions.
func (h *SessionHandler) List(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user id")
	}

	authUserID, ok := c.Get(middleware.ContextKeyUserID).(int64)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}
	if authUserID != userID {
		return response.Forbidden(c, "FORBIDDEN", "Cannot list another user's sessions")
	}

	sessions, err := h.sessionUsecase.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessions, "")
}
