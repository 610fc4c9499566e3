package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"authd/internal/delivery/http/middleware"
	"authd/internal/domain/entity"
	mockUsecase "authd/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionListContext(pathID string, authUserID int64) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sessions/"+pathID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(pathID)
	c.Set(middleware.ContextKeyUserID, authUserID)

	return c, rec
}

func TestSessionHandler_List_OwnSessions(t *testing.T) {
	sessionUsecase := mockUsecase.NewMockSessionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewSessionHandler(sessionUsecase, logger)

	sessionUsecase.EXPECT().
		List(mock.Anything, int64(42)).
		Return([]*entity.SessionInfo{
			{ID: 7, UserID: 42, UserAgent: "launcher/1.0", IsActive: true, LastActivity: time.Now()},
		}, nil)

	c, rec := newSessionListContext("42", 42)

	err := handler.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"useragent":"launcher/1.0"`)
	assert.NotContains(t, rec.Body.String(), "refresh_token")
}

func TestSessionHandler_List_OtherUserForbidden(t *testing.T) {
	sessionUsecase := mockUsecase.NewMockSessionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewSessionHandler(sessionUsecase, logger)

	c, rec := newSessionListContext("43", 42)

	err := handler.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSessionHandler_List_MalformedID(t *testing.T) {
	sessionUsecase := mockUsecase.NewMockSessionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewSessionHandler(sessionUsecase, logger)

	c, rec := newSessionListContext("not-a-number", 42)

	err := handler.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
