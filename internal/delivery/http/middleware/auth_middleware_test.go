package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	mockUsecase "authd/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, sessionUsecase *mockUsecase.MockSessionUsecase, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sessions/42", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	}

	m := NewAuthMiddleware(sessionUsecase)
	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, reached
}

func TestAuthMiddleware_Authenticate_SetsIdentity(t *testing.T) {
	sessionUsecase := mockUsecase.NewMockSessionUsecase(t)
	sessionUsecase.EXPECT().
		Owner(mock.Anything, "live-token").
		Return(&entity.BaseUserInfo{ID: 42, Username: "resident"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sessions/42", nil)
	req.Header.Set("Authorization", "Bearer live-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware(sessionUsecase)
	err := m.Authenticate(func(c echo.Context) error {
		assert.Equal(t, int64(42), c.Get(ContextKeyUserID))
		assert.Equal(t, "resident", c.Get(ContextKeyUsername))
		assert.Equal(t, "live-token", c.Get(ContextKeyAccessToken))

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	sessionUsecase := mockUsecase.NewMockSessionUsecase(t)

	rec, reached := runAuthenticate(t, sessionUsecase, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	sessionUsecase := mockUsecase.NewMockSessionUsecase(t)

	rec, reached := runAuthenticate(t, sessionUsecase, "Basic dXNlcjpwYXNz")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RevokedSession(t *testing.T) {
	sessionUsecase := mockUsecase.NewMockSessionUsecase(t)
	sessionUsecase.EXPECT().
		Owner(mock.Anything, "revoked-token").
		Return(nil, domainerrors.ErrSessionInactive)

	rec, reached := runAuthenticate(t, sessionUsecase, "Bearer revoked-token")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
