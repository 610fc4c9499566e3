package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"authd/internal/delivery/http/validator"
	"authd/internal/domain/entity"
	mockUsecase "authd/internal/mocks/usecase"
	"authd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEchoContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("User-Agent", "launcher/1.0")
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_ReturnsSession(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	sessionUsecase := mockUsecase.NewMockSessionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewAuthHandler(authUsecase, sessionUsecase, logger)

	session := &entity.Session{ID: 7, UserID: 42, AccessToken: "access", RefreshToken: "refresh", IsActive: true}
	authUsecase.EXPECT().
		Login(mock.Anything, usecase.LoginInput{
			Username:  "resident",
			Password:  "Sup3rSecret",
			UserAgent: "launcher/1.0",
		}).
		Return(&usecase.LoginOutput{Session: session}, nil)

	c, rec := newEchoContext(http.MethodPost, "/auth/login", `{"username":"resident","password":"Sup3rSecret"}`)

	err := handler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"jwt":"access"`)
	assert.Contains(t, rec.Body.String(), `"refresh_token":"refresh"`)
}

func TestAuthHandler_Login_SecondFactorPending(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	sessionUsecase := mockUsecase.NewMockSessionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewAuthHandler(authUsecase, sessionUsecase, logger)

	authUsecase.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
		Return(&usecase.LoginOutput{TwoFactorPending: true}, nil)

	c, rec := newEchoContext(http.MethodPost, "/auth/login", `{"username":"resident","password":"Sup3rSecret"}`)

	err := handler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"two_factor_pending":true`)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	sessionUsecase := mockUsecase.NewMockSessionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewAuthHandler(authUsecase, sessionUsecase, logger)

	c, _ := newEchoContext(http.MethodPost, "/auth/login", `{"username":"resident"}`)

	err := handler.Login(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuthHandler_Refresh_ReturnsNewAccessToken(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	sessionUsecase := mockUsecase.NewMockSessionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewAuthHandler(authUsecase, sessionUsecase, logger)

	sessionUsecase.EXPECT().Refresh(mock.Anything, "refresh-token").Return("fresh-access", nil)

	c, rec := newEchoContext(http.MethodPost, "/auth/refresh", `{"refresh_token":"refresh-token"}`)

	err := handler.Refresh(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"jwt":"fresh-access"`)
}

func TestAuthHandler_Owner_ReturnsIdentity(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	sessionUsecase := mockUsecase.NewMockSessionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewAuthHandler(authUsecase, sessionUsecase, logger)

	sessionUsecase.EXPECT().
		Owner(mock.Anything, "access-token").
		Return(&entity.BaseUserInfo{ID: 42, Username: "resident"}, nil)

	c, rec := newEchoContext(http.MethodPost, "/auth/owner", `{"jwt":"access-token"}`)

	err := handler.Owner(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"resident"`)
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	sessionUsecase := mockUsecase.NewMockSessionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewAuthHandler(authUsecase, sessionUsecase, logger)

	sessionUsecase.EXPECT().Logout(mock.Anything, "access-token").Return(nil)

	c, rec := newEchoContext(http.MethodPost, "/auth/logout", `{"jwt":"access-token"}`)

	err := handler.Logout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logout successful")
}
