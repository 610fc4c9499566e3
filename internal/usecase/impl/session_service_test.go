package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	mockRepo "authd/internal/mocks/repository"
	mockService "authd/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionServiceForTest(t *testing.T) (*mockRepo.MockSessionRepository, *mockRepo.MockUserRepository, *mockService.MockTokenService, *sessionService) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSessionService(SessionServiceParams{
		SessionRepo:  sessionRepo,
		UserRepo:     userRepo,
		TokenService: tokenService,
		Logger:       logger,
	})

	return sessionRepo, userRepo, tokenService, service.(*sessionService)
}

func TestSessionService_Obtain_CreatesWhenNoneExists(t *testing.T) {
	sessionRepo, _, tokenService, service := newSessionServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{ID: 42, Username: "resident"}

	sessionRepo.EXPECT().FindActive(ctx, int64(42), "launcher/1.0").Return(nil, repository.ErrSessionNotFound)
	tokenService.EXPECT().GenerateAccess(int64(42)).Return("access-token", nil)
	tokenService.EXPECT().GenerateRefresh(int64(42)).Return("refresh-token", nil)
	sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			session.ID = 7
			session.IsActive = true
		}).
		Return(nil)

	session, err := service.Obtain(ctx, user, "launcher/1.0")

	require.NoError(t, err)
	assert.Equal(t, int64(7), session.ID)
	assert.Equal(t, int64(42), session.UserID)
	assert.Equal(t, "access-token", session.AccessToken)
	assert.Equal(t, "refresh-token", session.RefreshToken)
}

func TestSessionService_Obtain_ReturnsLiveSessionUnchanged(t *testing.T) {
	sessionRepo, _, tokenService, service := newSessionServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{ID: 42}
	existing := &entity.Session{
		ID:           7,
		UserID:       42,
		UserAgent:    "launcher/1.0",
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		IsActive:     true,
	}

	sessionRepo.EXPECT().FindActive(ctx, int64(42), "launcher/1.0").Return(existing, nil)
	tokenService.EXPECT().IsLive("refresh-token").Return(true)
	tokenService.EXPECT().IsLive("access-token").Return(true)

	session, err := service.Obtain(ctx, user, "launcher/1.0")

	require.NoError(t, err)
	assert.Same(t, existing, session)
	assert.Equal(t, "access-token", session.AccessToken)
}

func TestSessionService_Obtain_RotatesExpiredAccessToken(t *testing.T) {
	sessionRepo, _, tokenService, service := newSessionServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{ID: 42}
	existing := &entity.Session{
		ID:           7,
		UserID:       42,
		UserAgent:    "launcher/1.0",
		AccessToken:  "stale-access",
		RefreshToken: "refresh-token",
		IsActive:     true,
	}

	sessionRepo.EXPECT().FindActive(ctx, int64(42), "launcher/1.0").Return(existing, nil)
	tokenService.EXPECT().IsLive("refresh-token").Return(true)
	tokenService.EXPECT().IsLive("stale-access").Return(false)
	tokenService.EXPECT().GenerateAccess(int64(42)).Return("fresh-access", nil)
	sessionRepo.EXPECT().UpdateAccessToken(ctx, int64(7), "fresh-access").Return(nil)

	session, err := service.Obtain(ctx, user, "launcher/1.0")

	require.NoError(t, err)
	assert.Equal(t, int64(7), session.ID)
	assert.Equal(t, "fresh-access", session.AccessToken)
	assert.Equal(t, "refresh-token", session.RefreshToken)
}

func TestSessionService_Obtain_ReplacesSessionWithDeadRefreshToken(t *testing.T) {
	sessionRepo, _, tokenService, service := newSessionServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{ID: 42}
	existing := &entity.Session{
		ID:           7,
		UserID:       42,
		UserAgent:    "launcher/1.0",
		AccessToken:  "old-access",
		RefreshToken: "dead-refresh",
		IsActive:     true,
	}

	sessionRepo.EXPECT().FindActive(ctx, int64(42), "launcher/1.0").Return(existing, nil).Once()
	tokenService.EXPECT().IsLive("dead-refresh").Return(false)
	sessionRepo.EXPECT().Deactivate(ctx, int64(7)).Return(nil)
	tokenService.EXPECT().GenerateAccess(int64(42)).Return("new-access", nil)
	tokenService.EXPECT().GenerateRefresh(int64(42)).Return("new-refresh", nil)
	sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			session.ID = 8
		}).
		Return(nil)

	session, err := service.Obtain(ctx, user, "launcher/1.0")

	require.NoError(t, err)
	assert.Equal(t, int64(8), session.ID)
	assert.Equal(t, "new-access", session.AccessToken)
	assert.Equal(t, "new-refresh", session.RefreshToken)
}

func TestSessionService_Obtain_RefetchesAfterLosingCreationRace(t *testing.T) {
	sessionRepo, _, tokenService, service := newSessionServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{ID: 42}
	winner := &entity.Session{
		ID:           9,
		UserID:       42,
		UserAgent:    "launcher/1.0",
		AccessToken:  "winner-access",
		RefreshToken: "winner-refresh",
		IsActive:     true,
	}

	sessionRepo.EXPECT().FindActive(ctx, int64(42), "launcher/1.0").Return(nil, repository.ErrSessionNotFound).Once()
	tokenService.EXPECT().GenerateAccess(int64(42)).Return("loser-access", nil)
	tokenService.EXPECT().GenerateRefresh(int64(42)).Return("loser-refresh", nil)
	sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(repository.ErrDuplicateSession)
	sessionRepo.EXPECT().FindActive(ctx, int64(42), "launcher/1.0").Return(winner, nil).Once()

	session, err := service.Obtain(ctx, user, "launcher/1.0")

	require.NoError(t, err)
	assert.Same(t, winner, session)
}

func TestSessionService_Refresh_Success(t *testing.T) {
	sessionRepo, _, tokenService, service := newSessionServiceForTest(t)

	ctx := context.Background()
	existing := &entity.Session{
		ID:           7,
		UserID:       42,
		AccessToken:  "stale-access",
		RefreshToken: "refresh-token",
		IsActive:     true,
	}

	sessionRepo.EXPECT().FindByRefreshToken(ctx, "refresh-token").Return(existing, nil)
	tokenService.EXPECT().IsLive("refresh-token").Return(true)
	tokenService.EXPECT().GenerateAccess(int64(42)).Return("fresh-access", nil)
	sessionRepo.EXPECT().UpdateAccessToken(ctx, int64(7), "fresh-access").Return(nil)

	accessToken, err := service.Refresh(ctx, "refresh-token")

	require.NoError(t, err)
	assert.Equal(t, "fresh-access", accessToken)
}

func TestSessionService_Refresh_UnknownToken(t *testing.T) {
	sessionRepo, _, _, service := newSessionServiceForTest(t)

	ctx := context.Background()

	sessionRepo.EXPECT().FindByRefreshToken(ctx, "unknown").Return(nil, repository.ErrSessionNotFound)

	_, err := service.Refresh(ctx, "unknown")

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestSessionService_Refresh_InactiveSession(t *testing.T) {
	sessionRepo, _, _, service := newSessionServiceForTest(t)

	ctx := context.Background()
	existing := &entity.Session{ID: 7, UserID: 42, RefreshToken: "refresh-token", IsActive: false}

	sessionRepo.EXPECT().FindByRefreshToken(ctx, "refresh-token").Return(existing, nil)

	_, err := service.Refresh(ctx, "refresh-token")

	assert.ErrorIs(t, err, domainerrors.ErrSessionInactive)
}

func TestSessionService_Refresh_ExpiredToken(t *testing.T) {
	sessionRepo, _, tokenService, service := newSessionServiceForTest(t)

	ctx := context.Background()
	existing := &entity.Session{ID: 7, UserID: 42, RefreshToken: "dead-refresh", IsActive: true}

	sessionRepo.EXPECT().FindByRefreshToken(ctx, "dead-refresh").Return(existing, nil)
	tokenService.EXPECT().IsLive("dead-refresh").Return(false)

	_, err := service.Refresh(ctx, "dead-refresh")

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestSessionService_Owner_Success(t *testing.T) {
	sessionRepo, userRepo, tokenService, service := newSessionServiceForTest(t)

	ctx := context.Background()
	existing := &entity.Session{ID: 7, UserID: 42, AccessToken: "access-token", IsActive: true}
	user := &entity.User{ID: 42, Username: "resident"}

	sessionRepo.EXPECT().FindByAccessToken(ctx, "access-token").Return(existing, nil)
	tokenService.EXPECT().IsLive("access-token").Return(true)
	userRepo.EXPECT().FindByID(ctx, int64(42)).Return(user, nil)

	info, err := service.Owner(ctx, "access-token")

	require.NoError(t, err)
	assert.Equal(t, int64(42), info.ID)
	assert.Equal(t, "resident", info.Username)
}

func TestSessionService_Owner_UnknownToken(t *testing.T) {
	sessionRepo, _, _, service := newSessionServiceForTest(t)

	ctx := context.Background()

	sessionRepo.EXPECT().FindByAccessToken(ctx, "unknown").Return(nil, repository.ErrSessionNotFound)

	_, err := service.Owner(ctx, "unknown")

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestSessionService_Owner_LoggedOutSessionRejectsLiveToken(t *testing.T) {
	sessionRepo, _, _, service := newSessionServiceForTest(t)

	ctx := context.Background()
	existing := &entity.Session{ID: 7, UserID: 42, AccessToken: "access-token", IsActive: false}

	sessionRepo.EXPECT().FindByAccessToken(ctx, "access-token").Return(existing, nil)

	_, err := service.Owner(ctx, "access-token")

	assert.ErrorIs(t, err, domainerrors.ErrSessionInactive)
}

func TestSessionService_Logout_Success(t *testing.T) {
	sessionRepo, _, tokenService, service := newSessionServiceForTest(t)

	ctx := context.Background()
	existing := &entity.Session{ID: 7, UserID: 42, AccessToken: "access-token", IsActive: true}

	sessionRepo.EXPECT().FindByAccessToken(ctx, "access-token").Return(existing, nil)
	tokenService.EXPECT().IsLive("access-token").Return(true)
	sessionRepo.EXPECT().Deactivate(ctx, int64(7)).Return(nil)

	err := service.Logout(ctx, "access-token")

	require.NoError(t, err)
}

func TestSessionService_Logout_ExpiredToken(t *testing.T) {
	sessionRepo, _, tokenService, service := newSessionServiceForTest(t)

	ctx := context.Background()
	existing := &entity.Session{ID: 7, UserID: 42, AccessToken: "dead-access", IsActive: true}

	sessionRepo.EXPECT().FindByAccessToken(ctx, "dead-access").Return(existing, nil)
	tokenService.EXPECT().IsLive("dead-access").Return(false)

	err := service.Logout(ctx, "dead-access")

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestSessionService_List_StripsTokenMaterial(t *testing.T) {
	sessionRepo, _, _, service := newSessionServiceForTest(t)

	ctx := context.Background()
	sessions := []*entity.Session{
		{ID: 7, UserID: 42, UserAgent: "launcher/1.0", AccessToken: "a", RefreshToken: "r", IsActive: true},
		{ID: 6, UserID: 42, UserAgent: "launcher/0.9", AccessToken: "b", RefreshToken: "s", IsActive: false},
	}

	sessionRepo.EXPECT().FindByUserID(ctx, int64(42)).Return(sessions, nil)

	infos, err := service.List(ctx, int64(42))

	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, int64(7), infos[0].ID)
	assert.True(t, infos[0].IsActive)
	assert.Equal(t, int64(6), infos[1].ID)
	assert.False(t, infos[1].IsActive)
}
