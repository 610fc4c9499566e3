// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "authd/internal/delivery/context"
	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/domain/service"
	"authd/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo  repository.SessionRepository
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo  repository.SessionRepository
	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo:  params.SessionRepo,
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Obtain returns the session for a (user, user agent) pair. The refresh token
// is checked before the access token: a dead refresh token ends the session
// outright, while a dead access token is routine and only rotates in place.
func (srv *sessionService) Obtain(ctx context.Context, user *entity.User, userAgent string) (*entity.Session, error) {
	session, err := srv.sessionRepo.FindActive(ctx, user.ID, userAgent)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return srv.createSession(ctx, user.ID, userAgent)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up active session")
	}

	if !srv.tokenService.IsLive(session.RefreshToken) {
		srv.log(ctx).Info("Refresh token expired, replacing session",
			slog.Int64("userID", user.ID),
			slog.Int64("sessionID", session.ID),
		)

		if err := srv.sessionRepo.Deactivate(ctx, session.ID); err != nil {
			return nil, errors.Wrap(err, "failed to deactivate expired session")
		}

		return srv.createSession(ctx, user.ID, userAgent)
	}

	if !srv.tokenService.IsLive(session.AccessToken) {
		accessToken, err := srv.tokenService.GenerateAccess(user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate access token")
		}

		if err := srv.sessionRepo.UpdateAccessToken(ctx, session.ID, accessToken); err != nil {
			return nil, errors.Wrap(err, "failed to rotate access token")
		}

		session.AccessToken = accessToken

		return session, nil
	}

	return session, nil
}

// createSession issues a fresh token pair and persists a new active session.
// Losing the duplicate-insert race to a concurrent login means the winner's
// row already satisfies the request, so it is fetched and returned instead.
func (srv *sessionService) createSession(ctx context.Context, userID int64, userAgent string) (*entity.Session, error) {
	accessToken, err := srv.tokenService.GenerateAccess(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokenService.GenerateRefresh(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	session := &entity.Session{
		UserID:       userID,
		UserAgent:    userAgent,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		if errors.Is(err, repository.ErrDuplicateSession) {
			srv.log(ctx).Info("Lost session creation race, re-fetching",
				slog.Int64("userID", userID),
			)

			existing, findErr := srv.sessionRepo.FindActive(ctx, userID, userAgent)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to re-fetch session after duplicate insert")
			}

			return existing, nil
		}

		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Debug("Session created",
		slog.Int64("userID", userID),
		slog.Int64("sessionID", session.ID),
	)

	return session, nil
}

// Refresh rotates the access token of the session owning the refresh token.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	session, err := srv.sessionRepo.FindByRefreshToken(ctx, refreshToken)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return "", domainerrors.ErrTokenInvalid
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to look up session by refresh token")
	}

	if !session.IsActive {
		return "", domainerrors.ErrSessionInactive
	}
	if !srv.tokenService.IsLive(refreshToken) {
		return "", domainerrors.ErrTokenInvalid
	}

	accessToken, err := srv.tokenService.GenerateAccess(session.UserID)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate access token")
	}

	if err := srv.sessionRepo.UpdateAccessToken(ctx, session.ID, accessToken); err != nil {
		return "", errors.Wrap(err, "failed to rotate access token")
	}

	return accessToken, nil
}

// Owner resolves the identity behind a live access token.
func (srv *sessionService) Owner(ctx context.Context, accessToken string) (*entity.BaseUserInfo, error) {
	session, err := srv.resolveActiveSession(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session owner")
	}

	return &entity.BaseUserInfo{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// Logout logically ends the session owning the access token.
func (srv *sessionService) Logout(ctx context.Context, accessToken string) error {
	session, err := srv.resolveActiveSession(ctx, accessToken)
	if err != nil {
		return err
	}

	if err := srv.sessionRepo.Deactivate(ctx, session.ID); err != nil {
		return errors.Wrap(err, "failed to deactivate session")
	}

	srv.log(ctx).Info("Session ended",
		slog.Int64("userID", session.UserID),
		slog.Int64("sessionID", session.ID),
	)

	return nil
}

// List returns a user's sessions without token material.
func (srv *sessionService) List(ctx context.Context, userID int64) ([]*entity.SessionInfo, error) {
	sessions, err := srv.sessionRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	infos := make([]*entity.SessionInfo, 0, len(sessions))
	for _, session := range sessions {
		infos = append(infos, session.Info())
	}

	return infos, nil
}

// resolveActiveSession maps an access token to its session, requiring the
// row active and the token itself still live.
func (srv *sessionService) resolveActiveSession(ctx context.Context, accessToken string) (*entity.Session, error) {
	session, err := srv.sessionRepo.FindByAccessToken(ctx, accessToken)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, domainerrors.ErrTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up session by access token")
	}

	if !session.IsActive {
		return nil, domainerrors.ErrSessionInactive
	}
	if !srv.tokenService.IsLive(accessToken) {
		return nil, domainerrors.ErrTokenInvalid
	}

	return session, nil
}
