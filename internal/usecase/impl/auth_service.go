package impl

import (
	"context"
	"log/slog"

	deliverycontext "authd/internal/delivery/context"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/domain/service"
	"authd/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo       repository.UserRepository
	validator      service.CredentialValidator
	hasher         service.PasswordHasher
	sessionUsecase usecase.SessionUsecase
	twoFactor      usecase.TwoFactorUsecase
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	Validator      service.CredentialValidator
	Hasher         service.PasswordHasher
	SessionUsecase usecase.SessionUsecase
	TwoFactor      usecase.TwoFactorUsecase
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:       params.UserRepo,
		validator:      params.Validator,
		hasher:         params.Hasher,
		sessionUsecase: params.SessionUsecase,
		twoFactor:      params.TwoFactor,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login validates a credential pair and either issues a session or stages a
// second-factor challenge. An unknown username and a wrong password produce
// the same failure so account existence is not leaked.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := srv.validator.Validate(input.Username, input.Password); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.hasher.Check(input.Password, user.Salt, user.PasswordHash) {
		srv.log(ctx).Warn("Password check failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if user.TwoFactorEnabled() {
		if err := srv.twoFactor.PendLogin(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to stage second-factor challenge")
		}

		srv.log(ctx).Info("Login pending second factor", slog.Int64("userID", user.ID))

		return &usecase.LoginOutput{TwoFactorPending: true}, nil
	}

	session, err := srv.sessionUsecase.Obtain(ctx, user, input.UserAgent)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{Session: session}, nil
}
