package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"authd/config"
	deliverycontext "authd/internal/delivery/context"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/domain/service"
	"authd/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recoveryKeyPrefix namespaces recovery records in the ephemeral store. Each
// pending recovery holds two records under it, code→email and email→code,
// so both directions can be resolved while the window is open.
const recoveryKeyPrefix = "recovery:"

const defaultRecoveryWindow = 5 * time.Minute

// recoveryService implements the RecoveryUsecase interface.
type recoveryService struct {
	userRepo       repository.UserRepository
	ephemeralRepo  repository.EphemeralRepository
	validator      service.CredentialValidator
	hasher         service.PasswordHasher
	mailer         service.Mailer
	directory      service.DirectoryService
	recoveryWindow time.Duration
	logger         *slog.Logger
}

// RecoveryServiceParams holds dependencies for recoveryService, injected by Fx.
type RecoveryServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	EphemeralRepo repository.EphemeralRepository
	Validator     service.CredentialValidator
	Hasher        service.PasswordHasher
	Mailer        service.Mailer
	Directory     service.DirectoryService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewRecoveryService is the constructor for recoveryService.
func NewRecoveryService(params RecoveryServiceParams) usecase.RecoveryUsecase {
	recoveryWindow := defaultRecoveryWindow
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.RecoveryWindow > 0 {
		recoveryWindow = params.Config.Auth.RecoveryWindow
	}

	return &recoveryService{
		userRepo:       params.UserRepo,
		ephemeralRepo:  params.EphemeralRepo,
		validator:      params.Validator,
		hasher:         params.Hasher,
		mailer:         params.Mailer,
		directory:      params.Directory,
		recoveryWindow: recoveryWindow,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Initiate stages a single-use recovery code for an email and mails it. A
// second initiation while one is pending is rejected.
func (srv *recoveryService) Initiate(ctx context.Context, email string) error {
	pending, err := srv.Exists(ctx, email)
	if err != nil {
		return err
	}
	if pending {
		return domainerrors.ErrRecoveryAlreadyPending
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	if err := srv.ephemeralRepo.Set(ctx, recoveryKeyPrefix+code, email, srv.recoveryWindow); err != nil {
		return errors.Wrap(err, "failed to stage recovery code")
	}
	if err := srv.ephemeralRepo.Set(ctx, recoveryKeyPrefix+email, code, srv.recoveryWindow); err != nil {
		return errors.Wrap(err, "failed to stage recovery marker")
	}

	body := fmt.Sprintf("Your password recovery code: %s", code)
	if err := srv.mailer.Send(ctx, email, "Password recovery", body); err != nil {
		srv.log(ctx).Error("Recovery mail failed", slog.Any("error", err))

		return domainerrors.ErrMailDeliveryFailed
	}

	srv.log(ctx).Info("Recovery staged")

	return nil
}

// Exists reports whether a recovery is currently pending for an email.
func (srv *recoveryService) Exists(ctx context.Context, email string) (bool, error) {
	_, err := srv.ephemeralRepo.Get(ctx, recoveryKeyPrefix+email)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to look up pending recovery")
	}

	return true, nil
}

// Confirm consumes a recovery code and replaces the stored credential. The
// replacement password is validated before any state changes; both ephemeral
// records are deleted afterwards so the code is single-use.
func (srv *recoveryService) Confirm(ctx context.Context, input usecase.ConfirmRecoveryInput) error {
	if err := srv.validator.ValidatePassword(input.Password); err != nil {
		return err
	}

	codeKey := recoveryKeyPrefix + input.Code

	email, err := srv.ephemeralRepo.Get(ctx, codeKey)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domainerrors.ErrRecoveryRecordNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up recovery code")
	}

	directoryUser, err := srv.directory.FindByEmail(ctx, email)
	if errors.Is(err, service.ErrDirectoryUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Directory lookup failed", slog.Any("error", err))

		return domainerrors.ErrDirectoryUnavailable
	}

	user, err := srv.userRepo.FindByDirectoryID(ctx, directoryUser.ID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to load user for recovery")
	}

	salt, err := srv.hasher.GenerateSalt()
	if err != nil {
		return errors.Wrap(err, "failed to generate salt")
	}

	if err := srv.userRepo.UpdatePassword(ctx, user.ID, srv.hasher.Hash(input.Password, salt), salt); err != nil {
		return errors.Wrap(err, "failed to update credential")
	}

	if err := srv.ephemeralRepo.Delete(ctx, codeKey, recoveryKeyPrefix+email); err != nil {
		return errors.Wrap(err, "failed to consume recovery records")
	}

	srv.log(ctx).Info("Password recovered", slog.Int64("userID", user.ID))

	return nil
}
