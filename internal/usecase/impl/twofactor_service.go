package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"authd/config"
	deliverycontext "authd/internal/delivery/context"
	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/domain/service"
	"authd/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// twoFactorKeyPrefix namespaces pending login challenges in the ephemeral
// store.
const twoFactorKeyPrefix = "2fa:"

const defaultTwoFactorWindow = 5 * time.Minute

// twoFactorService implements the TwoFactorUsecase interface.
type twoFactorService struct {
	userRepo        repository.UserRepository
	ephemeralRepo   repository.EphemeralRepository
	totpService     service.TotpService
	qrcodeService   service.QRCodeService
	sessionUsecase  usecase.SessionUsecase
	challengeWindow time.Duration
	logger          *slog.Logger
}

// TwoFactorServiceParams holds dependencies for twoFactorService, injected by Fx.
type TwoFactorServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	EphemeralRepo  repository.EphemeralRepository
	TotpService    service.TotpService
	QRCodeService  service.QRCodeService
	SessionUsecase usecase.SessionUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// NewTwoFactorService is the constructor for twoFactorService.
func NewTwoFactorService(params TwoFactorServiceParams) usecase.TwoFactorUsecase {
	challengeWindow := defaultTwoFactorWindow
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.TwoFactorWindow > 0 {
		challengeWindow = params.Config.Auth.TwoFactorWindow
	}

	return &twoFactorService{
		userRepo:        params.UserRepo,
		ephemeralRepo:   params.EphemeralRepo,
		totpService:     params.TotpService,
		qrcodeService:   params.QRCodeService,
		sessionUsecase:  params.SessionUsecase,
		challengeWindow: challengeWindow,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *twoFactorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Setup generates a candidate secret and its enrollment payload. The secret
// is not persisted here; it only becomes the account's second factor once
// Link verifies a code against it.
func (srv *twoFactorService) Setup(ctx context.Context, userID int64) (*usecase.TwoFactorSetupOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for second-factor setup")
	}

	if user.TwoFactorEnabled() {
		return nil, domainerrors.ErrTwoFactorAlreadyLinked
	}

	secret, err := srv.totpService.GenerateSecret()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate second-factor secret")
	}

	enrollment, err := srv.totpService.Enrollment(user.Username, secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build enrollment payload")
	}

	qrCode, err := srv.qrcodeService.RenderDataURI(enrollment.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render enrollment QR code")
	}

	srv.log(ctx).Info("Second-factor setup issued", slog.Int64("userID", userID))

	return &usecase.TwoFactorSetupOutput{
		Secret: enrollment.Secret,
		URL:    enrollment.URL,
		QRCode: qrCode,
	}, nil
}

// Link verifies a code against the candidate secret and persists it.
func (srv *twoFactorService) Link(ctx context.Context, userID int64, secret, code string) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to load user for second-factor link")
	}

	if user.TwoFactorEnabled() {
		return domainerrors.ErrTwoFactorAlreadyLinked
	}

	if !srv.totpService.Verify(secret, code) {
		return domainerrors.ErrTwoFactorCodeInvalid
	}

	if err := srv.userRepo.UpdateTotpSecret(ctx, userID, secret); err != nil {
		return errors.Wrap(err, "failed to persist second-factor secret")
	}

	srv.log(ctx).Info("Second factor linked", slog.Int64("userID", userID))

	return nil
}

// PendLogin stages a "waiting for second factor" record for a user whose
// password just checked out.
func (srv *twoFactorService) PendLogin(ctx context.Context, user *entity.User) error {
	key := twoFactorKeyPrefix + user.Username
	value := strconv.FormatInt(user.ID, 10)

	if err := srv.ephemeralRepo.Set(ctx, key, value, srv.challengeWindow); err != nil {
		return errors.Wrap(err, "failed to stage pending challenge")
	}

	return nil
}

// ConfirmLogin resolves a pending challenge. An absent record reports "no
// pending login" distinctly from "wrong code"; a wrong code leaves the
// record in place so the user can retry until it expires.
func (srv *twoFactorService) ConfirmLogin(ctx context.Context, input usecase.ConfirmTwoFactorLoginInput) (*entity.Session, error) {
	key := twoFactorKeyPrefix + input.Username

	if _, err := srv.ephemeralRepo.Get(ctx, key); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrTwoFactorNotPending
		}

		return nil, errors.Wrap(err, "failed to look up pending challenge")
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrTwoFactorNotPending
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for challenge confirmation")
	}

	if !user.TwoFactorEnabled() {
		return nil, domainerrors.ErrTwoFactorNotPending
	}

	if !srv.totpService.Verify(*user.TotpSecret, input.Code) {
		srv.log(ctx).Warn("Second-factor code rejected", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrTwoFactorCodeInvalid
	}

	if err := srv.ephemeralRepo.Delete(ctx, key); err != nil {
		return nil, errors.Wrap(err, "failed to consume pending challenge")
	}

	session, err := srv.sessionUsecase.Obtain(ctx, user, input.UserAgent)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Second-factor login confirmed", slog.Int64("userID", user.ID))

	return session, nil
}
