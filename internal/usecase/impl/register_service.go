package impl

import (
	"context"
	"fmt"
	"log/slog"
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

// registerKeyPrefix namespaces staged registrations in the ephemeral store.
const registerKeyPrefix = "register:"

const defaultRegistrationWindow = 10 * time.Minute

// registerService implements the RegisterUsecase interface.
type registerService struct {
	userRepo           repository.UserRepository
	ephemeralRepo      repository.EphemeralRepository
	validator          service.CredentialValidator
	hasher             service.PasswordHasher
	mailer             service.Mailer
	directory          service.DirectoryService
	registrationWindow time.Duration
	confirmBaseURL     string
	logger             *slog.Logger
}

// RegisterServiceParams holds dependencies for registerService, injected by Fx.
type RegisterServiceParams struct {
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

// NewRegisterService is the constructor for registerService.
func NewRegisterService(params RegisterServiceParams) usecase.RegisterUsecase {
	registrationWindow := defaultRegistrationWindow
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.RegistrationWindow > 0 {
		registrationWindow = params.Config.Auth.RegistrationWindow
	}

	confirmBaseURL := ""
	if params.Config != nil {
		confirmBaseURL = params.Config.Links.ConfirmBaseURL
	}

	return &registerService{
		userRepo:           params.UserRepo,
		ephemeralRepo:      params.EphemeralRepo,
		validator:          params.Validator,
		hasher:             params.Hasher,
		mailer:             params.Mailer,
		directory:          params.Directory,
		registrationWindow: registrationWindow,
		confirmBaseURL:     confirmBaseURL,
		logger:             params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the credentials, stages the pending account under a
// single-use code and mails the confirmation link. Success means the record
// is staged; the durable account only exists after Confirm.
func (srv *registerService) Register(ctx context.Context, input usecase.RegisterInput) error {
	if err := srv.validator.Validate(input.Username, input.Password); err != nil {
		return err
	}

	salt, err := srv.hasher.GenerateSalt()
	if err != nil {
		return errors.Wrap(err, "failed to generate salt")
	}

	staged := entity.NewStagedRegistration(
		input.Username,
		input.Email,
		srv.hasher.Hash(input.Password, salt),
		salt,
	)

	payload, err := staged.Encode()
	if err != nil {
		return errors.Wrap(err, "failed to encode staged registration")
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	if err := srv.ephemeralRepo.Set(ctx, registerKeyPrefix+code, payload, srv.registrationWindow); err != nil {
		return errors.Wrap(err, "failed to stage registration")
	}

	body := fmt.Sprintf("Follow the link to confirm your registration: %s?id=%s", srv.confirmBaseURL, code)
	if err := srv.mailer.Send(ctx, input.Email, "Registration confirmation", body); err != nil {
		srv.log(ctx).Error("Confirmation mail failed", slog.Any("error", err))

		return domainerrors.ErrMailDeliveryFailed
	}

	srv.log(ctx).Info("Registration staged", slog.String("username", input.Username))

	return nil
}

// Confirm consumes a confirmation code: the identity is created in the user
// directory first, then mirrored locally with the directory's id, and the
// staged record is deleted so a second confirm with the same code reports
// not-found rather than re-creating anything.
func (srv *registerService) Confirm(ctx context.Context, code string) (*entity.User, error) {
	key := registerKeyPrefix + code

	payload, err := srv.ephemeralRepo.Get(ctx, key)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotOnConfirmationList
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up staged registration")
	}

	staged, err := entity.DecodeStagedRegistration(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode staged registration")
	}

	directoryUser, err := srv.directory.CreateUser(ctx, staged.Username, staged.Email)
	if errors.Is(err, service.ErrDirectoryConflict) {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if err != nil {
		srv.log(ctx).Error("Directory create failed", slog.Any("error", err))

		return nil, domainerrors.ErrDirectoryUnavailable
	}

	user := staged.User(directoryUser.ID)
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to persist confirmed user")
	}

	if err := srv.ephemeralRepo.Delete(ctx, key); err != nil {
		return nil, errors.Wrap(err, "failed to consume confirmation code")
	}

	srv.log(ctx).Info("Registration confirmed",
		slog.String("username", user.Username),
		slog.Int64("userID", user.ID),
	)

	return user, nil
}
