package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"authd/config"
	"authd/internal/domain/entity"
	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/repository"
	"authd/internal/domain/service"
	mockRepo "authd/internal/mocks/repository"
	mockService "authd/internal/mocks/service"
	"authd/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type registerServiceMocks struct {
	userRepo      *mockRepo.MockUserRepository
	ephemeralRepo *mockRepo.MockEphemeralRepository
	validator     *mockService.MockCredentialValidator
	hasher        *mockService.MockPasswordHasher
	mailer        *mockService.MockMailer
	directory     *mockService.MockDirectoryService
}

func newRegisterServiceForTest(t *testing.T) (registerServiceMocks, usecase.RegisterUsecase) {
	mocks := registerServiceMocks{
		userRepo:      mockRepo.NewMockUserRepository(t),
		ephemeralRepo: mockRepo.NewMockEphemeralRepository(t),
		validator:     mockService.NewMockCredentialValidator(t),
		hasher:        mockService.NewMockPasswordHasher(t),
		mailer:        mockService.NewMockMailer(t),
		directory:     mockService.NewMockDirectoryService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewRegisterService(RegisterServiceParams{
		UserRepo:      mocks.userRepo,
		EphemeralRepo: mocks.ephemeralRepo,
		Validator:     mocks.validator,
		Hasher:        mocks.hasher,
		Mailer:        mocks.mailer,
		Directory:     mocks.directory,
		Config: &config.Config{
			Links: config.LinksConfig{ConfirmBaseURL: "https://example.com/confirm"},
		},
		Logger: logger,
	})

	return mocks, svc
}

func TestRegisterService_Register_Success(t *testing.T) {
	mocks, svc := newRegisterServiceForTest(t)

	ctx := context.Background()

	mocks.validator.EXPECT().Validate("resident", "Sup3rSecret").Return(nil)
	mocks.hasher.EXPECT().GenerateSalt().Return("abcdefghij123456", nil)
	mocks.hasher.EXPECT().Hash("Sup3rSecret", "abcdefghij123456").Return("deadbeef")

	var stagedKey string
	mocks.ephemeralRepo.EXPECT().
		Set(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "register:")
		}), mock.AnythingOfType("string"), 10*time.Minute).
		Run(func(ctx context.Context, key string, value string, ttl time.Duration) {
			stagedKey = key

			staged, err := entity.DecodeStagedRegistration(value)
			require.NoError(t, err)
			assert.Equal(t, "resident", staged.Username)
			assert.Equal(t, "resident@example.com", staged.Email)
			assert.Equal(t, "deadbeef", staged.PasswordHash)
			assert.Equal(t, "abcdefghij123456", staged.Salt)
		}).
		Return(nil)
	mocks.mailer.EXPECT().
		Send(ctx, "resident@example.com", "Registration confirmation", mock.AnythingOfType("string")).
		Run(func(ctx context.Context, recipient string, subject string, body string) {
			code := strings.TrimPrefix(stagedKey, "register:")
			assert.Contains(t, body, "https://example.com/confirm?id="+code)
		}).
		Return(nil)

	err := svc.Register(ctx, usecase.RegisterInput{
		Username: "resident",
		Email:    "resident@example.com",
		Password: "Sup3rSecret",
	})

	require.NoError(t, err)
}

func TestRegisterService_Register_MailFailure(t *testing.T) {
	mocks, svc := newRegisterServiceForTest(t)

	ctx := context.Background()

	mocks.validator.EXPECT().Validate("resident", "Sup3rSecret").Return(nil)
	mocks.hasher.EXPECT().GenerateSalt().Return("abcdefghij123456", nil)
	mocks.hasher.EXPECT().Hash("Sup3rSecret", "abcdefghij123456").Return("deadbeef")
	mocks.ephemeralRepo.EXPECT().
		Set(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), 10*time.Minute).
		Return(nil)
	mocks.mailer.EXPECT().
		Send(ctx, "resident@example.com", "Registration confirmation", mock.AnythingOfType("string")).
		Return(assert.AnError)

	err := svc.Register(ctx, usecase.RegisterInput{
		Username: "resident",
		Email:    "resident@example.com",
		Password: "Sup3rSecret",
	})

	assert.ErrorIs(t, err, domainerrors.ErrMailDeliveryFailed)
}

func TestRegisterService_Register_RejectsMalformedCredentials(t *testing.T) {
	mocks, svc := newRegisterServiceForTest(t)

	ctx := context.Background()

	mocks.validator.EXPECT().Validate("no", "short").Return(domainerrors.ErrUsernameFormat)

	err := svc.Register(ctx, usecase.RegisterInput{Username: "no", Email: "a@b.c", Password: "short"})

	assert.ErrorIs(t, err, domainerrors.ErrUsernameFormat)
}

func stagedPayload(t *testing.T) string {
	t.Helper()

	payload, err := entity.NewStagedRegistration("resident", "resident@example.com", "deadbeef", "abcdefghij123456").Encode()
	require.NoError(t, err)

	return payload
}

func TestRegisterService_Confirm_Success(t *testing.T) {
	mocks, svc := newRegisterServiceForTest(t)

	ctx := context.Background()

	mocks.ephemeralRepo.EXPECT().Get(ctx, "register:1234567890").Return(stagedPayload(t), nil)
	mocks.directory.EXPECT().CreateUser(ctx, "resident", "resident@example.com").Return(&service.DirectoryUser{
		ID:       314,
		Username: "resident",
		Email:    "resident@example.com",
	}, nil)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, int64(314), user.DirectoryID)
			assert.Equal(t, "resident", user.Username)
			assert.Equal(t, "deadbeef", user.PasswordHash)
			assert.Equal(t, "abcdefghij123456", user.Salt)

			user.ID = 42
		}).
		Return(nil)
	mocks.ephemeralRepo.EXPECT().Delete(ctx, "register:1234567890").Return(nil)

	user, err := svc.Confirm(ctx, "1234567890")

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "resident", user.Username)
}

func TestRegisterService_Confirm_UnknownCode(t *testing.T) {
	mocks, svc := newRegisterServiceForTest(t)

	ctx := context.Background()

	mocks.ephemeralRepo.EXPECT().Get(ctx, "register:1234567890").Return("", repository.ErrRecordNotFound)

	_, err := svc.Confirm(ctx, "1234567890")

	assert.ErrorIs(t, err, domainerrors.ErrNotOnConfirmationList)
}

func TestRegisterService_Confirm_DirectoryConflict(t *testing.T) {
	mocks, svc := newRegisterServiceForTest(t)

	ctx := context.Background()

	mocks.ephemeralRepo.EXPECT().Get(ctx, "register:1234567890").Return(stagedPayload(t), nil)
	mocks.directory.EXPECT().
		CreateUser(ctx, "resident", "resident@example.com").
		Return(nil, service.ErrDirectoryConflict)

	_, err := svc.Confirm(ctx, "1234567890")

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestRegisterService_Confirm_DirectoryDown(t *testing.T) {
	mocks, svc := newRegisterServiceForTest(t)

	ctx := context.Background()

	mocks.ephemeralRepo.EXPECT().Get(ctx, "register:1234567890").Return(stagedPayload(t), nil)
	mocks.directory.EXPECT().
		CreateUser(ctx, "resident", "resident@example.com").
		Return(nil, assert.AnError)

	_, err := svc.Confirm(ctx, "1234567890")

	assert.ErrorIs(t, err, domainerrors.ErrDirectoryUnavailable)
}
