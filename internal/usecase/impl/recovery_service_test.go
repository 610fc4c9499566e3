package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

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

type recoveryServiceMocks struct {
	userRepo      *mockRepo.MockUserRepository
	ephemeralRepo *mockRepo.MockEphemeralRepository
	validator     *mockService.MockCredentialValidator
	hasher        *mockService.MockPasswordHasher
	mailer        *mockService.MockMailer
	directory     *mockService.MockDirectoryService
}

func newRecoveryServiceForTest(t *testing.T) (recoveryServiceMocks, usecase.RecoveryUsecase) {
	mocks := recoveryServiceMocks{
		userRepo:      mockRepo.NewMockUserRepository(t),
		ephemeralRepo: mockRepo.NewMockEphemeralRepository(t),
		validator:     mockService.NewMockCredentialValidator(t),
		hasher:        mockService.NewMockPasswordHasher(t),
		mailer:        mockService.NewMockMailer(t),
		directory:     mockService.NewMockDirectoryService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewRecoveryService(RecoveryServiceParams{
		UserRepo:      mocks.userRepo,
		EphemeralRepo: mocks.ephemeralRepo,
		Validator:     mocks.validator,
		Hasher:        mocks.hasher,
		Mailer:        mocks.mailer,
		Directory:     mocks.directory,
		Logger:        logger,
	})

	return mocks, svc
}

func TestRecoveryService_Initiate_Success(t *testing.T) {
	mocks, svc := newRecoveryServiceForTest(t)

	ctx := context.Background()
	email := "resident@example.com"

	mocks.ephemeralRepo.EXPECT().Get(ctx, "recovery:"+email).Return("", repository.ErrRecordNotFound)

	var stagedCode string
	mocks.ephemeralRepo.EXPECT().
		Set(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "recovery:") && key != "recovery:"+email
		}), email, 5*time.Minute).
		Run(func(ctx context.Context, key string, value string, ttl time.Duration) {
			stagedCode = strings.TrimPrefix(key, "recovery:")
			assert.Len(t, stagedCode, 10)
		}).
		Return(nil)
	mocks.ephemeralRepo.EXPECT().
		Set(ctx, "recovery:"+email, mock.AnythingOfType("string"), 5*time.Minute).
		Return(nil)
	mocks.mailer.EXPECT().
		Send(ctx, email, "Password recovery", mock.AnythingOfType("string")).
		Run(func(ctx context.Context, recipient string, subject string, body string) {
			assert.Contains(t, body, stagedCode)
		}).
		Return(nil)

	err := svc.Initiate(ctx, email)

	require.NoError(t, err)
}

func TestRecoveryService_Initiate_AlreadyPending(t *testing.T) {
	mocks, svc := newRecoveryServiceForTest(t)

	ctx := context.Background()
	email := "resident@example.com"

	mocks.ephemeralRepo.EXPECT().Get(ctx, "recovery:"+email).Return("1234567890", nil)

	err := svc.Initiate(ctx, email)

	assert.ErrorIs(t, err, domainerrors.ErrRecoveryAlreadyPending)
}

func TestRecoveryService_Exists(t *testing.T) {
	mocks, svc := newRecoveryServiceForTest(t)

	ctx := context.Background()

	mocks.ephemeralRepo.EXPECT().Get(ctx, "recovery:pending@example.com").Return("1234567890", nil)
	mocks.ephemeralRepo.EXPECT().Get(ctx, "recovery:idle@example.com").Return("", repository.ErrRecordNotFound)

	pending, err := svc.Exists(ctx, "pending@example.com")
	require.NoError(t, err)
	assert.True(t, pending)

	pending, err = svc.Exists(ctx, "idle@example.com")
	require.NoError(t, err)
	assert.False(t, pending)
}

func TestRecoveryService_Confirm_Success(t *testing.T) {
	mocks, svc := newRecoveryServiceForTest(t)

	ctx := context.Background()
	email := "resident@example.com"
	user := &entity.User{ID: 42, DirectoryID: 314, Username: "resident"}

	mocks.validator.EXPECT().ValidatePassword("N3wPassword").Return(nil)
	mocks.ephemeralRepo.EXPECT().Get(ctx, "recovery:1234567890").Return(email, nil)
	mocks.directory.EXPECT().FindByEmail(ctx, email).Return(&service.DirectoryUser{
		ID:       314,
		Username: "resident",
		Email:    email,
	}, nil)
	mocks.userRepo.EXPECT().FindByDirectoryID(ctx, int64(314)).Return(user, nil)
	mocks.hasher.EXPECT().GenerateSalt().Return("freshsalt1234567", nil)
	mocks.hasher.EXPECT().Hash("N3wPassword", "freshsalt1234567").Return("newhash")
	mocks.userRepo.EXPECT().UpdatePassword(ctx, int64(42), "newhash", "freshsalt1234567").Return(nil)
	mocks.ephemeralRepo.EXPECT().Delete(ctx, "recovery:1234567890", "recovery:"+email).Return(nil)

	err := svc.Confirm(ctx, usecase.ConfirmRecoveryInput{Code: "1234567890", Password: "N3wPassword"})

	require.NoError(t, err)
}

func TestRecoveryService_Confirm_WeakPasswordLeavesRecordsUntouched(t *testing.T) {
	mocks, svc := newRecoveryServiceForTest(t)

	ctx := context.Background()

	mocks.validator.EXPECT().ValidatePassword("short").Return(domainerrors.ErrPasswordFormat)

	err := svc.Confirm(ctx, usecase.ConfirmRecoveryInput{Code: "1234567890", Password: "short"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordFormat)
}

func TestRecoveryService_Confirm_UnknownCode(t *testing.T) {
	mocks, svc := newRecoveryServiceForTest(t)

	ctx := context.Background()

	mocks.validator.EXPECT().ValidatePassword("N3wPassword").Return(nil)
	mocks.ephemeralRepo.EXPECT().Get(ctx, "recovery:1234567890").Return("", repository.ErrRecordNotFound)

	err := svc.Confirm(ctx, usecase.ConfirmRecoveryInput{Code: "1234567890", Password: "N3wPassword"})

	assert.ErrorIs(t, err, domainerrors.ErrRecoveryRecordNotFound)
}

func TestRecoveryService_Confirm_UnknownEmail(t *testing.T) {
	mocks, svc := newRecoveryServiceForTest(t)

	ctx := context.Background()

	mocks.validator.EXPECT().ValidatePassword("N3wPassword").Return(nil)
	mocks.ephemeralRepo.EXPECT().Get(ctx, "recovery:1234567890").Return("gone@example.com", nil)
	mocks.directory.EXPECT().FindByEmail(ctx, "gone@example.com").Return(nil, service.ErrDirectoryUserNotFound)

	err := svc.Confirm(ctx, usecase.ConfirmRecoveryInput{Code: "1234567890", Password: "N3wPassword"})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
