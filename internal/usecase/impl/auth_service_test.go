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
	mockUsecase "authd/internal/mocks/usecase"
	"authd/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	userRepo       *mockRepo.MockUserRepository
	validator      *mockService.MockCredentialValidator
	hasher         *mockService.MockPasswordHasher
	sessionUsecase *mockUsecase.MockSessionUsecase
	twoFactor      *mockUsecase.MockTwoFactorUsecase
}

func newAuthServiceForTest(t *testing.T) (authServiceMocks, usecase.AuthUsecase) {
	mocks := authServiceMocks{
		userRepo:       mockRepo.NewMockUserRepository(t),
		validator:      mockService.NewMockCredentialValidator(t),
		hasher:         mockService.NewMockPasswordHasher(t),
		sessionUsecase: mockUsecase.NewMockSessionUsecase(t),
		twoFactor:      mockUsecase.NewMockTwoFactorUsecase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		UserRepo:       mocks.userRepo,
		Validator:      mocks.validator,
		Hasher:         mocks.hasher,
		SessionUsecase: mocks.sessionUsecase,
		TwoFactor:      mocks.twoFactor,
		Logger:         logger,
	})

	return mocks, service
}

func TestAuthService_Login_Success(t *testing.T) {
	mocks, service := newAuthServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{ID: 42, Username: "resident", PasswordHash: "hash", Salt: "salt"}
	session := &entity.Session{ID: 7, UserID: 42, IsActive: true}

	mocks.validator.EXPECT().Validate("resident", "Sup3rSecret").Return(nil)
	mocks.userRepo.EXPECT().FindByUsername(ctx, "resident").Return(user, nil)
	mocks.hasher.EXPECT().Check("Sup3rSecret", "salt", "hash").Return(true)
	mocks.sessionUsecase.EXPECT().Obtain(ctx, user, "launcher/1.0").Return(session, nil)

	output, err := service.Login(ctx, usecase.LoginInput{
		Username:  "resident",
		Password:  "Sup3rSecret",
		UserAgent: "launcher/1.0",
	})

	require.NoError(t, err)
	assert.False(t, output.TwoFactorPending)
	assert.Same(t, session, output.Session)
}

func TestAuthService_Login_MalformedCredentialsRejectedBeforeLookup(t *testing.T) {
	mocks, service := newAuthServiceForTest(t)

	ctx := context.Background()

	mocks.validator.EXPECT().Validate("x", "short").Return(domainerrors.ErrUsernameFormat)

	_, err := service.Login(ctx, usecase.LoginInput{Username: "x", Password: "short"})

	assert.ErrorIs(t, err, domainerrors.ErrUsernameFormat)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	mocks, service := newAuthServiceForTest(t)

	ctx := context.Background()

	mocks.validator.EXPECT().Validate("nobody123", "Sup3rSecret").Return(nil)
	mocks.userRepo.EXPECT().FindByUsername(ctx, "nobody123").Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, usecase.LoginInput{Username: "nobody123", Password: "Sup3rSecret"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mocks, service := newAuthServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{ID: 42, Username: "resident", PasswordHash: "hash", Salt: "salt"}

	mocks.validator.EXPECT().Validate("resident", "WrongPass1").Return(nil)
	mocks.userRepo.EXPECT().FindByUsername(ctx, "resident").Return(user, nil)
	mocks.hasher.EXPECT().Check("WrongPass1", "salt", "hash").Return(false)

	_, err := service.Login(ctx, usecase.LoginInput{Username: "resident", Password: "WrongPass1"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_SecondFactorPending(t *testing.T) {
	mocks, service := newAuthServiceForTest(t)

	ctx := context.Background()
	secret := "JBSWY3DPEHPK3PXP"
	user := &entity.User{ID: 42, Username: "resident", PasswordHash: "hash", Salt: "salt", TotpSecret: &secret}

	mocks.validator.EXPECT().Validate("resident", "Sup3rSecret").Return(nil)
	mocks.userRepo.EXPECT().FindByUsername(ctx, "resident").Return(user, nil)
	mocks.hasher.EXPECT().Check("Sup3rSecret", "salt", "hash").Return(true)
	mocks.twoFactor.EXPECT().PendLogin(ctx, user).Return(nil)

	output, err := service.Login(ctx, usecase.LoginInput{
		Username:  "resident",
		Password:  "Sup3rSecret",
		UserAgent: "launcher/1.0",
	})

	require.NoError(t, err)
	assert.True(t, output.TwoFactorPending)
	assert.Nil(t, output.Session)
}
