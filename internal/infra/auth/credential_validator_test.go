package auth

import (
	"strings"
	"testing"

	domainerrors "authd/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestCredentialValidator_ValidateUsername(t *testing.T) {
	validator := NewCredentialValidator()

	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"minimum length", "abcde", false},
		{"maximum length", strings.Repeat("a", 16), false},
		{"digits and underscores", "user_42", false},
		{"underscores with one digit", "___1___", false},
		{"too short", "abcd", true},
		{"too long", strings.Repeat("a", 17), true},
		{"empty", "", true},
		{"forbidden character", "user-name", true},
		{"space", "user name", true},
		{"unicode letter", "usérname", true},
		{"underscores only", "______", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateUsername(tt.username)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrUsernameFormat)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredentialValidator_ValidatePassword(t *testing.T) {
	validator := NewCredentialValidator()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"minimum length", "abcdefg1", false},
		{"maximum length", strings.Repeat("a", 32), false},
		{"mixed classes", "Sup3r_Secret", false},
		{"too short", "abcdefg", true},
		{"too long", strings.Repeat("a", 33), true},
		{"forbidden character", "pass!word", true},
		{"underscores only", "________", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrPasswordFormat)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredentialValidator_Validate_ChecksUsernameFirst(t *testing.T) {
	validator := NewCredentialValidator()

	err := validator.Validate("x", "short")
	assert.ErrorIs(t, err, domainerrors.ErrUsernameFormat)

	err = validator.Validate("resident", "short")
	assert.ErrorIs(t, err, domainerrors.ErrPasswordFormat)

	assert.NoError(t, validator.Validate("resident", "Sup3rSecret"))
}
