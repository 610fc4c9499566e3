package auth

import (
	"fmt"

	domainerrors "authd/internal/domain/errors"
	"authd/internal/domain/service"
)

const (
	minUsernameLength = 5
	maxUsernameLength = 16

	minPasswordLength = 8
	maxPasswordLength = 32
)

// credentialValidator is a concrete implementation of the CredentialValidator
// interface enforcing the shared username/password format rules.
type credentialValidator struct{}

// NewCredentialValidator is the constructor for credentialValidator.
func NewCredentialValidator() service.CredentialValidator {
	return &credentialValidator{}
}

// ValidateUsername checks the username length and character-class rules.
func (v *credentialValidator) ValidateUsername(username string) error {
	if err := validateSpell(username, minUsernameLength, maxUsernameLength); err != nil {
		return domainerrors.ErrUsernameFormat.WithDetails(err.Error())
	}

	return nil
}

// ValidatePassword checks the password length and character-class rules.
func (v *credentialValidator) ValidatePassword(password string) error {
	if err := validateSpell(password, minPasswordLength, maxPasswordLength); err != nil {
		return domainerrors.ErrPasswordFormat.WithDetails(err.Error())
	}

	return nil
}

// Validate checks both fields of a credential pair.
func (v *credentialValidator) Validate(username, password string) error {
	if err := v.ValidateUsername(username); err != nil {
		return err
	}

	return v.ValidatePassword(password)
}

// validateSpell applies the common rules: length within the inclusive range,
// only alphanumerics and underscore, and at least one alphanumeric rune.
func validateSpell(text string, minLen, maxLen int) error {
	if len(text) < minLen || len(text) > maxLen {
		return fmt.Errorf("length must be between %d and %d characters", minLen, maxLen)
	}

	hasAlnum := false
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			hasAlnum = true
		case r == '_':
		default:
			return fmt.Errorf("only letters (a-Z), digits (0-9) and underscores (_) are allowed")
		}
	}

	if !hasAlnum {
		return fmt.Errorf("at least one letter or digit is required")
	}

	return nil
}
