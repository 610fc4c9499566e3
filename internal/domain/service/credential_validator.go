package service

// CredentialValidator enforces the format rules for usernames and passwords.
// This is user-facing input validation: violations are 400-class domain
// errors naming the offending field, never internal failures. Matching a
// password against a stored hash is PasswordHasher's job, not this one's.
type CredentialValidator interface {
	// ValidateUsername checks the username length and character-class rules.
	ValidateUsername(username string) error

	// ValidatePassword checks the password length and character-class rules.
	ValidatePassword(password string) error

	// Validate checks both fields of a credential pair.
	Validate(username, password string) error
}
