package service

// PasswordHasher defines the salted-hash scheme used for stored credentials.
// The stored format is sha256(password + salt) hex-encoded; the salt is kept
// alongside the hash, so both are needed to check a candidate password.
type PasswordHasher interface {
	// GenerateSalt produces a fresh random salt for a new credential.
	GenerateSalt() (string, error)

	// Hash computes the stored form of a password with the given salt.
	Hash(password, salt string) string

	// Check compares a candidate password against the stored hash in
	// constant time.
	Check(password, salt, hash string) bool
}
