package service

// TotpEnrollment is the payload a user needs to add the account to an
// authenticator app: the raw secret plus the otpauth provisioning URL the
// QR code encodes.
type TotpEnrollment struct {
	Secret string
	URL    string
}

// TotpService generates and verifies time-based one-time codes. Generation
// and verification share one fixed parameter set (algorithm, digits, period,
// skew); diverging them would make every verification fail.
type TotpService interface {
	// GenerateSecret produces a fresh base32-encoded secret, padding stripped.
	GenerateSecret() (string, error)

	// Enrollment builds the provisioning payload for a username and secret.
	Enrollment(username, secret string) (*TotpEnrollment, error)

	// Verify checks a submitted code against the secret at the current
	// time step.
	Verify(secret, code string) bool
}
