package auth

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"authd/config"
	"authd/internal/domain/service"
)

// Fixed TOTP parameters. Generation embeds them in the provisioning URL and
// verification replays the exact same set; they must never diverge.
const (
	totpDigits     = otp.DigitsSix
	totpAlgorithm  = otp.AlgorithmSHA1
	totpPeriod     = 30
	totpSkew       = 1
	totpSecretSize = 20
)

// totpService is a concrete implementation of the TotpService interface
// built on the pquerna/otp library.
type totpService struct {
	issuer string // Label shown in authenticator apps next to the account.
}

// NewTotpService is the constructor for totpService.
func NewTotpService(cfg *config.Config) service.TotpService {
	issuer := cfg.Totp.Issuer
	if issuer == "" {
		issuer = cfg.Env.ServiceName
	}

	return &totpService{issuer: issuer}
}

// GenerateSecret produces a fresh base32-encoded secret, padding stripped.
func (s *totpService) GenerateSecret() (string, error) {
	raw := make([]byte, totpSecretSize)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to generate totp secret")
	}

	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(raw), nil
}

// Enrollment builds the otpauth provisioning payload for a username and secret.
func (s *totpService) Enrollment(username, secret string) (*service.TotpEnrollment, error) {
	if secret == "" {
		return nil, errors.New("totp secret must not be empty")
	}

	provisioningURL := fmt.Sprintf(
		"otpauth://totp/%s:%s?secret=%s&issuer=%s&algorithm=SHA1&digits=%d&period=%d",
		url.PathEscape(s.issuer),
		url.PathEscape(username),
		secret,
		url.QueryEscape(s.issuer),
		totpDigits.Length(),
		totpPeriod,
	)

	return &service.TotpEnrollment{
		Secret: secret,
		URL:    provisioningURL,
	}, nil
}

// Verify checks a submitted code against the secret at the current time step,
// allowing one step of clock skew either way.
func (s *totpService) Verify(secret, code string) bool {
	valid, err := totp.ValidateCustom(code, secret, time.Now(), totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    totpDigits,
		Algorithm: totpAlgorithm,
	})

	return err == nil && valid
}
