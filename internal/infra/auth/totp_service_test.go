package auth

import (
	"encoding/base32"
	"testing"
	"time"

	"authd/config"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTotpServiceForTest() *totpService {
	cfg := &config.Config{Totp: config.TotpConfig{Issuer: "authd"}}

	return NewTotpService(cfg).(*totpService)
}

func TestTotpService_GenerateSecret(t *testing.T) {
	svc := newTotpServiceForTest()

	secret, err := svc.GenerateSecret()
	require.NoError(t, err)

	raw, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(secret)
	require.NoError(t, err)
	assert.Len(t, raw, 20)
	assert.NotContains(t, secret, "=")

	other, err := svc.GenerateSecret()
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)
}

func TestTotpService_Enrollment(t *testing.T) {
	svc := newTotpServiceForTest()

	enrollment, err := svc.Enrollment("resident", "JBSWY3DPEHPK3PXP")
	require.NoError(t, err)

	assert.Equal(t, "JBSWY3DPEHPK3PXP", enrollment.Secret)
	assert.Contains(t, enrollment.URL, "otpauth://totp/authd:resident")
	assert.Contains(t, enrollment.URL, "secret=JBSWY3DPEHPK3PXP")
	assert.Contains(t, enrollment.URL, "issuer=authd")
	assert.Contains(t, enrollment.URL, "algorithm=SHA1")
	assert.Contains(t, enrollment.URL, "digits=6")
	assert.Contains(t, enrollment.URL, "period=30")
}

func TestTotpService_Enrollment_EmptySecret(t *testing.T) {
	svc := newTotpServiceForTest()

	_, err := svc.Enrollment("resident", "")
	assert.Error(t, err)
}

func TestTotpService_Verify(t *testing.T) {
	svc := newTotpServiceForTest()

	secret, err := svc.GenerateSecret()
	require.NoError(t, err)

	code, err := totp.GenerateCodeCustom(secret, time.Now(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	require.NoError(t, err)

	assert.True(t, svc.Verify(secret, code))
	assert.False(t, svc.Verify(secret, "000000"))
	assert.False(t, svc.Verify("", code))
}

func TestTotpService_Verify_AcceptsAdjacentStep(t *testing.T) {
	svc := newTotpServiceForTest()

	secret, err := svc.GenerateSecret()
	require.NoError(t, err)

	// One step of skew is allowed either way, so a code from the previous
	// period still verifies.
	previous, err := totp.GenerateCodeCustom(secret, time.Now().Add(-30*time.Second), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	require.NoError(t, err)

	assert.True(t, svc.Verify(secret, previous))
}
