package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"redis": map[string]any{
			"addr": "localhost:6379",
		},
		"secretKey": map[string]any{
			"jwt": "",
		},
		"auth": map[string]any{
			"accessTokenTTL": "1h",
		},
		"userDirectory": map[string]any{
			"url": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "REDIS_ADDR", want: "redis.addr"},
		{envKey: "SECRETKEY_JWT", want: "secretKey.jwt"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
		{envKey: "USERDIRECTORY_URL", want: "userDirectory.url"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyAuthDefaults(t *testing.T) {
	auth := &AuthConfig{}
	applyAuthDefaults(auth)

	if auth.AccessTokenTTL.Hours() != 1 {
		t.Fatalf("AccessTokenTTL = %v, want 1h", auth.AccessTokenTTL)
	}
	if auth.RefreshTokenTTL.Hours() != 168 {
		t.Fatalf("RefreshTokenTTL = %v, want 168h", auth.RefreshTokenTTL)
	}
	if auth.TwoFactorWindow.Minutes() != 5 {
		t.Fatalf("TwoFactorWindow = %v, want 5m", auth.TwoFactorWindow)
	}
	if auth.RegistrationWindow.Minutes() != 10 {
		t.Fatalf("RegistrationWindow = %v, want 10m", auth.RegistrationWindow)
	}
	if auth.RecoveryWindow.Minutes() != 5 {
		t.Fatalf("RecoveryWindow = %v, want 5m", auth.RecoveryWindow)
	}
}
