package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSha256Hasher_HashMatchesStoredFormat(t *testing.T) {
	hasher := NewSha256Hasher()

	hash := hasher.Hash("Sup3rSecret", "abcdefghij123456")

	sum := sha256.Sum256([]byte("Sup3rSecret" + "abcdefghij123456"))
	assert.Equal(t, hex.EncodeToString(sum[:]), hash)
	assert.Len(t, hash, 64)
}

func TestSha256Hasher_Check(t *testing.T) {
	hasher := NewSha256Hasher()

	hash := hasher.Hash("Sup3rSecret", "abcdefghij123456")

	assert.True(t, hasher.Check("Sup3rSecret", "abcdefghij123456", hash))
	assert.False(t, hasher.Check("WrongPass1", "abcdefghij123456", hash))
	assert.False(t, hasher.Check("Sup3rSecret", "othersalt7654321", hash))
}

func TestSha256Hasher_GenerateSalt(t *testing.T) {
	hasher := NewSha256Hasher()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		salt, err := hasher.GenerateSalt()
		require.NoError(t, err)

		assert.Len(t, salt, 16)
		for _, r := range salt {
			isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			assert.True(t, isAlnum, "unexpected salt character %q", r)
		}

		seen[salt] = struct{}{}
	}

	assert.Greater(t, len(seen), 45)
}
