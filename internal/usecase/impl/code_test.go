package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode_TenDigits(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		code, err := generateCode()
		require.NoError(t, err)

		assert.Len(t, code, 10)
		assert.NotEqual(t, '0', rune(code[0]))
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}

		seen[code] = struct{}{}
	}

	// 100 draws from nine billion values colliding down to a handful would
	// point at a broken source of randomness.
	assert.Greater(t, len(seen), 90)
}
