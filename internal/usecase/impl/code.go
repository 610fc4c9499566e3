package impl

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// Single-use codes are ten decimal digits with no leading zero, so they
// survive copy-paste and URL embedding without an encoding step.
const (
	codeMin  = 1_000_000_000
	codeSpan = 9_000_000_000
)

// generateCode produces a random single-use numeric code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate random code")
	}

	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}
