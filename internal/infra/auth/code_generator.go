package auth

import (
	"crypto/rand"
	"math/big"
	"strings"

	"enginex/internal/domain/service"
	"enginex/internal/errors"
)

type randomCodeGenerator struct{}

// NewCodeGenerator returns a generator backed by crypto/rand.
func NewCodeGenerator() service.CodeGenerator {
	return randomCodeGenerator{}
}

// NumericCode returns length uniformly random decimal digits.
func (randomCodeGenerator) NumericCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.Errorf("invalid code length %d", length)
	}

	var b strings.Builder
	b.Grow(length)
	ten := big.NewInt(10)
	for range length {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", errors.Wrap(err, "read random digit")
		}
		b.WriteByte(byte('0' + n.Int64()))
	}

	return b.String(), nil
}
