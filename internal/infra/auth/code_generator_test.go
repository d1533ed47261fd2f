package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_NumericCode(t *testing.T) {
	gen := NewCodeGenerator()

	code, err := gen.NumericCode(6)
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9]{6}$`, code)

	_, err = gen.NumericCode(0)
	assert.Error(t, err)
}
