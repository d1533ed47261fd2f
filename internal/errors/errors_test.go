package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestCombine(t *testing.T) {
	assert.NoError(t, Combine("sweep", nil, nil))

	first, second := New("listing a"), New("listing b")
	err := Combine("sweep", first, nil, second)

	require.Error(t, err)
	assert.True(t, Is(err, first))
	assert.True(t, Is(err, second))
	assert.Contains(t, err.Error(), "sweep: listing a\nlisting b")
}

func TestAsType(t *testing.T) {
	err := Wrap(&codedError{code: "E42"}, "outer")

	coded, ok := AsType[*codedError](err)
	require.True(t, ok)
	assert.Equal(t, "E42", coded.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}
