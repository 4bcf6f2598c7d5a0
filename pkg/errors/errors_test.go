package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntaxErrorWrapsMalformedQuery(t *testing.T) {
	err := NewSyntaxf(2, 7, "unexpected %q", ")")
	assert.Equal(t, `malformed query: unexpected ")" (2:7)`, err.Error())
	assert.ErrorIs(t, err, ErrMalformedQuery)

	wrapped := fmt.Errorf("searching: %w", err)
	line, col, ok := Position(wrapped)
	require.True(t, ok)
	assert.Equal(t, 2, line)
	assert.Equal(t, 7, col)
}

func TestPositionWithoutSyntaxError(t *testing.T) {
	_, _, ok := Position(ErrEmptyID)
	assert.False(t, ok)
}
