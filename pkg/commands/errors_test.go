package commands

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplexError(t *testing.T) {
	err := NewComplexError(TerminalWidthUnavailable, "", "no terminal")

	assert.Equal(t, "no terminal", err.Error())
	assert.True(t, HasErrorCode(err, TerminalWidthUnavailable))
	assert.False(t, HasErrorCode(err, NotFound))
	assert.False(t, HasErrorCode(fmt.Errorf("plain"), NotFound))

	wrapped := fmt.Errorf("listing: %w", err)
	assert.True(t, HasErrorCode(wrapped, TerminalWidthUnavailable))
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil))

	err := WrapError(NewComplexError(NotFound, "x", "x: missing"))
	assert.True(t, HasErrorCode(err, NotFound))
}
