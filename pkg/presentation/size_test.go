package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatSize is a function.
func TestFormatSize(t *testing.T) {
	type scenario struct {
		size     int64
		bytes    bool
		expected string
	}

	scenarios := []scenario{
		{0, false, "0"},
		{1023, false, "1023"},
		{1024, false, "1.0k"},
		{1536, false, "1.5k"},
		{10 * 1024 * 1024, false, "10.0M"},
		{1048575, false, "1.0M"},
		{1024 * 1024 * 1024, false, "1.0G"},
		{5 * 1024 * 1024 * 1024 * 1024, false, "5120.0G"},
		{10 * 1024 * 1024, true, "10485760"},
		{0, true, "0"},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, FormatSize(s.size, s.bytes))
	}
}

func TestFormatSizeStaysUnderTheNextUnit(t *testing.T) {
	for size := int64(1024); size < 4*1024*1024; size += 997 {
		formatted := FormatSize(size, false)
		assert.NotContains(t, formatted, "1024.0", "size %d", size)
	}
}
