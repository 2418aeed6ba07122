package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextNumber(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		expected string
	}{
		{"trailing run", "INV-2026-0007", "INV-2026-0008"},
		{"zero pad preserved", "INV-001", "INV-002"},
		{"pad widens on overflow", "INV-099", "INV-100"},
		{"width grows past pad", "INV-999", "INV-1000"},
		{"short run", "A9", "A10"},
		{"digits then suffix", "2026-w-0003-draft", "2026-w-0004-draft"},
		{"only the last run increments", "INV-2026-03-0001", "INV-2026-03-0002"},
		{"bare number", "7", "8"},
		{"no digits at all", "NOID", "NOID-001"},
		{"empty string", "", "-001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextNumber(tt.current))
		})
	}
}

func TestNextNumberIsStable(t *testing.T) {
	// Repeated increments keep the surrounding text intact.
	n := "INV-202603-0001"
	for i := 0; i < 5; i++ {
		n = NextNumber(n)
	}
	assert.Equal(t, "INV-202603-0006", n)
}
