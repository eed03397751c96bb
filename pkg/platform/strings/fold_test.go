package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "smith", Fold("  SMITH "))
	assert.Equal(t, "van dyke", Fold("van \t Dyke"))
	assert.Equal(t, "", Fold("   "))
}

func TestDedupeFold(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "nil slice", input: nil, expected: nil},
		{name: "empty slice", input: []string{}, expected: nil},
		{name: "drops blanks", input: []string{"", "  ", "Smith"}, expected: []string{"smith"}},
		{name: "case-insensitive duplicates", input: []string{"Smith", "SMITH", " smith "}, expected: []string{"smith"}},
		{name: "preserves first-seen order", input: []string{"Jones", "Smith", "jones"}, expected: []string{"jones", "smith"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeFold(tt.input))
		})
	}
}
