package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstSentence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"period boundary", "Great bagels. A bit pricey though.", "Great bagels."},
		{"exclamation boundary", "Best in town! Really.", "Best in town!"},
		{"question boundary", "Worth the line? Absolutely.", "Worth the line?"},
		{"single sentence", "Solid everything bagel.", "Solid everything bagel."},
		{"collapses whitespace", "  Great\n\tbagels.  More text.", "Great bagels."},
		{"empty", "   ", ""},
		{"no boundary short", "chewy and warm", "chewy and warm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstSentence(tt.in))
		})
	}
}

func TestFirstSentence_LongTextWithoutBoundary(t *testing.T) {
	got := FirstSentence(strings.Repeat("a", 200))
	assert.Equal(t, strings.Repeat("a", 140)+"…", got)
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0 reviews", FormatCount(0))
	assert.Equal(t, "1 review", FormatCount(1))
	assert.Equal(t, "12 reviews", FormatCount(12))
}

func TestUniq(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Uniq([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, Uniq(nil))
}
