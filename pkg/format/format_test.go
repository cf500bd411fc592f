package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "empty", text: "", expected: 0},
		{name: "single line no newline", text: "abc", expected: 1},
		{name: "single line with newline", text: "abc\n", expected: 1},
		{name: "two lines", text: "a\nb", expected: 2},
		{name: "two lines trailing newline", text: "a\nb\n", expected: 2},
		{name: "blank lines count", text: "\n\n\n", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountLines(tt.text))
		})
	}
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "1kB", HumanSize(1000))
	assert.Equal(t, "0B", HumanSize(0))
}
