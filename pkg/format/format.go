// Package format holds small text and size formatting helpers.
package format

import (
	"strings"

	gounits "github.com/docker/go-units"
)

// HumanSize renders a byte count in human-readable decimal units.
func HumanSize(size int64) string {
	return gounits.HumanSize(float64(size))
}

// CountLines counts physical lines: a trailing newline does not open an
// extra line, and an empty file has zero lines.
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
