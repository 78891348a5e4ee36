// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared
// without style interference.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// FindLine returns the first line containing substr, or an empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// Lines splits rendered output into unstyled lines.
func Lines(output string) []string {
	return strings.Split(StripANSI(output), "\n")
}
