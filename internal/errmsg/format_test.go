//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaybackStart,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpPlaybackStart,
			err:      errors.New("stream unavailable"),
			expected: "Failed to start playback: stream unavailable",
		},
		{
			name:     "login operation",
			op:       OpLogin,
			err:      errors.New("wrong password"),
			expected: "Failed to log in: wrong password",
		},
		{
			name:     "wrapped error keeps chain text",
			op:       OpPlaylistLoad,
			err:      fmt.Errorf("playlist 7: %w", errors.New("api code 404")),
			expected: "Failed to load playlist: playlist 7: api code 404",
		},
		{
			name:     "queue save operation",
			op:       OpQueueSave,
			err:      errors.New("disk full"),
			expected: "Failed to save queue: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSearch,
			context:  "daft punk",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpSearch,
			context:  "daft punk",
			err:      errors.New("timeout"),
			expected: "Failed to search 'daft punk': timeout",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpArtworkLoad,
			context:  "",
			err:      errors.New("bad jpeg"),
			expected: "Failed to load album art: bad jpeg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", result, tt.expected)
			}
		})
	}
}
