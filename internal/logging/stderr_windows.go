//go:build windows

package logging

import "github.com/charmbracelet/log"

// CaptureStderr is a no-op on Windows; its audio backend does not write to fd 2.
func CaptureStderr(*log.Logger) (func(), error) {
	return func() {}, nil
}
