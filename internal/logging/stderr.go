//go:build !windows

package logging

import (
	"bufio"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"
)

// CaptureStderr redirects file descriptor 2 into the logger so that C audio
// libraries (ALSA) cannot write over the TUI. Must be called before the
// speaker is initialized. The returned function restores the original stderr.
func CaptureStderr(l *log.Logger) (restore func(), err error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	logger := Component(l, "stderr")
	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				logger.Warn(line)
			}
		}
	}()

	return func() {
		_ = unix.Dup2(orig, int(os.Stderr.Fd()))
		_ = unix.Close(orig)
		w.Close()
		<-done
		r.Close()
	}, nil
}
