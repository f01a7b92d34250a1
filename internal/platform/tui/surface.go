package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// ErrNoSurface is returned when there is no terminal to draw on.
var ErrNoSurface = errors.New("tui: no render surface")

// Surface returns the size of the terminal behind fd. It fails with
// ErrNoSurface when fd is not a terminal or reports a zero size.
func Surface(fd int) (width, height int, err error) {
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("%w: output is not a terminal", ErrNoSurface)
	}
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrNoSurface, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: terminal reports %dx%d", ErrNoSurface, width, height)
	}
	return width, height, nil
}

// FileLogger opens a logger that appends to path, creating parent
// directories. The play command owns the terminal, so it cannot log there.
// An empty path discards all output.
func FileLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("tui: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("tui: cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("tui: cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	return logger, f, nil
}
