// Package cli implements the work behind the graft commands: loading
// recipes, moving tables in and out of the process, and rendering the
// fitted plan for humans.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/graft/internal/logging"
	"github.com/aretw0/graft/pkg/domain"
)

// NewLogger configures the application logger from the --log-level flag.
// Logs go to Stderr (to separate from table output on Stdout).
func NewLogger(level string) (*slog.Logger, error) {
	lv, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lv), nil
}

// LogHooks returns lifecycle hooks that trace fits and transforms at
// debug level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnFit: func(e *domain.FitEvent) {
			if e.Err != nil {
				logger.Debug("Fit (Error)", "backend", e.Backend, "err", e.Err)
				return
			}
			logger.Debug("Fit",
				"backend", e.Backend,
				"rows", e.Rows,
				"selected", e.Selected,
				"outputs", e.Outputs,
				"duration", e.Duration)
		},
		OnTransform: func(e *domain.TransformEvent) {
			if e.Err != nil {
				logger.Debug("Transform (Error)", "backend", e.Backend, "err", e.Err)
				return
			}
			logger.Debug("Transform",
				"backend", e.Backend,
				"rows", e.Rows,
				"duration", e.Duration)
		},
	}
}

// openInput returns the reader for a path, with "-" meaning Stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" || path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// openOutput returns the writer for a path, with "-" meaning Stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" || path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
