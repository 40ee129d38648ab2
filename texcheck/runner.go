package texcheck

import (
	"context"
	"errors"
	"os/exec"

	"go.trai.ch/zerr"
)

// Runner invokes the external checker process and captures its stdout.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes the checker at path with source as its sole argument
	// and returns the raw stdout bytes. It returns an error only when the
	// process cannot be launched.
	Run(ctx context.Context, path, source string) ([]byte, error)
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct {
	logger Logger
}

// NewExecRunner creates a Runner that launches the checker binary
// directly. A nil logger disables logging.
func NewExecRunner(logger Logger) *ExecRunner {
	if logger == nil {
		logger = nopLogger{}
	}
	return &ExecRunner{logger: logger}
}

// Run executes `<path> <source>` and returns whatever the process wrote
// to stdout. Exit status and stderr are not part of the checker contract;
// the classification byte on stdout is authoritative.
func (r *ExecRunner) Run(ctx context.Context, path, source string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, path, source) //nolint:gosec // checker path is operator provided
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			wrapped := zerr.With(zerr.Wrap(err, "failed to launch formula checker"), "path", path)
			r.logger.Error(wrapped)
			return nil, wrapped
		}
	}
	return output, nil
}
