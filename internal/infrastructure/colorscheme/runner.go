package colorscheme

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// commandRunner runs an external program and returns its stdout.
// A program that ran but exited non-zero is reported as *exitStatusError.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// exitStatusError reports a command that ran but exited with a non-zero status.
type exitStatusError struct {
	name   string
	code   int
	stderr string
}

func (e *exitStatusError) Error() string {
	if e.stderr == "" {
		return fmt.Sprintf("%s exited with status %d", e.name, e.code)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.name, e.code, e.stderr)
}

// execRunner is the commandRunner backed by os/exec.
func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out, &exitStatusError{
				name:   name,
				code:   exitErr.ExitCode(),
				stderr: strings.TrimSpace(string(exitErr.Stderr)),
			}
		}
		return nil, err
	}
	return out, nil
}
