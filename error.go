package tscycle

import (
	"errors"
	"fmt"
	"os/exec"
)

// RunError reports a pipeline step whose external tool failed. ExitCode is the
// tool's exit status when it started and exited non-zero, and -1 when the tool
// could not be started at all (the command-not-found case). The CLI propagates
// ExitCode to the shell unchanged.
type RunError struct {
	Step     string
	Tool     string
	ExitCode int
	err      error
}

func (e *RunError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s: %s exited with status %d", e.Step, e.Tool, e.ExitCode)
	}
	return fmt.Sprintf("%s: %s: %v", e.Step, e.Tool, e.err)
}

func (e *RunError) Unwrap() error {
	return e.err
}

func newRunError(step string, tool string, err error) error {
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &RunError{Step: step, Tool: tool, ExitCode: code, err: err}
}
