package tscycle

import (
	"context"
	"io"
	"os"
	"os/exec"
)

//go:generate mockgen -source=$GOFILE -package mock_tscycle -destination=test/mock/$GOFILE

// Command is one external tool invocation. Args are passed verbatim to the
// child process, so paths with embedded whitespace need no extra quoting.
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string // nil inherits the parent environment
}

// Runner runs an external command to completion. The pipeline blocks on every
// call; for the editor step this includes an indefinite wait for the user.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands via os/exec with inherited stdio, so interactive
// tools like the Linguist editor take over the terminal until they exit.
// Errors come back raw (*exec.ExitError or a start failure); the pipeline
// wraps them into RunError.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = c.Env
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	return cmd.Run()
}
