// Package executil wraps some functions in the exec package to ease testing
// and the one subprocess use case sysfetch has: run a program and capture its
// trimmed stdout.
package executil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CommandContext is initialized to exec.CommandContext. It is intended to be
// overridden in tests.
var CommandContext = exec.CommandContext

func SetCommand(fn func(context.Context, string, ...string) *exec.Cmd) {
	CommandContext = fn
}

func ResetCommand() { CommandContext = exec.CommandContext }

// Runner runs an external program and returns its trimmed stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, name string, args ...string) (string, error)

func (fn RunnerFunc) Run(ctx context.Context, name string, args ...string) (string, error) {
	return fn(ctx, name, args...)
}

// Error is returned when a program could not be launched or did not finish
// before its deadline.
type Error struct {
	Args []string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("exec %q: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Exec is the Runner used outside of tests.
type Exec struct {
	// Timeout bounds each command. Zero means no timeout.
	Timeout time.Duration
}

// Run starts name with args and waits for it. A non-zero exit status is not an
// error: whatever the program wrote to stdout is returned.
func (e Exec) Run(ctx context.Context, name string, args ...string) (string, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	stdout := &bytes.Buffer{}
	cmd := CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	argv := append([]string{name}, args...)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", &Error{Args: argv, Err: ctxErr}
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", &Error{Args: argv, Err: err}
		}
	}
	return strings.TrimSpace(stdout.String()), nil
}
