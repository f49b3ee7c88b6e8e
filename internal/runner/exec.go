package runner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/magefile/mage/sh"
	"github.com/pkg/errors"
)

// Runs an external command to completion.
type Executor interface {

	// Runs name with args, blocking until the process exits.
	//
	// Returns nil on a zero exit code. Returns an [*ExitError] when the
	// process exits non-zero or cannot be started.
	Exec(ctx context.Context, name string, args ...string) error
}

// Failure of a single command invocation.
type ExitError struct {
	Args     []string // Program followed by its arguments.
	ExitCode int      // Exit code of the process, or -1 if it did not start.
	Stdout   string   // Captured standard output.
	Stderr   string   // Captured standard error.
	err      error    // Underlying error reported by the process launcher.
}

// Describes the failed command and its exit code.
func (e *ExitError) Error() string {
	command := "command"
	if len(e.Args) > 0 {
		command = Format(e.Args[0], e.Args[1:]...)
	}
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s: %v", command, e.err)
	}
	return fmt.Sprintf("%s failed with exit code %d", command, e.ExitCode)
}

// Exposes [ErrCommandFailed] and the underlying launcher error.
func (e *ExitError) Unwrap() []error {
	if e.err == nil {
		return []error{ErrCommandFailed}
	}
	return []error{ErrCommandFailed, e.err}
}

// Runs commands as local subprocesses.
//
// The process inherits the environment of the current process with Env
// layered on top. Arguments are passed to the program exactly as given.
// Standard output and error are captured in memory and only surface through
// [ExitError].
type Shell struct {
	Env map[string]string // Environment overrides for every command.
}

// Runs name with args and captures its output.
//
// A context that is already done prevents the command from starting. A
// running command is killed when the context is done.
func (s *Shell) Exec(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "not running %s", name)
	}

	argv := append([]string{name}, args...)
	slog.Debug("exec", "command", Format(name, args...))

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = s.environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		slog.Debug("exec finished", "command", name, "exit", 0)
		return nil
	}

	exitCode := -1
	if sh.CmdRan(err) {
		exitCode = sh.ExitStatus(err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = errors.Wrap(ctxErr, err.Error())
	}

	slog.Debug("exec failed", "command", name, "exit", exitCode, "error", err)

	return &ExitError{
		Args:     argv,
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		err:      err,
	}
}

// Returns the process environment with Env applied.
func (s *Shell) environ() []string {
	env := os.Environ()
	for k, v := range s.Env {
		env = append(env, k+"="+v)
	}
	return env
}

// Formats a command line for display, quoting arguments that contain
// whitespace or are empty.
func Format(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	for _, part := range append([]string{name}, args...) {
		if part == "" || strings.ContainsAny(part, " \t\n\"") {
			part = fmt.Sprintf("%q", part)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}
