// Package runner executes external commands for the build driver.
//
// An [Executor] runs one command to completion and reports failure as an
// error. When the process exits with a non-zero code, or cannot be started,
// the error is an [*ExitError] carrying the command line, the exit code and
// the captured standard output and error streams, so that every call site
// handles failure the same way.
//
// [Shell] runs commands as local subprocesses. [DryRun] prints the command
// lines instead of running them.
//
// Example usage:
//
//	var exec runner.Executor = &runner.Shell{Env: map[string]string{"CC": "clang"}}
//
//	err := exec.Exec(ctx, "cmake", "--build", "build")
//	var exitErr *runner.ExitError
//	if errors.As(err, &exitErr) {
//	    fmt.Println(exitErr.ExitCode, exitErr.Stderr)
//	}
package runner
