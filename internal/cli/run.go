package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ggpo4all/ggpoinit/internal/build"
	"github.com/ggpo4all/ggpoinit/internal/cmake"
	"github.com/ggpo4all/ggpoinit/internal/console"
	"github.com/ggpo4all/ggpoinit/internal/platform"
	"github.com/ggpo4all/ggpoinit/internal/runner"
	"github.com/google/shlex"
	"github.com/pkg/errors"
)

// Executes the build and prints the final status line.
//
// Build failures are reported on the console and do not produce an error, so
// the process exits normally. Only an unsupported host platform is returned
// as an error.
func (c *RootCmd) Run(ctx context.Context, kongCtx *kong.Context, out *console.Printer) error {
	err := c.build(ctx, out, commandLineFlags(kongCtx))

	if errors.Is(err, platform.ErrUnsupportedPlatform) {
		return err
	}

	if err != nil {
		slog.Debug("build failed", "error", err)
		out.Error("execution of full build process was unsuccessful")
		return nil
	}

	out.Done()
	return nil
}

// Validates the flags and hands the request to the build driver.
func (c *RootCmd) build(ctx context.Context, out *console.Printer, given map[string]bool) error {
	buildType, ok := c.buildType(given)
	if !ok {
		out.Error("No valid build type input detected, use -h or --help if you're unfamiliar")
		return ErrMissingBuildType
	}

	if c.Generator == "" {
		out.Error("No generator selected, use -G to pick one")
		return ErrMissingGenerator
	}

	host, err := platform.Detect()
	if err != nil {
		return err
	}

	args, err := shlex.Split(c.CMakeArgs)
	if err != nil {
		out.Error("Invalid --cmake-args %q: %v", c.CMakeArgs, err)
		return errors.Wrap(ErrInvalidArguments, err.Error())
	}

	env, err := runner.ParseEnv(c.Env)
	if err != nil {
		out.Error("Invalid --env: %v", err)
		return errors.Wrap(ErrInvalidArguments, err.Error())
	}

	res, err := build.Run(ctx, c.executor(env, out), out, build.Options{
		Generator: strings.ToLower(c.Generator),
		BuildType: buildType,
		Platform:  host,
		Source:    c.Source,
		Binary:    c.Binary,
		Program:   c.CMake,
		Args:      args,
	})
	if err != nil {
		return err
	}

	slog.Debug("build finished", "generator", res.Generator.Name, "configs", res.Configs)
	return nil
}

// Returns the selected build type.
//
// Build type flags in given, the flags named on the command line, replace
// those from configuration files. When several are set, debug wins over
// release, and release wins over both.
func (c *RootCmd) buildType(given map[string]bool) (cmake.BuildType, bool) {
	debug, release, both := c.Debug, c.Release, c.Both
	if given["debug"] || given["release"] || given["both"] {
		debug = debug && given["debug"]
		release = release && given["release"]
		both = both && given["both"]
	}

	switch {
	case debug:
		return cmake.Debug, true
	case release:
		return cmake.Release, true
	case both:
		return cmake.Both, true
	default:
		return 0, false
	}
}

// Returns the names of the flags parsed from the command line, excluding
// values filled in from configuration files.
func commandLineFlags(kongCtx *kong.Context) map[string]bool {
	given := map[string]bool{}
	for _, p := range kongCtx.Path {
		if p.Flag != nil && !p.Resolved {
			given[p.Flag.Name] = true
		}
	}
	return given
}

// Returns the executor for CMake commands.
func (c *RootCmd) executor(env map[string]string, out *console.Printer) runner.Executor {
	if c.DryRun {
		return &runner.DryRun{Out: out.Writer()}
	}
	return &runner.Shell{Env: env}
}
