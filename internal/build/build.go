package build

import (
	"context"
	"log/slog"

	"github.com/ggpo4all/ggpoinit/internal/cmake"
	"github.com/ggpo4all/ggpoinit/internal/console"
	"github.com/ggpo4all/ggpoinit/internal/paths"
	"github.com/ggpo4all/ggpoinit/internal/platform"
	"github.com/ggpo4all/ggpoinit/internal/runner"
)

// Default CMake executable.
const DefaultProgram = "cmake"

// Default CMake source directory.
const DefaultSource = "."

// Controls a build.
type Options struct {
	Generator string            // Generator key (e.g., "vs2022", "ninja").
	BuildType cmake.BuildType   // Configurations to build.
	Platform  platform.Platform // Host platform, names the platform build directory.
	Source    string            // CMake source directory. Defaults to [DefaultSource].
	Binary    string            // CMake binary directory. Defaults to [paths.BuildRoot].
	Program   string            // CMake executable. Defaults to [DefaultProgram].
	Args      []string          // Extra arguments appended to the configure command.
}

// Returned after a successful build.
type Result struct {
	Generator cmake.Generator // Generator the project was generated with.
	Configs   []string        // Configurations built, in build order.
}

// Generates the CMake project and builds the requested configurations.
//
// Failures are reported to out as they happen, then returned. Nothing is
// created or executed when the generator or build type is rejected.
func Run(ctx context.Context, exec runner.Executor, out *console.Printer, opts Options) (*Result, error) {
	opts = withDefaults(opts)

	slog.Debug("starting build",
		"generator", opts.Generator,
		"type", opts.BuildType.String(),
		"platform", opts.Platform.String(),
		"source", opts.Source,
		"binary", opts.Binary,
	)

	d := newDriver(exec, out, opts)

	if err := d.configure(ctx); err != nil {
		return nil, err
	}

	return d.build(ctx)
}

// Fills unset options with their defaults.
func withDefaults(opts Options) Options {
	if opts.Source == "" {
		opts.Source = DefaultSource
	}
	if opts.Binary == "" {
		opts.Binary = paths.BuildRoot
	}
	if opts.Program == "" {
		opts.Program = DefaultProgram
	}
	return opts
}
