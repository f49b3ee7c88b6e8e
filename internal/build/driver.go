package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ggpo4all/ggpoinit/internal/cmake"
	"github.com/ggpo4all/ggpoinit/internal/console"
	"github.com/ggpo4all/ggpoinit/internal/paths"
	"github.com/ggpo4all/ggpoinit/internal/runner"
	"github.com/pkg/errors"
)

// Holds the state shared by the configure and build phases.
type driver struct {
	exec runner.Executor  // Runs CMake.
	out  *console.Printer // Receives status lines.
	opts Options          // Build options with defaults applied.
	gen  cmake.Generator  // Generator resolved during configure.
}

// Creates a new [driver] from the given options.
func newDriver(exec runner.Executor, out *console.Printer, opts Options) *driver {
	return &driver{
		exec: exec,
		out:  out,
		opts: opts,
	}
}

// Validates the request and generates the CMake project.
//
// The platform build directory is created only after the generator and build
// type are accepted. CMake itself is pointed at the binary directory, not at
// the platform directory.
func (d *driver) configure(ctx context.Context) error {
	gen, ok := cmake.Lookup(d.opts.Generator)
	if !ok {
		d.out.Error("Invalid Generator Selected, PLEASE PICK A VALID GENERATOR")
		return errors.Wrapf(ErrInvalidGenerator, "%q", d.opts.Generator)
	}
	d.gen = gen

	if len(d.opts.BuildType.Configs()) == 0 {
		d.out.Error("Invalid build type selected: %s", d.opts.BuildType)
		return errors.Wrapf(ErrInvalidBuildType, "%d", int(d.opts.BuildType))
	}

	if !gen.MultiConfig && d.opts.BuildType == cmake.Both {
		d.out.Error("Invalid build type selected: YOU CANNOT USE BOTH WHEN GENERATING FOR A SINGLE CONFIG GENERATOR")
		return errors.Wrapf(ErrBothSingleConfig, "%s", gen.Name)
	}

	dir := paths.PlatformBuildDir(d.opts.Platform.String())
	if err := os.MkdirAll(dir, paths.DefaultDirMode); err != nil {
		d.out.Error("Could not create build directory %s", dir)
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	slog.Debug("build directory ready", "path", dir)

	args := cmake.ConfigureArgs(d.opts.Source, d.opts.Binary, gen, d.opts.BuildType, d.opts.Args)

	d.out.Info("Running CMake project generation for %s...", gen.Name)

	if err := d.exec.Exec(ctx, d.opts.Program, args...); err != nil {
		d.out.Error("CMake project generation failed!")
		d.report(err)
		return fmt.Errorf("%w: %w", ErrConfigure, err)
	}

	d.out.Success("CMake project generation completed!")
	return nil
}

// Builds the generated project.
func (d *driver) build(ctx context.Context) (*Result, error) {
	if !d.gen.MultiConfig {
		return d.buildSingleConfig(ctx)
	}
	return d.buildMultiConfig(ctx)
}

// Runs the one build a single-config tree supports.
func (d *driver) buildSingleConfig(ctx context.Context) (*Result, error) {
	name := d.opts.BuildType.String()

	d.out.Info("Running CMake single config build for %s...", name)

	if err := d.exec.Exec(ctx, d.opts.Program, cmake.BuildArgs(d.opts.Binary, "")...); err != nil {
		d.out.Error("CMake single config %s build process failed!", name)
		d.report(err)
		return nil, fmt.Errorf("%w: %s: %w", ErrCompile, name, err)
	}

	d.out.Success("%s build completed!", name)

	return &Result{Generator: d.gen, Configs: d.opts.BuildType.Configs()}, nil
}

// Builds each requested configuration in order, stopping at the first
// failure.
func (d *driver) buildMultiConfig(ctx context.Context) (*Result, error) {
	result := &Result{Generator: d.gen}

	for _, config := range d.opts.BuildType.Configs() {
		d.out.Info("Running CMake build for %s...", config)

		if err := d.exec.Exec(ctx, d.opts.Program, cmake.BuildArgs(d.opts.Binary, config)...); err != nil {
			d.out.Error("CMake %s build process failed!", strings.ToLower(config))
			d.report(err)
			return nil, fmt.Errorf("%w: %s: %w", ErrCompile, config, err)
		}

		d.out.Success("%s build completed!", config)
		result.Configs = append(result.Configs, config)
	}

	d.out.Info("Your CMake project should be good to go!")

	return result, nil
}

// Prints the captured output of a failed command.
func (d *driver) report(err error) {
	var exitErr *runner.ExitError
	if !errors.As(err, &exitErr) {
		d.out.Detail(err.Error())
		return
	}

	if exitErr.ExitCode < 0 {
		d.out.Detail(exitErr.Error())
	}
	d.out.Detail(exitErr.Stdout)
	d.out.Detail(exitErr.Stderr)
}
