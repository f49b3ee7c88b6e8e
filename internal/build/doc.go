// Package build drives CMake through project generation and compilation.
//
// A build runs in two phases. The configure phase validates the requested
// generator and build type, ensures the platform build directory exists and
// runs "cmake -S <source> -B <binary> -G <generator>". Single-config
// generators get the build type baked in through CMAKE_BUILD_TYPE, which is
// why they cannot build Debug and Release from one tree.
//
// The build phase runs "cmake --build <binary>" once for single-config
// generators, and once per requested configuration (Debug, then Release)
// with --config for multi-config generators. The first failing command stops
// the build.
//
// Progress and failures are reported as colourized status lines. A failing
// CMake invocation has its captured output printed before the error is
// returned.
//
// Example usage:
//
//	result, err := build.Run(ctx, &runner.Shell{}, console.Stdout(), build.Options{
//	    Generator: "vs2022",
//	    BuildType: cmake.Both,
//	    Platform:  platform.Windows,
//	})
//	if err != nil {
//	    return err
//	}
package build
