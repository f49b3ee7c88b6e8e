// Package cmake describes the CMake generators ggpoinit supports and
// assembles CMake command lines.
//
// Each generator has a short key used on the command line (for example
// "vs2022" or "ninja") and the display name CMake expects after -G.
// Multi-config generators (Visual Studio, Xcode, Ninja Multi-Config) choose
// the configuration at build time with --config. Single-config generators
// bake it into the tree at configure time through CMAKE_BUILD_TYPE, so a
// single tree cannot hold both Debug and Release.
//
// Example usage:
//
//	gen, ok := cmake.Lookup("ninja")
//	if !ok {
//	    return ErrInvalidGenerator
//	}
//
//	configure := cmake.ConfigureArgs(".", "build", gen, cmake.Release, nil)
//	// -S . -B build -G Ninja -DCMAKE_BUILD_TYPE=Release
//
//	build := cmake.BuildArgs("build", "")
//	// --build build
package cmake
