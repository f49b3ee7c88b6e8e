// Parses flags, configures logging and runs the build for ggpoinit.
//
// The command accepts the following flags:
//
//	--debug            Build the Debug configuration.
//	--release          Build the Release configuration.
//	--both             Build Debug and Release (multi-config generators only).
//	-G, --generator    Project file generator key (e.g., vs2022, ninja).
//	-S, --source       CMake source directory.
//	-B, --binary       CMake binary directory.
//	--cmake            CMake executable.
//	--cmake-args=ARGS  Extra configure arguments, split with shell quoting.
//	-e, --env          Environment variable for CMake (KEY=VALUE), repeatable.
//	-n, --dry-run      Print the CMake commands instead of running them.
//	-q, --quiet        Suppress informational logging.
//	-v, --verbose      Enable debug logging.
//	--version          Show version information.
//
// Defaults for any flag can be set in the user configuration file or in a
// .ggpoinit.json file in the working directory, keyed by flag name. A build
// type flag on the command line replaces any build type from those files. An
// unreadable configuration file or a malformed command line is returned as an
// error. After parsing, the global logger is reconfigured to reflect the
// final level.
package cli
