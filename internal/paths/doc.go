// Provides the filesystem locations used by ggpoinit.
//
// Build output lives under a fixed "build" root relative to the working
// directory, with one subdirectory per host platform. The user configuration
// file follows XDG conventions on Linux and platform-native conventions on
// macOS and Windows.
package paths
