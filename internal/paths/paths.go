package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	programName = "ggpoinit"

	// Root directory for CMake output, relative to the working directory.
	BuildRoot = "build"

	// Per-project configuration file, looked up in the working directory.
	ProjectConfigFile = "." + programName + ".json"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755
)

// Directory reserved for a platform's build output.
//
//	build/win, build/osx, build/linux
func PlatformBuildDir(platform string) string {
	return filepath.Join(BuildRoot, platform)
}

// Path to the user configuration file.
//
//	Linux:   $XDG_CONFIG_HOME/ggpoinit/config.json
//	macOS:   ~/Library/Application Support/ggpoinit/config.json
//	Windows: %LOCALAPPDATA%\ggpoinit\config.json
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, programName, "config.json")
}

// Configuration files consulted for flag defaults: the user file, then the
// project file.
func ConfigFiles() []string {
	return []string{ConfigFile(), ProjectConfigFile}
}
