package internal

import (
	"fmt"
	"runtime"
	"strings"
)

const (

	// Program name, used for the binary, config directory and log group.
	Name = "ggpoinit"

	// String to indicate a local (non-pipeline) build
	defaultLocalBuild = "(local)"

	// Main branch name used in version strings
	mainBranch = "main"
)

var (
	version   = "" // Version number (e.g., "1.2.3")
	stage     = "" // Development stage or git branch (e.g., "staging", "main")
	gitCommit = "" // Git commit hash (e.g., "a1b2c3d4")

	rawQuiet   = "false" // Whether to enable quiet mode
	rawVerbose = "false" // Whether to enable verbose logging
)

// Returns a detailed version string.
//
// Local builds, where any of version, stage or git commit is unset, report
// "(local)". Otherwise the string is formatted as
// "<version>+<stage> <git-commit> [<os>/<arch>]", with a leading "v" dropped
// from the version and the stage omitted on the main branch.
func VersionString() string {
	v := strings.TrimSpace(version)
	s := strings.TrimSpace(stage)
	c := strings.TrimSpace(gitCommit)

	if v == "" || s == "" || c == "" {
		return defaultLocalBuild
	}

	v = strings.TrimPrefix(strings.ToLower(v), "v")

	if s = strings.ToLower(s); s == mainBranch {
		s = ""
	} else {
		s = "+" + s
	}

	return fmt.Sprintf("%s%s %s [%s/%s]", v, s, c, runtime.GOOS, runtime.GOARCH)
}
