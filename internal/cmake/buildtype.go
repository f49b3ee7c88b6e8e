package cmake

import "github.com/samber/lo"

// CMake configuration names.
const (
	ConfigDebug   = "Debug"
	ConfigRelease = "Release"
)

// Configurations in the order they are built.
var allConfigs = []string{ConfigDebug, ConfigRelease}

// Which configurations to generate and build.
type BuildType int

const (
	Debug BuildType = iota + 1
	Release
	Both
)

// Returns the lower-case name of the build type.
func (b BuildType) String() string {
	switch b {
	case Debug:
		return "debug"
	case Release:
		return "release"
	case Both:
		return "both"
	default:
		return "(invalid)"
	}
}

// Returns the CMake configurations selected by the build type, Debug first.
//
// An invalid build type selects nothing.
func (b BuildType) Configs() []string {
	return lo.Filter(allConfigs, func(config string, _ int) bool {
		return b.Includes(config)
	})
}

// Whether the build type selects the given CMake configuration.
func (b BuildType) Includes(config string) bool {
	switch config {
	case ConfigDebug:
		return b == Debug || b == Both
	case ConfigRelease:
		return b == Release || b == Both
	default:
		return false
	}
}
