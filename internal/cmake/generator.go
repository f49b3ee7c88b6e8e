package cmake

import (
	"sort"

	"github.com/samber/lo"
)

// A CMake generator selectable by a short key.
type Generator struct {
	Key         string // Key accepted by -G on the ggpoinit command line.
	Name        string // Generator name passed to cmake -G.
	MultiConfig bool   // Whether the configuration is chosen at build time.
	Description string // One-line description for help output.
}

// Supported generators by key.
var generators = map[string]Generator{
	"vs2022": {Key: "vs2022", Name: "Visual Studio 17 2022", MultiConfig: true, Description: "Generates a solution for Visual Studio 2022"},
	"vs2019": {Key: "vs2019", Name: "Visual Studio 16 2019", MultiConfig: true, Description: "Generates a solution for Visual Studio 2019"},
	"vs2017": {Key: "vs2017", Name: "Visual Studio 15 2017", MultiConfig: true, Description: "Generates a solution for Visual Studio 2017"},
	"vs2015": {Key: "vs2015", Name: "Visual Studio 14 2015", MultiConfig: true, Description: "Generates a solution for Visual Studio 2015"},

	"xcode": {Key: "xcode", Name: "Xcode", MultiConfig: true, Description: "Generates project files for Xcode"},

	"ninja":    {Key: "ninja", Name: "Ninja", Description: "Generates project files using Ninja"},
	"ninja-mc": {Key: "ninja-mc", Name: "Ninja Multi-Config", MultiConfig: true, Description: "For Ninja Multi-Config"},

	"unix":         {Key: "unix", Name: "Unix Makefiles", Description: "For Unix Makefiles"},
	"unix-cb":      {Key: "unix-cb", Name: "CodeBlocks - Unix Makefiles", Description: "Generates Unix Makefiles for CodeBlocks"},
	"unix-eclipse": {Key: "unix-eclipse", Name: "Eclipse CDT4 - Unix Makefiles", Description: "Generates Unix Makefiles for Eclipse CDT"},

	"mingw":     {Key: "mingw", Name: "MinGW Makefiles", Description: "Generates MinGW Makefiles"},
	"msys":      {Key: "msys", Name: "MSYS Makefiles", Description: "Generates MSYS Makefiles"},
	"nmake":     {Key: "nmake", Name: "NMake Makefiles", Description: "Generates NMake Makefiles"},
	"nmake-jom": {Key: "nmake-jom", Name: "NMake Makefiles JOM", Description: "Generates JOM Makefiles"},
}

// Returns the generator registered under key.
//
// Keys are matched exactly; callers normalise case before the lookup.
func Lookup(key string) (Generator, bool) {
	gen, ok := generators[key]
	return gen, ok
}

// Returns all generator keys in sorted order.
func Keys() []string {
	keys := lo.Keys(generators)
	sort.Strings(keys)
	return keys
}

// Returns all generators sorted by key.
func Generators() []Generator {
	return lo.Map(Keys(), func(key string, _ int) Generator {
		return generators[key]
	})
}
