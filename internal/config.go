package internal

import (
	"strconv"
	"sync/atomic"
)

var (
	quietMode   atomic.Bool // Indicates whether quiet mode is enabled.
	verboseMode atomic.Bool // Indicates whether verbose (debug level) logging is enabled.
)

// Seeds the quiet and verbose defaults from linker flags.
//
// A release built with -X ...internal.rawQuiet=true logs warnings only unless
// --verbose is given. Unparseable values are ignored.
func init() {
	if v, err := strconv.ParseBool(rawQuiet); err == nil {
		quietMode.Store(v)
	}
	if v, err := strconv.ParseBool(rawVerbose); err == nil {
		verboseMode.Store(v)
	}
}

// Returns true if quiet mode is enabled.
func IsQuiet() bool {
	return quietMode.Load()
}

// Returns true if verbose logging is enabled.
func IsVerbose() bool {
	return verboseMode.Load()
}
