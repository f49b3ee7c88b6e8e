// Package platform identifies the host operating system.
//
// Only Windows, macOS and Linux are supported. Each maps to the short token
// used to name its build directory.
package platform

import (
	"runtime"

	"github.com/pkg/errors"
)

// Short identifier for a supported host operating system.
type Platform string

const (
	Windows Platform = "win"
	MacOS   Platform = "osx"
	Linux   Platform = "linux"
)

var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Returns the platform identifier as a string.
func (p Platform) String() string {
	return string(p)
}

// Returns the platform of the running process.
//
// Fails with [ErrUnsupportedPlatform] on any operating system other than
// Windows, macOS or Linux.
func Detect() (Platform, error) {
	return fromGOOS(runtime.GOOS)
}

func fromGOOS(goos string) (Platform, error) {
	switch goos {
	case "windows":
		return Windows, nil
	case "darwin":
		return MacOS, nil
	case "linux":
		return Linux, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedPlatform, "%s", goos)
	}
}
