//go:build windows

package console

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// Enables ANSI escape sequence processing on the standard output and error
// consoles.
//
// Streams that are not attached to a Windows console are skipped. Cygwin and
// MSYS terminals interpret escape sequences on their own.
func EnableVirtualTerminal() error {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if !isatty.IsTerminal(f.Fd()) {
			continue
		}
		if err := enableVirtualTerminal(windows.Handle(f.Fd())); err != nil {
			return errors.Wrapf(err, "failed to enable virtual terminal on %s", f.Name())
		}
	}
	return nil
}

// Adds ENABLE_VIRTUAL_TERMINAL_PROCESSING to a console handle's mode.
func enableVirtualTerminal(handle windows.Handle) error {
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return err
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return nil
	}
	return windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
