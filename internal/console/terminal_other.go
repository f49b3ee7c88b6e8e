//go:build !windows

package console

// Enables ANSI escape sequence processing. Terminals outside Windows
// interpret escape sequences natively, so this does nothing.
func EnableVirtualTerminal() error {
	return nil
}
