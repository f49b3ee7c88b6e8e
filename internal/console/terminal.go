package console

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Whether the given file is an interactive terminal, including Cygwin and
// MSYS pseudo terminals.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
