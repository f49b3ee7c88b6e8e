// Package console writes colourized status text to the terminal.
//
// Colours are selected by name from a fixed table of the eight standard ANSI
// foreground colours and their bright variants. Unknown names fall back to
// the plain text and print a yellow warning. A [Printer] wraps an
// [io.Writer] and formats the status lines used throughout the build:
//
//	[INFO]: ...      green
//	[SUCCESS]: ...   cyan
//	[ERROR]: ...     red
//	[Warning]: ...   yellow
//
// Windows consoles do not interpret ANSI escape sequences by default.
// [EnableVirtualTerminal] must be called before any colourized output is
// written.
//
// Example usage:
//
//	if err := console.EnableVirtualTerminal(); err != nil {
//	    slog.Warn("ANSI colours unavailable", "error", err)
//	}
//
//	out := console.NewPrinter(os.Stdout)
//	out.Info("Running CMake project generation for %s...", "Ninja")
//	fmt.Fprintln(os.Stdout, out.Colourize("done!", console.Magenta))
package console
