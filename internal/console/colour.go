package console

import "strings"

// Colour names accepted by [Printer.Colourize]. Lookup is case-insensitive.
const (
	Black   = "black"
	Red     = "red"
	Green   = "green"
	Yellow  = "yellow"
	Blue    = "blue"
	Magenta = "magenta"
	Cyan    = "cyan"
	White   = "white"

	BrightBlack   = "bright black"
	BrightRed     = "bright red"
	BrightGreen   = "bright green"
	BrightYellow  = "bright yellow"
	BrightBlue    = "bright blue"
	BrightMagenta = "bright magenta"
	BrightCyan    = "bright cyan"
	BrightWhite   = "bright white"
)

// Escape sequence that restores the default terminal attributes.
const Reset = "\033[0m"

// Maps colour names to ANSI foreground escape sequences.
var colours = map[string]string{
	Black:   "\033[30m",
	Red:     "\033[31m",
	Green:   "\033[32m",
	Yellow:  "\033[33m",
	Blue:    "\033[34m",
	Magenta: "\033[35m",
	Cyan:    "\033[36m",
	White:   "\033[37m",

	BrightBlack:   "\033[90m",
	BrightRed:     "\033[91m",
	BrightGreen:   "\033[92m",
	BrightYellow:  "\033[93m",
	BrightBlue:    "\033[94m",
	BrightMagenta: "\033[95m",
	BrightCyan:    "\033[96m",
	BrightWhite:   "\033[97m",
}

// Returns the escape sequence for a colour name.
//
// The name is matched case-insensitively. The second return value reports
// whether the name is known.
func Code(colour string) (string, bool) {
	code, ok := colours[strings.ToLower(colour)]
	return code, ok
}
