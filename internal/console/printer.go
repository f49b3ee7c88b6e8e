package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	stdoutOnce    sync.Once
	stdoutPrinter *Printer
)

// Writes colourized status lines to an output stream.
type Printer struct {
	out io.Writer // Destination for status lines and warnings.
}

// Creates a [Printer] that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: w}
}

// Returns the shared [Printer] for standard output.
func Stdout() *Printer {
	stdoutOnce.Do(func() {
		stdoutPrinter = NewPrinter(os.Stdout)
	})
	return stdoutPrinter
}

// Wraps text in the escape sequence for colour, followed by a reset.
//
// The colour name is matched case-insensitively. If it is not known, a
// yellow warning is written to the printer's output and text is returned
// unchanged.
func (p *Printer) Colourize(text, colour string) string {
	code, ok := Code(colour)
	if !ok {
		p.Warn("no valid colour %q given to Colourize, returned original text", colour)
		return text
	}
	return code + text + Reset
}

// Writes a colourized line.
func (p *Printer) Println(colour, text string) {
	fmt.Fprintln(p.out, p.Colourize(text, colour))
}

// Writes a green "[INFO]" line.
func (p *Printer) Info(format string, args ...any) {
	p.Println(Green, "[INFO]: "+fmt.Sprintf(format, args...))
}

// Writes a cyan "[SUCCESS]" line.
func (p *Printer) Success(format string, args ...any) {
	p.Println(Cyan, "[SUCCESS]: "+fmt.Sprintf(format, args...))
}

// Writes a red "[ERROR]" line.
func (p *Printer) Error(format string, args ...any) {
	p.Println(Red, "[ERROR]: "+fmt.Sprintf(format, args...))
}

// Writes a yellow "[Warning]" line.
func (p *Printer) Warn(format string, args ...any) {
	p.Println(Yellow, "[Warning]: "+fmt.Sprintf(format, args...))
}

// Writes captured process output in yellow.
//
// Empty output is skipped. A single trailing newline is trimmed so the
// output does not end in a blank line.
func (p *Printer) Detail(output string) {
	output = strings.TrimSuffix(output, "\n")
	if output == "" {
		return
	}
	p.Println(Yellow, output)
}

// Writes the magenta completion line.
func (p *Printer) Done() {
	p.Println(Magenta, "done!")
}

// Returns the stream the printer writes to.
func (p *Printer) Writer() io.Writer {
	return p.out
}
