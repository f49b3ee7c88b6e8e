package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Prints commands instead of running them.
//
// Every command is reported as successful.
type DryRun struct {
	Out io.Writer // Destination for the printed command lines.
}

// Writes the command line to Out.
func (d *DryRun) Exec(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "not running %s", name)
	}
	_, err := fmt.Fprintln(d.Out, Format(name, args...))
	return err
}
