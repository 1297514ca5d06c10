package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// IO handles command output. Styled helpers render through [Styles], so
// the same call prints plain text to pipes and colored text to terminals.
type IO struct {
	out    io.Writer
	errOut io.Writer
	styles Styles
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer, styles Styles) *IO {
	return &IO{out: out, errOut: errOut, styles: styles}
}

// Stderr returns an IO whose stdout is this IO's stderr. Used to print
// help text after a usage error.
func (o *IO) Stderr() *IO {
	return &IO{out: o.errOut, errOut: o.errOut, styles: o.styles}
}

// Styles returns the output styles.
func (o *IO) Styles() Styles {
	return o.styles
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Success prints a confirmation line to stdout.
func (o *IO) Success(format string, a ...any) {
	o.Println(o.styles.Success.Render(fmt.Sprintf(format, a...)))
}

// Notice prints an informational line to stdout.
func (o *IO) Notice(format string, a ...any) {
	o.Println(o.styles.Notice.Render(fmt.Sprintf(format, a...)))
}

// Error prints "error: <err>" to stderr.
func (o *IO) Error(err error) {
	msg := err.Error()
	if errors.Is(err, context.Canceled) {
		msg = "interrupted"
	}

	o.ErrPrintln(o.styles.Error.Render("error: " + msg))
}
