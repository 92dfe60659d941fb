package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Writer renders diagnostics to an io.Writer, optionally colorized.
type Writer struct {
	out      io.Writer
	colorize bool
}

// NewWriter creates a renderer. Pass colorize=false for plain output, e.g.
// when stdout is not a terminal.
func NewWriter(out io.Writer, colorize bool) *Writer {
	return &Writer{out: out, colorize: colorize}
}

func (w *Writer) severityColor(s Severity) *color.Color {
	var c *color.Color
	switch s {
	case SevError:
		c = color.New(color.FgRed, color.Bold)
	case SevWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan)
	}
	if w.colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Write renders every diagnostic in the bag, one per line.
func (w *Writer) Write(bag *Bag) error {
	for _, d := range bag.Items() {
		if _, err := w.severityColor(d.Severity).Fprintf(w.out, "%s %s", d.Severity, d.Code.ID()); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w.out, " %s: %s\n", d.Subject, d.Message); err != nil {
			return err
		}
	}
	return nil
}
