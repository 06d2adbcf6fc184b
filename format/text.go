// Package format contains code to control the look of sysfetch output.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/jeffrom/sysfetch/facts"
)

// Text renders facts as "Label: value" lines below a user@host header.
type Text struct {
	Color       bool
	Placeholder string
}

func newColor(enabled bool, c *color.Color) *color.Color {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func headerColor(enabled bool) *color.Color {
	return newColor(enabled, color.New(color.FgBlue, color.Bold))
}

func labelColor(enabled bool) *color.Color {
	return newColor(enabled, color.RGB(56, 83, 120).Add(color.Bold))
}

func (t Text) Write(w io.Writer, r *facts.Report, names []facts.Name) error {
	header := headerColor(t.Color)
	label := labelColor(t.Color)

	for _, name := range names {
		val, ok := r.Facts.Value(name)
		if !ok {
			val = t.Placeholder
		}

		if name == facts.NameUser {
			if _, err := fmt.Fprintln(w, header.Sprint(val)); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, Separator(val)); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "%s %s\n", label.Sprint(name.Label()+":"), val); err != nil {
			return err
		}
	}
	return nil
}

// Separator returns a dashed line as wide as s is on screen.
func Separator(s string) string {
	return strings.Repeat("-", runewidth.StringWidth(s))
}
