package format

import (
	"errors"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jeffrom/sysfetch/facts"
)

func NewTabWriter(w io.Writer) *tabwriter.Writer {
	var flags uint // | tabwriter.Debug
	padding := 3
	return tabwriter.NewWriter(w, 4, 4, padding, ' ', flags)
}

func WriteTabHeader(w io.Writer, cols ...string) {
	for i, col := range cols {
		if i > 0 {
			io.WriteString(w, "\t")
		}
		io.WriteString(w, strings.ToUpper(col))
	}
	io.WriteString(w, "\n")
}

func WriteTabRow(w io.Writer, cols ...string) {
	for i, col := range cols {
		if i > 0 {
			io.WriteString(w, "\t")
		}
		io.WriteString(w, col)
	}
	io.WriteString(w, "\t\n")
}

// WriteOutcomes writes a table with one row per operation in the report.
func WriteOutcomes(w io.Writer, r *facts.Report, placeholder string) error {
	tw := NewTabWriter(w)
	WriteTabHeader(tw, "fact", "value", "status")
	for _, o := range r.Outcomes {
		val, ok := r.Facts.Value(o.Name)
		if !ok {
			val = placeholder
		}
		WriteTabRow(tw, string(o.Name), val, Status(o.Err))
	}
	return tw.Flush()
}

// Status describes an operation error in a few words: "ok", or its kind
// followed by the cause.
func Status(err error) string {
	if err == nil {
		return "ok"
	}
	var fe *facts.Error
	if errors.As(err, &fe) {
		return fe.Kind.Error() + ": " + fe.Err.Error()
	}
	return err.Error()
}
