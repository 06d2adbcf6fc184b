package format

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/fatih/color"

	"github.com/jeffrom/sysfetch/facts"
)

// Data is the template data struct.
type Data struct {
	// Facts is the raw record. Absent facts are nil.
	Facts facts.Facts

	// Values holds the display string of every fact, keyed by name. Absent
	// facts hold the placeholder.
	Values map[string]string

	// Errors holds the error of every operation that failed, keyed by name.
	Errors map[string]string
}

func NewData(r *facts.Report, placeholder string) Data {
	d := Data{
		Facts:  r.Facts,
		Values: make(map[string]string, len(facts.AllNames)),
		Errors: make(map[string]string),
	}
	for _, name := range facts.AllNames {
		val, ok := r.Facts.Value(name)
		if !ok {
			val = placeholder
		}
		d.Values[string(name)] = val
	}
	for _, o := range r.Failed() {
		d.Errors[string(o.Name)] = Status(o.Err)
	}
	return d
}

var namedColors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
	"bold":    color.Bold,
}

func tmplHelpers(colorEnabled bool) template.FuncMap {
	fns := template.FuncMap{
		// color applies a named color ("label", "header", "red", "bold", ...)
		// to s.
		"color": func(name string, s interface{}) (string, error) {
			var c *color.Color
			switch name {
			case "label":
				c = labelColor(colorEnabled)
			case "header":
				c = headerColor(colorEnabled)
			default:
				attr, ok := namedColors[name]
				if !ok {
					return "", fmt.Errorf("format: unknown color %q", name)
				}
				c = newColor(colorEnabled, color.New(attr))
			}
			return c.Sprint(s), nil
		},
		"separator": Separator,
	}

	spfns := sprig.HermeticTxtFuncMap()
	for k, fn := range spfns {
		if _, ok := fns[k]; ok {
			continue
		}
		fns[k] = fn
	}
	return fns
}

// Template renders facts with a user-supplied text/template.
type Template struct {
	tmpl *template.Template
}

func ParseTemplate(name, text string, colorEnabled bool) (*Template, error) {
	tmpl, err := template.New(name).Funcs(tmplHelpers(colorEnabled)).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return &Template{tmpl: tmpl}, nil
}

func LoadTemplate(p string, colorEnabled bool) (*Template, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return ParseTemplate(filepath.Base(p), string(b), colorEnabled)
}

func (t *Template) Execute(w io.Writer, d Data) error {
	return t.tmpl.Execute(w, d)
}
