package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ghodss/yaml"

	"github.com/jeffrom/sysfetch/facts"
)

// Document is the shape of json and yaml output.
type Document struct {
	Facts  facts.Facts       `json:"facts"`
	Errors map[string]string `json:"errors,omitempty"`
}

func NewDocument(r *facts.Report) Document {
	doc := Document{Facts: r.Facts}
	for _, o := range r.Failed() {
		if doc.Errors == nil {
			doc.Errors = make(map[string]string)
		}
		doc.Errors[string(o.Name)] = Status(o.Err)
	}
	return doc
}

func WriteJSON(w io.Writer, r *facts.Report) error {
	b, err := json.MarshalIndent(NewDocument(r), "", "  ")
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func WriteYAML(w io.Writer, r *facts.Report) error {
	b, err := yaml.Marshal(NewDocument(r))
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	_, err = w.Write(b)
	return err
}
