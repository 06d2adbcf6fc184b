package facts

import (
	"errors"
	"io"
	"strings"
	"testing"
)

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) { return 0, errors.New("read past the answer") }

func TestScanFieldsStopsWhenSatisfied(t *testing.T) {
	r := io.MultiReader(
		strings.NewReader("model name\t: Example CPU\ncpu cores\t: 4\n"),
		failingReader{},
	)
	res, err := scanFields(r, ":", "model name", "cpu cores")
	if err != nil {
		t.Fatalf("scanFields kept reading after finding every marker: %v", err)
	}
	if res.values["model name"] != "Example CPU" || res.values["cpu cores"] != "4" {
		t.Errorf("unexpected values %v", res.values)
	}
}

func TestScanFieldsReadError(t *testing.T) {
	r := io.MultiReader(strings.NewReader("model name\t: Example CPU\n"), failingReader{})
	if _, err := scanFields(r, ":", "model name", "cpu cores"); err == nil {
		t.Fatal("expected the read error")
	}
}

func TestScanFieldsDelimiter(t *testing.T) {
	res, err := scanFields(strings.NewReader("a = 1 = 2\nb\nb = 3\n"), "=", "a", "b")
	if err != nil {
		t.Fatal(err)
	}
	if got := res.values["a"]; got != "1 = 2" {
		t.Errorf("a: got %q", got)
	}
	if got := res.values["b"]; got != "3" {
		t.Errorf("b: got %q", got)
	}
	if _, err := res.get(NameCPU, "test", "c"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
