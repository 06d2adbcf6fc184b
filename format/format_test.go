package format

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ghodss/yaml"

	"github.com/jeffrom/sysfetch/facts"
	"github.com/jeffrom/sysfetch/testenv"
)

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }
func u64p(n uint64) *uint64 { return &n }

func testReport() *facts.Report {
	return &facts.Report{
		Facts: facts.Facts{
			UserAtHost:     strp("tester@testbox"),
			OS:             strp("Test Linux 5 x86_64"),
			Kernel:         strp("6.5.0-test-generic"),
			Uptime:         strp("3 hours, 12 minutes"),
			CPUModel:       strp("Example CPU"),
			CPUCores:       intp(4),
			CPUFrequencyHz: u64p(2400000000),
			MemoryUsedKB:   u64p(8000000),
			MemoryTotalKB:  u64p(16000000),
		},
		Outcomes: []facts.Outcome{
			{Name: facts.NameUser},
			{Name: facts.NameOS},
			{Name: facts.NameKernel},
			{Name: facts.NameUptime},
			{Name: facts.NameCPU},
			{Name: facts.NameFrequency},
			{Name: facts.NameGPU, Err: &facts.Error{Fact: facts.NameGPU, Kind: facts.ErrNotFound, Err: errString("no VGA controller")}},
			{Name: facts.NameMemory},
		},
	}
}

type errString string

func (e errString) Error() string { return string(e) }

func TestText(t *testing.T) {
	var buf bytes.Buffer
	txt := Text{Placeholder: "N/A"}
	if err := txt.Write(&buf, testReport(), facts.DefaultNames); err != nil {
		t.Fatal(err)
	}

	expect := strings.Join([]string{
		"tester@testbox",
		"--------------",
		"OS: Test Linux 5 x86_64",
		"Kernel: 6.5.0-test-generic",
		"Uptime: 3 hours, 12 minutes",
		"CPU: Example CPU (4) @ 2.400GHz",
		"GPU: N/A",
		"Memory: 8000 MB / 16000 MB",
	}, "\n") + "\n"
	if got := buf.String(); got != expect {
		t.Errorf("expected:\n%s\ngot:\n%s", expect, got)
	}
}

func TestTextColor(t *testing.T) {
	var buf bytes.Buffer
	txt := Text{Color: true, Placeholder: "N/A"}
	if err := txt.Write(&buf, testReport(), []facts.Name{facts.NameUser, facts.NameKernel}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected escape sequences, got %q", out)
	}
	if !strings.Contains(out, "38;2;56;83;120") {
		t.Errorf("expected the rgb label color, got %q", out)
	}
	if !strings.Contains(out, "\n--------------\n") {
		t.Errorf("separator shouldn't count escape sequences, got %q", out)
	}
}

func TestTextNoHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := (Text{Placeholder: "?"}).Write(&buf, &facts.Report{}, []facts.Name{facts.NameHost, facts.NameFrequency}); err != nil {
		t.Fatal(err)
	}
	if got, expect := buf.String(), "Host: ?\nFrequency: ?\n"; got != expect {
		t.Errorf("expected %q, got %q", expect, got)
	}
}

func TestSeparator(t *testing.T) {
	tcs := []struct {
		in     string
		expect string
	}{
		{"", ""},
		{"a@b", "---"},
		{"ユーザー@host", "-------------"},
	}
	for _, tc := range tcs {
		if got := Separator(tc.in); got != tc.expect {
			t.Errorf("Separator(%q): expected %q, got %q", tc.in, tc.expect, got)
		}
	}
}

func TestTemplate(t *testing.T) {
	tmpl, err := ParseTemplate("test", `{{ .Values.user }} {{ .Values.gpu }} {{ .Values.host | upper }} {{ color "label" "CPU:" }} {{ .Values.cpu }}
{{ range $name, $err := .Errors }}{{ $name }}={{ $err }}{{ end }}
{{ separator .Values.user }}`, false)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, NewData(testReport(), "N/A")); err != nil {
		t.Fatal(err)
	}
	expect := "tester@testbox N/A N/A CPU: Example CPU (4) @ 2.400GHz\ngpu=not found: no VGA controller\n--------------"
	if got := buf.String(); got != expect {
		t.Errorf("expected:\n%q\ngot:\n%q", expect, got)
	}
}

func TestTemplateErrors(t *testing.T) {
	if _, err := ParseTemplate("bad", "{{ .Values.user ", false); err == nil {
		t.Error("expected a parse error")
	}

	tmpl, err := ParseTemplate("color", `{{ color "mauve" "x" }}`, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := tmpl.Execute(&bytes.Buffer{}, NewData(testReport(), "N/A")); err == nil {
		t.Error("expected an unknown color error")
	}

	// hermetic function maps leave out env access
	if _, err := ParseTemplate("env", `{{ env "HOME" }}`, false); err == nil {
		t.Error("expected env to be undefined")
	}
}

func TestLoadTemplate(t *testing.T) {
	dir := testenv.TempDir(t, "format")
	defer testenv.RemoveOnSuccess(t, dir)
	p := filepath.Join(dir, "fetch.tmpl")
	testenv.WriteFile(t, p, `{{ .Values.kernel }}`)

	tmpl, err := LoadTemplate(p, false)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, NewData(testReport(), "N/A")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "6.5.0-test-generic" {
		t.Errorf("got %q", buf.String())
	}

	if _, err := LoadTemplate(filepath.Join(dir, "missing.tmpl"), false); err == nil {
		t.Error("expected an error for a missing template")
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testReport()); err != nil {
		t.Fatal(err)
	}

	var doc map[string]map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if got := doc["facts"]["kernel"]; got != "6.5.0-test-generic" {
		t.Errorf("kernel: got %v", got)
	}
	if got := doc["facts"]["cpu_cores"]; got != float64(4) {
		t.Errorf("cpu_cores: got %v", got)
	}
	if _, ok := doc["facts"]["gpu"]; ok {
		t.Error("absent facts should be left out")
	}
	if got := doc["errors"]["gpu"]; got != "not found: no VGA controller" {
		t.Errorf("errors.gpu: got %v", got)
	}
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, &facts.Report{Facts: facts.Facts{Kernel: strp("6.5.0")}}); err != nil {
		t.Fatal(err)
	}
	if got, expect := buf.String(), "facts:\n  kernel: 6.5.0\n"; got != expect {
		t.Errorf("expected %q, got %q", expect, got)
	}

	var doc Document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Facts.Kernel == nil || *doc.Facts.Kernel != "6.5.0" {
		t.Errorf("unexpected document %+v", doc)
	}
}

func TestWriteOutcomes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutcomes(&buf, testReport(), "N/A"); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected a header and 8 rows, got:\n%s", buf.String())
	}
	if got := strings.Fields(lines[0]); strings.Join(got, " ") != "FACT VALUE STATUS" {
		t.Errorf("header: got %q", lines[0])
	}
	if !strings.HasPrefix(lines[7], "gpu") || !strings.Contains(lines[7], "N/A") || !strings.Contains(lines[7], "not found: no VGA controller") {
		t.Errorf("gpu row: got %q", lines[7])
	}
	if !strings.HasPrefix(lines[6], "frequency") || !strings.Contains(lines[6], "2.400GHz") || !strings.HasSuffix(strings.TrimSpace(lines[6]), "ok") {
		t.Errorf("frequency row: got %q", lines[6])
	}
}

func TestStatus(t *testing.T) {
	if got := Status(nil); got != "ok" {
		t.Errorf("got %q", got)
	}
	if got := Status(errString("boom")); got != "boom" {
		t.Errorf("got %q", got)
	}
}
