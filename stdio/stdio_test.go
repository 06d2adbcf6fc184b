package stdio

import (
	"bytes"
	"context"
	"testing"
)

func TestOutput(t *testing.T) {
	tcs := []struct {
		name    string
		verbose bool
		quiet   bool
		fn      func(o StdIO)
		stdout  string
		stderr  string
	}{
		{
			name:   "printf",
			fn:     func(o StdIO) { o.Printf("OS: %s\n", "Test Linux") },
			stdout: "OS: Test Linux\n",
		},
		{
			name:   "debug hidden",
			fn:     func(o StdIO) { o.Debugf("read %s", "proc/cpuinfo") },
			stderr: "",
		},
		{
			name:    "debug scoped",
			verbose: true,
			fn:      func(o StdIO) { o.WithScope("facts", "cpu").Debugf("read %s", "proc/cpuinfo") },
			stderr:  "DEBUG: facts:cpu: read proc/cpuinfo\n",
		},
		{
			name:   "warning",
			fn:     func(o StdIO) { o.AppendScope("facts").AppendScope("gpu").Warningf("no %s", "match") },
			stderr: "WARNING: facts:gpu: no match\n",
		},
		{
			name:   "warning unscoped",
			fn:     func(o StdIO) { o.Warning("careful") },
			stderr: "WARNING: careful\n",
		},
		{
			name:   "info quiet",
			quiet:  true,
			fn:     func(o StdIO) { o.Infof("hi") },
			stderr: "",
		},
		{
			name:   "info",
			fn:     func(o StdIO) { o.Infof("config: %s", "none") },
			stderr: "config: none\n",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
			o := StdIO{Out: out, Err: errOut, Verbose: tc.verbose, Quiet: tc.quiet}
			tc.fn(o)
			if got := out.String(); got != tc.stdout {
				t.Errorf("stdout: got %q, want %q", got, tc.stdout)
			}
			if got := errOut.String(); got != tc.stderr {
				t.Errorf("stderr: got %q, want %q", got, tc.stderr)
			}
		})
	}
}

func TestContext(t *testing.T) {
	out := &bytes.Buffer{}
	ctx := SetContext(context.Background(), &StdIO{Out: out})
	Stdout(ctx).Write([]byte("x"))
	if out.String() != "x" {
		t.Fatalf("got %q", out.String())
	}
	if FromContext(ctx).IsTerminal() {
		t.Error("a buffer should never be a terminal")
	}
}
