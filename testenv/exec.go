package testenv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Output is the canned result of a faked command.
type Output struct {
	Stdout   string
	ExitCode int
	// Sleep delays the fake command before it writes anything.
	Sleep time.Duration
}

// Commands maps a command line ("uname -r") to its canned output.
type Commands map[string]Output

func commandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// FakeExecCommand returns a replacement for executil.CommandContext that runs
// the test binary in place of the requested program. Tests using it must
// define:
//
//	func TestHelperProcess(t *testing.T) { testenv.HelperProcess() }
//
// Command lines missing from cmds resolve to a program that does not exist.
func FakeExecCommand(cmds Commands) func(context.Context, string, ...string) *exec.Cmd {
	return func(ctx context.Context, command string, args ...string) *exec.Cmd {
		out, ok := cmds[commandLine(command, args...)]
		if !ok {
			return exec.CommandContext(ctx, "sysfetch-test-missing-"+command, args...)
		}

		arg := []string{"-test.run=TestHelperProcess", "--", command}
		arg = append(arg, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], arg...)

		cmd.Env = []string{
			"_TEST_WANT_HELPER_PROCESS=1",
			"_TEST_STDOUT=" + out.Stdout,
			"_TEST_EXITCODE=" + strconv.Itoa(out.ExitCode),
			"_TEST_SLEEP=" + out.Sleep.String(),
		}
		return cmd
	}
}

// HelperProcess is the fake program started by FakeExecCommand. It does
// nothing unless the test binary was started as a helper.
func HelperProcess() {
	if os.Getenv("_TEST_WANT_HELPER_PROCESS") != "1" {
		return
	}

	if s := os.Getenv("_TEST_SLEEP"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			panic(err)
		}
		time.Sleep(d)
	}

	fmt.Fprint(os.Stdout, os.Getenv("_TEST_STDOUT"))

	code := 0
	if codes := os.Getenv("_TEST_EXITCODE"); codes != "" {
		n, err := strconv.ParseInt(codes, 10, 8)
		if err != nil {
			panic(err)
		}
		code = int(n)
	}
	os.Exit(code)
}

// FakeRunner is an in-process executil.Runner answering from canned outputs.
// Unknown command lines fail as if the program could not be started.
type FakeRunner struct {
	Commands Commands
	Calls    []string
}

func NewFakeRunner(cmds Commands) *FakeRunner {
	return &FakeRunner{Commands: cmds}
}

func (r *FakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	line := commandLine(name, args...)
	r.Calls = append(r.Calls, line)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, ok := r.Commands[line]
	if !ok {
		return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return strings.TrimSpace(out.Stdout), nil
}
