package facts

import (
	"context"
	"errors"
	"io/fs"
	"testing"
)

func TestPolicyFatal(t *testing.T) {
	ioErr := newError(NameCPU, ErrIO, fs.ErrNotExist)
	execErr := errorf(NameGPU, ErrExec, "boom")
	parseErr := errorf(NameFrequency, ErrParse, "bad")
	notFoundErr := errorf(NameGPU, ErrNotFound, "nope")
	other := context.Canceled

	tcs := []struct {
		policy Policy
		err    error
		want   bool
	}{
		{PolicyDefault, nil, false},
		{PolicyDefault, ioErr, true},
		{PolicyDefault, execErr, true},
		{PolicyDefault, parseErr, false},
		{PolicyDefault, notFoundErr, false},
		{PolicyDefault, other, true},
		{PolicyAbort, parseErr, true},
		{PolicyAbort, notFoundErr, true},
		{PolicyIgnore, ioErr, false},
		{PolicyIgnore, execErr, false},
	}
	for _, tc := range tcs {
		if got := tc.policy.Fatal(tc.err); got != tc.want {
			t.Errorf("%s.Fatal(%v) = %v, want %v", tc.policy, tc.err, got, tc.want)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	for _, s := range []string{"", "default", "abort", "ignore"} {
		if _, err := ParsePolicy(s); err != nil {
			t.Errorf("ParsePolicy(%q) failed: %v", s, err)
		}
	}
	if p, _ := ParsePolicy(""); p != PolicyDefault {
		t.Errorf("empty policy should be default, got %q", p)
	}
	if _, err := ParsePolicy("panic"); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}

func TestError(t *testing.T) {
	err := newError(NameMemory, ErrIO, fs.ErrPermission)
	if got, want := err.Error(), "facts: memory: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrIO) || errors.Is(err, ErrExec) {
		t.Error("kind matching is wrong")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("expected the cause to unwrap")
	}
	if KindOf(err) != ErrIO {
		t.Errorf("KindOf = %v", KindOf(err))
	}
	if KindOf(errors.New("other")) != nil {
		t.Error("KindOf of a foreign error should be nil")
	}
}

func TestParseNames(t *testing.T) {
	names, err := ParseNames([]string{"os", " CPU ", "os", "memory"})
	if err != nil {
		t.Fatal(err)
	}
	want := []Name{NameOS, NameCPU, NameMemory}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("%d: got %q, want %q", i, names[i], want[i])
		}
	}
	if _, err := ParseNames([]string{"disk"}); err == nil {
		t.Error("expected an error for an unknown fact")
	}
}
