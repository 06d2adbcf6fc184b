package facts

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error matches exactly one of them with errors.Is.
var (
	// ErrIO means a pseudo-file is missing or unreadable.
	ErrIO = errors.New("i/o error")

	// ErrExec means an external program could not be run.
	ErrExec = errors.New("exec error")

	// ErrParse means a source had an unexpected shape.
	ErrParse = errors.New("parse error")

	// ErrNotFound means an expected label never showed up in a readable
	// source.
	ErrNotFound = errors.New("not found")
)

// Error is returned by collector operations.
type Error struct {
	Fact Name
	Kind error
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("facts: %s: %v", e.Fact, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == e.Kind }

func newError(fact Name, kind, err error) *Error {
	return &Error{Fact: fact, Kind: kind, Err: err}
}

func errorf(fact Name, kind error, msg string, args ...interface{}) *Error {
	return newError(fact, kind, fmt.Errorf(msg, args...))
}

// KindOf returns the kind of err, or nil if err didn't come from a collector
// operation.
func KindOf(err error) error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return nil
}

// Policy decides which collection errors abort the run. Errors that aren't
// fatal leave their fact absent.
type Policy string

const (
	// PolicyDefault aborts on unreadable sources and programs that can't be
	// run. Parse errors and missing labels only drop the fact.
	PolicyDefault Policy = "default"

	// PolicyAbort aborts on any error.
	PolicyAbort Policy = "abort"

	// PolicyIgnore never aborts.
	PolicyIgnore Policy = "ignore"
)

var policies = []Policy{PolicyDefault, PolicyAbort, PolicyIgnore}

func ParsePolicy(s string) (Policy, error) {
	if s == "" {
		return PolicyDefault, nil
	}
	for _, p := range policies {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("facts: unknown error policy %q (want one of %v)", s, policies)
}

func (p Policy) Fatal(err error) bool {
	if err == nil {
		return false
	}
	switch p {
	case PolicyAbort:
		return true
	case PolicyIgnore:
		return false
	}
	if errors.Is(err, ErrParse) || errors.Is(err, ErrNotFound) {
		return false
	}
	return true
}
