// Package stdio manages standard io in a way that's easily mockable in tests
// while also not depending on overriding os.Stdin, os.Stdout, and os.Stderr.
package stdio

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type contextKey string

var stdioKey = contextKey("stdio")

type StdIO struct {
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	Quiet   bool
	Verbose bool
	scopes  []string
}

func (o StdIO) Stdin() io.Reader {
	if o.In != nil {
		return o.In
	}
	return os.Stdin
}

func (o StdIO) Stdout() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

func (o StdIO) Stderr() io.Writer {
	if o.Err != nil {
		return o.Err
	}
	return os.Stderr
}

// IsTerminal reports whether stdout is a terminal. Writers that aren't files
// never are.
func (o StdIO) IsTerminal() bool {
	f, ok := o.Stdout().(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (o StdIO) WithScope(scopes ...string) StdIO {
	o.scopes = scopes
	return o
}

func (o StdIO) AppendScope(scopes ...string) StdIO {
	next := make([]string, 0, len(o.scopes)+len(scopes))
	next = append(next, o.scopes...)
	o.scopes = append(next, scopes...)
	return o
}

func (o StdIO) ClearScope() StdIO {
	o.scopes = nil
	return o
}

func SetContext(ctx context.Context, o *StdIO) context.Context {
	return context.WithValue(ctx, stdioKey, o)
}

func FromContext(ctx context.Context) *StdIO {
	if ctx == nil {
		panic("stdio: context was nil")
	}
	iv := ctx.Value(stdioKey)
	if iv == nil {
		panic("stdio: context stdio value missing")
	}
	return iv.(*StdIO)
}

func Stdin(ctx context.Context) io.Reader  { return FromContext(ctx).Stdin() }
func Stdout(ctx context.Context) io.Writer { return FromContext(ctx).Stdout() }
func Stderr(ctx context.Context) io.Writer { return FromContext(ctx).Stderr() }
