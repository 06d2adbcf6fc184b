package stdio

import (
	"fmt"
	"strings"
)

func (o StdIO) Printf(msg string, args ...interface{}) {
	fmt.Fprintf(o.Stdout(), msg, args...)
}

func (o StdIO) Println(args ...interface{}) {
	fmt.Fprintln(o.Stdout(), args...)
}

// Infof writes progress messages to stderr so they never mix with rendered
// facts on stdout.
func (o StdIO) Infof(msg string, args ...interface{}) {
	if o.Quiet {
		return
	}
	fmt.Fprintf(o.Stderr(), msg+"\n", args...)
}

func (o StdIO) Debug(args ...interface{}) {
	if !o.Verbose {
		return
	}
	fmt.Fprintln(o.Stderr(), append([]interface{}{"DEBUG:" + fmtScopes(o.scopes)}, args...)...)
}

func (o StdIO) Debugf(msg string, args ...interface{}) {
	if !o.Verbose {
		return
	}
	fmt.Fprintf(o.Stderr(), "DEBUG:"+fmtScopes(o.scopes)+" "+msg+"\n", args...)
}

func (o StdIO) Warning(args ...interface{}) {
	fmt.Fprintln(o.Stderr(), append([]interface{}{"WARNING:" + fmtScopes(o.scopes)}, args...)...)
}

func (o StdIO) Warningf(msg string, args ...interface{}) {
	fmt.Fprintf(o.Stderr(), "WARNING:"+fmtScopes(o.scopes)+" "+msg+"\n", args...)
}

func fmtScopes(scopes []string) string {
	if len(scopes) == 0 {
		return ""
	}
	return " " + strings.Join(scopes, ":") + ":"
}
