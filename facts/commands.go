package facts

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

const vgaMarker = "VGA compatible controller"

var (
	bracketedRe = regexp.MustCompile(`\[([^\]]+)\]`)
	quotedRe    = regexp.MustCompile(`"([^"]*)"`)
)

func (c *Collector) run(ctx context.Context, fact Name, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", newError(fact, ErrExec, errors.New("no command configured"))
	}
	c.log(fact).Debugf("+ %s", strings.Join(argv, " "))
	out, err := c.Runner.Run(ctx, argv[0], argv[1:]...)
	if err != nil {
		return "", newError(fact, ErrExec, err)
	}
	return strings.TrimSpace(out), nil
}

func firstLine(s string, match func(line string) bool) (string, bool) {
	for _, line := range strings.Split(s, "\n") {
		if match(line) {
			return line, true
		}
	}
	return "", false
}

// GPU returns the bracketed model name of the first VGA controller in the bus
// listing.
func (c *Collector) GPU(ctx context.Context) (string, error) {
	out, err := c.run(ctx, NameGPU, c.Commands.GPU)
	if err != nil {
		return "", err
	}

	line, ok := firstLine(out, func(line string) bool { return strings.Contains(line, vgaMarker) })
	if !ok {
		return "", errorf(NameGPU, ErrNotFound, "no %q in bus listing", vgaMarker)
	}
	m := bracketedRe.FindStringSubmatch(line)
	if m == nil {
		return "", errorf(NameGPU, ErrNotFound, "no bracketed model in %q", strings.TrimSpace(line))
	}
	return m[1], nil
}

// Kernel returns the kernel release.
func (c *Collector) Kernel(ctx context.Context) (string, error) {
	return c.run(ctx, NameKernel, c.Commands.Kernel)
}

// OS returns the os-release PRETTY_NAME followed by the machine architecture.
func (c *Collector) OS(ctx context.Context) (string, error) {
	out, err := c.run(ctx, NameOS, c.Commands.OSRelease)
	if err != nil {
		return "", err
	}

	line, ok := firstLine(out, func(line string) bool { return strings.HasPrefix(line, "PRETTY_NAME") })
	if !ok {
		return "", errorf(NameOS, ErrNotFound, "no PRETTY_NAME in os-release")
	}
	m := quotedRe.FindStringSubmatch(line)
	if m == nil {
		return "", errorf(NameOS, ErrParse, "PRETTY_NAME is not quoted: %q", line)
	}

	arch, err := c.run(ctx, NameOS, c.Commands.Arch)
	if err != nil {
		return "", err
	}
	return m[1] + " " + arch, nil
}

// Uptime returns the pretty uptime with its leading "up " removed.
func (c *Collector) Uptime(ctx context.Context) (string, error) {
	out, err := c.run(ctx, NameUptime, c.Commands.Uptime)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(out, "up ") {
		return "", errorf(NameUptime, ErrParse, "unexpected uptime output %q", out)
	}
	return strings.TrimSpace(out[3:]), nil
}

// UserHost returns "<user>@<hostname>".
func (c *Collector) UserHost(ctx context.Context) (string, error) {
	user, err := c.run(ctx, NameUser, c.Commands.User)
	if err != nil {
		return "", err
	}
	host, err := c.run(ctx, NameUser, c.Commands.Hostname)
	if err != nil {
		return "", err
	}
	return user + "@" + host, nil
}
