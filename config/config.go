// Package config loads sysfetch configuration from an optional YAML file, a
// .env file and SYSFETCH_* environment variables, in that order of
// precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ghodss/yaml"
	"github.com/joho/godotenv"
	"mvdan.cc/sh/v3/shell"

	"github.com/jeffrom/sysfetch/facts"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatTemplate = "template"
)

var (
	colorModes = []string{ColorAuto, ColorAlways, ColorNever}
	formats    = []string{FormatText, FormatJSON, FormatYAML, FormatTemplate}
)

type Config struct {
	// Root is the directory pseudo-file paths are relative to.
	Root string `json:"root,omitempty"`

	// Facts are the facts to show, in order.
	Facts []string `json:"facts,omitempty"`

	OnError     string `json:"on_error,omitempty"`
	Color       string `json:"color,omitempty"`
	Format      string `json:"format,omitempty"`
	Template    string `json:"template,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`

	// Timeout bounds every external command, e.g. "2s". Empty means no
	// timeout.
	Timeout string `json:"timeout,omitempty"`

	Paths    Paths    `json:"paths,omitempty"`
	Commands Commands `json:"commands,omitempty"`
}

type Paths struct {
	CPUInfo   string   `json:"cpuinfo,omitempty"`
	MemInfo   string   `json:"meminfo,omitempty"`
	Frequency []string `json:"frequency,omitempty"`
}

// Commands are shell-quoted command lines, e.g. `cat /etc/os-release`.
type Commands struct {
	Kernel    string `json:"kernel,omitempty"`
	Arch      string `json:"arch,omitempty"`
	OSRelease string `json:"os_release,omitempty"`
	Uptime    string `json:"uptime,omitempty"`
	GPU       string `json:"gpu,omitempty"`
	User      string `json:"user,omitempty"`
	Hostname  string `json:"hostname,omitempty"`
}

func Default() *Config {
	src := facts.DefaultSources()
	cmds := facts.DefaultCommands()
	names := make([]string, len(facts.DefaultNames))
	for i, n := range facts.DefaultNames {
		names[i] = string(n)
	}

	return &Config{
		Root:        "/",
		Facts:       names,
		OnError:     string(facts.PolicyDefault),
		Color:       ColorAuto,
		Format:      FormatText,
		Placeholder: "N/A",
		Paths: Paths{
			CPUInfo:   src.CPUInfo,
			MemInfo:   src.MemInfo,
			Frequency: src.Frequency,
		},
		Commands: Commands{
			Kernel:    joinArgv(cmds.Kernel),
			Arch:      joinArgv(cmds.Arch),
			OSRelease: joinArgv(cmds.OSRelease),
			Uptime:    joinArgv(cmds.Uptime),
			GPU:       joinArgv(cmds.GPU),
			User:      joinArgv(cmds.User),
			Hostname:  joinArgv(cmds.Hostname),
		},
	}
}

func joinArgv(argv []string) string { return strings.Join(argv, " ") }

// Load builds a config from defaults, the YAML file at path, a .env file in
// the working directory, and the environment. If path is empty, the default
// path is used when it exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: .env: %w", err)
	}
	cfg.mergeEnv(os.Getenv)
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/sysfetch/config.yaml, falling back to
// ~/.config.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "sysfetch", "config.yaml")
}

func (c *Config) mergeFile(p string) error {
	b, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config: %s: %w", p, err)
	}
	return nil
}

func (c *Config) mergeEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Root, "SYSFETCH_ROOT")
	set(&c.OnError, "SYSFETCH_ON_ERROR")
	set(&c.Color, "SYSFETCH_COLOR")
	set(&c.Format, "SYSFETCH_FORMAT")
	set(&c.Template, "SYSFETCH_TEMPLATE")
	set(&c.Placeholder, "SYSFETCH_PLACEHOLDER")
	set(&c.Timeout, "SYSFETCH_TIMEOUT")
	if v := getenv("SYSFETCH_FACTS"); v != "" {
		c.Facts = SplitList(v)
	}
}

// SplitList splits a comma separated list, dropping empty items.
func SplitList(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}

// Validate checks every field that can be checked without touching the
// system.
func (c *Config) Validate() error {
	if !contains(colorModes, c.Color) {
		return fmt.Errorf("config: invalid color %q (want one of %v)", c.Color, colorModes)
	}
	if !contains(formats, c.Format) {
		return fmt.Errorf("config: invalid format %q (want one of %v)", c.Format, formats)
	}
	if c.Format == FormatTemplate && c.Template == "" {
		return errors.New("config: template format requires a template path")
	}
	if len(c.Facts) == 0 {
		return errors.New("config: no facts to show")
	}
	if _, err := c.Names(); err != nil {
		return err
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := c.CommandTimeout(); err != nil {
		return err
	}
	if _, err := c.CollectorCommands(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Names() ([]facts.Name, error) { return facts.ParseNames(c.Facts) }

func (c *Config) Policy() (facts.Policy, error) { return facts.ParsePolicy(c.OnError) }

func (c *Config) CommandTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("config: invalid timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: negative timeout %s", d)
	}
	return d, nil
}

func (c *Config) Sources() facts.Sources {
	return facts.Sources{
		CPUInfo:   c.Paths.CPUInfo,
		MemInfo:   c.Paths.MemInfo,
		Frequency: c.Paths.Frequency,
	}
}

// CollectorCommands splits every configured command line into argv using
// shell quoting rules.
func (c *Config) CollectorCommands() (facts.Commands, error) {
	var res facts.Commands
	fields := []struct {
		name string
		line string
		dst  *[]string
	}{
		{"kernel", c.Commands.Kernel, &res.Kernel},
		{"arch", c.Commands.Arch, &res.Arch},
		{"os_release", c.Commands.OSRelease, &res.OSRelease},
		{"uptime", c.Commands.Uptime, &res.Uptime},
		{"gpu", c.Commands.GPU, &res.GPU},
		{"user", c.Commands.User, &res.User},
		{"hostname", c.Commands.Hostname, &res.Hostname},
	}
	for _, f := range fields {
		argv, err := shell.Fields(f.line, os.Getenv)
		if err != nil {
			return res, fmt.Errorf("config: commands.%s: %w", f.name, err)
		}
		if len(argv) == 0 {
			return res, fmt.Errorf("config: commands.%s is empty", f.name)
		}
		*f.dst = argv
	}
	return res, nil
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
