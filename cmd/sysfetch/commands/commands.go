// Package commands contains the available sysfetch cli commands.
package commands

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeffrom/sysfetch/config"
	"github.com/jeffrom/sysfetch/executil"
	"github.com/jeffrom/sysfetch/facts"
	"github.com/jeffrom/sysfetch/format"
	"github.com/jeffrom/sysfetch/stdio"
	"github.com/jeffrom/sysfetch/sysfs"
)

// ExecArgs runs the sysfetch command line. ctx must carry a *stdio.StdIO.
func ExecArgs(ctx context.Context, args []string) error {
	o := stdio.FromContext(ctx)
	opts := &globalOpts{}

	rootCmd := &cobra.Command{
		Use:           "sysfetch",
		Short:         "print a summary of facts about this linux system",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			names, policy, err := namesAndPolicy(cfg)
			if err != nil {
				return err
			}
			render, err := newRenderer(cfg, names, useColor(cfg, o))
			if err != nil {
				return err
			}

			c, err := newCollector(cfg, o)
			if err != nil {
				return err
			}
			report, err := c.Gather(ctx, names, policy)
			if err != nil {
				return err
			}
			warnFailures(*o, report)
			return render(o.Stdout(), report)
		},
	}
	rootCmd.SetOut(o.Stdout())
	rootCmd.SetErr(o.Stderr())

	opts.addFlags(rootCmd)

	rootCmd.AddCommand(newFactsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

type globalOpts struct {
	configPath  string
	root        string
	color       string
	format      string
	template    string
	facts       []string
	onError     string
	placeholder string
	timeout     string
	verbose     bool
}

func (opts *globalOpts) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config file (default $XDG_CONFIG_HOME/sysfetch/config.yaml)")
	flags.StringVar(&opts.root, "root", "/", "use as root directory for /proc and /sys")
	flags.StringVar(&opts.color, "color", config.ColorAuto, "colorize output: auto, always, or never")
	flags.StringVar(&opts.format, "format", config.FormatText, "output format: text, json, yaml, or template")
	flags.StringVar(&opts.template, "template", "", "path to a text/template file for the template format")
	flags.StringSliceVar(&opts.facts, "facts", nil, "comma separated facts to show, in order")
	flags.StringVar(&opts.onError, "on-error", string(facts.PolicyDefault), "which errors abort the run: default, abort, or ignore")
	flags.StringVar(&opts.placeholder, "placeholder", "N/A", "text shown for facts that could not be gathered")
	flags.StringVar(&opts.timeout, "timeout", "", "timeout for each external command, e.g. 2s")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print debug output to stderr")
}

// load reads the config file and environment, then applies the flags that
// were set on the command line.
func (opts *globalOpts) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	set := func(dst *string, name, val string) {
		if flags.Changed(name) {
			*dst = val
		}
	}
	set(&cfg.Root, "root", opts.root)
	set(&cfg.Color, "color", opts.color)
	set(&cfg.Format, "format", opts.format)
	set(&cfg.Template, "template", opts.template)
	set(&cfg.OnError, "on-error", opts.onError)
	set(&cfg.Placeholder, "placeholder", opts.placeholder)
	set(&cfg.Timeout, "timeout", opts.timeout)
	if flags.Changed("facts") {
		cfg.Facts = opts.facts
	}
	// the template flag implies its format unless one was asked for.
	if flags.Changed("template") && !flags.Changed("format") {
		cfg.Format = config.FormatTemplate
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if opts.verbose {
		stdio.FromContext(cmd.Context()).Verbose = true
	}
	return cfg, nil
}

func namesAndPolicy(cfg *config.Config) ([]facts.Name, facts.Policy, error) {
	names, err := cfg.Names()
	if err != nil {
		return nil, "", err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, "", err
	}
	return names, policy, nil
}

func newCollector(cfg *config.Config, o *stdio.StdIO) (*facts.Collector, error) {
	timeout, err := cfg.CommandTimeout()
	if err != nil {
		return nil, err
	}
	cmds, err := cfg.CollectorCommands()
	if err != nil {
		return nil, err
	}

	c := facts.New(sysfs.New(cfg.Root), executil.Exec{Timeout: timeout})
	c.Sources = cfg.Sources()
	c.Commands = cmds
	c.IO = *o
	o.WithScope("config").Debugf("root=%s facts=%v on_error=%s timeout=%s", cfg.Root, cfg.Facts, cfg.OnError, timeout)
	return c, nil
}

func useColor(cfg *config.Config, o *stdio.StdIO) bool {
	switch cfg.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	_, noColor := os.LookupEnv("NO_COLOR")
	return !noColor && o.IsTerminal()
}

type renderFunc func(w io.Writer, r *facts.Report) error

// newRenderer returns the renderer for the configured format. Templates are
// parsed here so a bad one is reported before anything is gathered.
func newRenderer(cfg *config.Config, names []facts.Name, color bool) (renderFunc, error) {
	switch cfg.Format {
	case config.FormatJSON:
		return format.WriteJSON, nil
	case config.FormatYAML:
		return format.WriteYAML, nil
	case config.FormatTemplate:
		tmpl, err := format.LoadTemplate(cfg.Template, color)
		if err != nil {
			return nil, err
		}
		return func(w io.Writer, r *facts.Report) error {
			return tmpl.Execute(w, format.NewData(r, cfg.Placeholder))
		}, nil
	}

	txt := format.Text{Color: color, Placeholder: cfg.Placeholder}
	return func(w io.Writer, r *facts.Report) error {
		return txt.Write(w, r, names)
	}, nil
}

// warnFailures reports unreadable sources and programs that couldn't run.
// Facts that are simply missing on this machine are only logged in verbose
// mode, by the collector.
func warnFailures(o stdio.StdIO, r *facts.Report) {
	for _, outcome := range r.Failed() {
		if errors.Is(outcome.Err, facts.ErrIO) || errors.Is(outcome.Err, facts.ErrExec) {
			o.WithScope("facts", string(outcome.Name)).Warningf("%v", format.Status(outcome.Err))
		}
	}
}
