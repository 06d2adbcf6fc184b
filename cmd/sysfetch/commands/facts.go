package commands

import (
	"github.com/spf13/cobra"

	"github.com/jeffrom/sysfetch/facts"
	"github.com/jeffrom/sysfetch/format"
	"github.com/jeffrom/sysfetch/stdio"
)

func newFactsCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facts",
		Short: "run every fact operation and print a table of outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o := stdio.FromContext(ctx)
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			names := facts.AllNames
			if cmd.Flags().Changed("facts") {
				if names, err = cfg.Names(); err != nil {
					return err
				}
			}
			names = withoutFrequency(names)

			c, err := newCollector(cfg, o)
			if err != nil {
				return err
			}
			// the table shows errors, so only a canceled context stops the run.
			report, err := c.Gather(ctx, names, facts.PolicyIgnore)
			if err != nil {
				return err
			}
			return format.WriteOutcomes(o.Stdout(), report, cfg.Placeholder)
		},
	}
	return cmd
}

// withoutFrequency drops the frequency fact when cpu is also asked for, since
// gathering cpu includes it.
func withoutFrequency(names []facts.Name) []facts.Name {
	hasCPU := false
	for _, n := range names {
		if n == facts.NameCPU {
			hasCPU = true
		}
	}
	if !hasCPU {
		return names
	}
	res := make([]facts.Name, 0, len(names))
	for _, n := range names {
		if n != facts.NameFrequency {
			res = append(res, n)
		}
	}
	return res
}
