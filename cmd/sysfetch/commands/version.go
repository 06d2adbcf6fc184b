package commands

import (
	"github.com/spf13/cobra"

	"github.com/jeffrom/sysfetch/stdio"
)

// Version is set at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stdio.FromContext(cmd.Context()).Println("sysfetch", Version)
			return nil
		},
	}
}
