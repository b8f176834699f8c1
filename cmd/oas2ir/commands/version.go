package commands

import (
	"github.com/erraggy/oas2ir"
	"github.com/erraggy/oas2ir/internal/cliutil"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if short {
				cliutil.Writef(cmd.OutOrStdout(), "%s\n", oas2ir.Version())
				return nil
			}
			cliutil.Writef(cmd.OutOrStdout(), "oas2ir\n%s\n", oas2ir.BuildInfo())
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}
