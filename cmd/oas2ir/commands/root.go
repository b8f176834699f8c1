// Package commands provides the cobra command tree of the oas2ir CLI.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// rootOptions carries the persistent flags every subcommand sees.
type rootOptions struct {
	logLevel string
	logger   *slog.Logger
}

// Execute runs the oas2ir CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command so tests can exercise the CLI easily.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "oas2ir",
		Short: "Convert OpenAPI 2.0 documents into a service IR",
		Long: "oas2ir reads an OpenAPI 2.0 (Swagger) document and emits a language-neutral " +
			"intermediate representation of the service, with every value located in the source.",
		SilenceErrors:              true,
		SilenceUsage:               true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := resolveLogLevel(cmd.Flags(), opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), level)
			slog.SetDefault(opts.logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Convert Cobra flag errors (like unknown flags) into friendly usage errors
	// that also show the command's help text.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
	})

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"Log level (debug|info|warn|error); defaults to $OAS2IR_LOG_LEVEL or warn")

	cmd.AddCommand(newParseCmd(opts))
	cmd.AddCommand(newMCPCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
