package commands

import (
	"github.com/erraggy/oas2ir/internal/mcpserver"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the converter as an MCP tool over stdio",
		Long: "Start a Model Context Protocol server on stdin/stdout exposing a single " +
			"convert tool. Server defaults are read from OAS2IR_MCP_* environment variables.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}
