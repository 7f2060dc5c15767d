package cmd

import (
	"fmt"

	"github.com/DevSymphony/regexify/internal/mcp"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server to integrate with LLM tools",
		Long: `Start Model Context Protocol (MCP) server.
LLM-based coding tools can resolve format descriptions to patterns through stdio.

Tools provided by MCP server:
- detect_intent: Resolve a plain-English request to a catalog pattern
- list_intents: List catalog intents, optionally fuzzy-filtered by name`,
		Example: `  regexify mcp`,
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			server := mcp.NewServer(opts.catalog, version, opts.logger(cmd))

			fmt.Fprintln(cmd.ErrOrStderr(), "regexify MCP server started (stdio mode)")
			return server.Run(cmd.Context(), &sdkmcp.StdioTransport{})
		},
	}
}
