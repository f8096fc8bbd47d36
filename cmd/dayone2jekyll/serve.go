package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	d2jmcp "github.com/gorewood/dayone2jekyll/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run dayone2jekyll as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "dayone2jekyll": {
        "command": "dayone2jekyll",
        "args": ["serve"]
      }
    }
  }

Available tools: list_journals, list_entries, convert_journal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := d2jmcp.NewServer(buildVersion(), newServeLogger(cmd))
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
