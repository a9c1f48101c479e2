// Package main provides the entry point for the mason CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	masonmcp "github.com/gorewood/mason/internal/mcp"
	"github.com/gorewood/mason/internal/output"
	"github.com/gorewood/mason/internal/templates"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run mason as a Model Context Protocol (MCP) server over stdio.

This exposes mason operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "mason": {
        "command": "mason",
        "args": ["serve"]
      }
    }
  }

Available tools: scaffold, stability, scan, templates`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := templates.Load()
			if err != nil {
				return output.NewSystemErrorWithCause("loading template library", err)
			}
			server := masonmcp.NewServer(buildVersion(), lib)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
