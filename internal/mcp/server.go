// Package mcp provides a Model Context Protocol server for mason.
// It exposes the scaffold, stability, and scan operations as MCP tools
// that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/mason/internal/scaffold"
)

// NewServer creates an MCP server with all mason tools registered.
func NewServer(version string, lib scaffold.Library) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "mason",
		Version: version,
	}, nil)
	registerTools(server, lib)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools. Scaffolding is
// idempotent: re-running overwrites the same files rather than duplicating.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all mason tools to the server.
func registerTools(server *mcp.Server, lib scaffold.Library) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "scaffold",
		Description: "Generate a feature module from a named architecture pattern. Writes the pattern's files under the output root with the feature name substituted throughout.",
		Annotations: writeAnnotations(),
	}, handleScaffold(lib))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "stability",
		Description: "Analyze compiler stability reports for a module. Returns stable/unstable counts, skippability, and a ranked issue list with remediation hints.",
		Annotations: readOnlyAnnotations(),
	}, handleStability())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan",
		Description: "Scan the given files (or the currently staged files) for forbidden patterns. Returns the match list and the Clean/Blocked verdict.",
		Annotations: readOnlyAnnotations(),
	}, handleScan())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "templates",
		Description: "List the registered scaffold pattern variants and the files each one generates.",
		Annotations: readOnlyAnnotations(),
	}, handleTemplates(lib))
}
