// Package mcp provides a Model Context Protocol server for dayone2jekyll.
// It exposes archive listing and journal conversion as MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// NewServer creates an MCP server with all dayone2jekyll tools registered.
// Conversion progress is logged to logger; stdout belongs to the protocol.
func NewServer(version string, logger zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "dayone2jekyll",
		Version: version,
	}, nil)
	registerTools(server, logger)
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

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all dayone2jekyll tools to the server.
func registerTools(server *mcp.Server, logger zerolog.Logger) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_journals",
		Description: "List the journal documents (*.json) inside a Day One export archive, in archive order.",
		Annotations: readOnlyAnnotations(),
	}, handleListJournals)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_entries",
		Description: "List a journal's entries sorted by creation date, with title, local date and tags.",
		Annotations: readOnlyAnnotations(),
	}, handleListEntries)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_journal",
		Description: "Write every entry of a journal as a Jekyll post under <site_dir>/_posts. Never overwrites existing posts; name collisions get -2, -3, ... suffixes.",
		Annotations: writeAnnotations(),
	}, handleConvertJournal(logger))
}
