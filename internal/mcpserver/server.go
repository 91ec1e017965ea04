// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes schemacase capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemacase"
)

const serverInstructions = `schemacase MCP server: migrates Prisma schemas between casing conventions while keeping database names through @map and @@map.

Configuration: All defaults are configurable via SCHEMACASE_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- SCHEMACASE_CONFIG_FILE (default: .prisma-case-format) - convention config used when a call gives none
- SCHEMACASE_PLURALIZE (default: false) - pluralize list field names by default
- SCHEMACASE_USES_NEXT_AUTH (default: false) - keep NextAuth.js adapter models untouched by default
- SCHEMACASE_FORMAT (default: true) - align migrated schemas
- SCHEMACASE_CHANGE_LIMIT (default: 100) - default page size of the change log
- SCHEMACASE_MAX_INLINE_SIZE (default: 10485760) - maximum inline content in bytes

Workflow: call resolve_convention to check how an entity or field will be cased, then migrate with dry_run=true to preview before writing.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "schemacase", Version: schemacase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "migrate",
		Description: "Migrate a Prisma schema to a casing convention. Renames models, views, enums and fields, and adds, updates or removes @map/@@map so database names stay unchanged. The convention comes from a config file (YAML or JSON), inline config, or per-axis case overrides (pascal, camel, snake, optionally with ,plural or ,singular). Use dry_run=true to preview; the document is then returned inline. Without dry_run a file input is rewritten in place unless output is set. Use offset/limit to page through the change log.",
	}, handleMigrate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_convention",
		Description: "Resolve the effective convention for an entity, or for a field within it: the table, field and enum casing, the map casings, and whether pluralization or rewriting is disabled. Accepts the same convention inputs as migrate.",
	}, handleResolve)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format",
		Description: "Align the field columns of a Prisma schema and indent block bodies by two spaces, without renaming anything. Returns the document inline unless output is set.",
	}, handleFormat)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ChangeLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ChangeLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
