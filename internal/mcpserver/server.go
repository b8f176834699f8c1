// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes OpenAPI 2.0 to IR conversion as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oas2ir"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oas2ir MCP server: converts OpenAPI 2.0 (Swagger) documents into a language-neutral service IR.

Configuration: All defaults are configurable via OAS2IR_MCP_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OAS2IR_MCP_MAX_INPUT_SIZE (default: 10485760) maximum document size in bytes
- OAS2IR_MCP_INCLUDE_VIOLATIONS (default: true) list violations in convert output
- OAS2IR_MCP_CACHE_ENABLED (default: true) disable conversion caching entirely
- OAS2IR_MCP_CACHE_FILE_TTL (default: 15m) cache TTL for local files
- OAS2IR_MCP_CACHE_CONTENT_TTL (default: 15m) cache TTL for inline content

Caching: Conversions are cached per session. File entries use path+mtime as key (auto-invalidated on change). Inline content is keyed by its SHA-256 hash. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		results.runSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oas2ir", Version: oas2ir.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert an OpenAPI 2.0 (Swagger) document into the service IR: interfaces with methods and HTTP bindings, object types, enums, and security options, every value carrying its source range. Returns summary counts, the violations found (malformed enum description extensions, type name collisions) and the IR JSON. Use output to write the IR to a file instead of returning it inline, and compact=true to drop indentation on large documents.",
	}, handleConvert)
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
