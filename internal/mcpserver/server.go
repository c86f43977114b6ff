// Package mcpserver exposes the news aggregation pipeline as MCP tools
// over stdio.
//
// Two tools are registered: get_vietnamese_news and list_news_sources.
// Responses are always a single plain-text content block; diagnostics go
// to slog (stderr) and never into the protocol stream. Unknown tool names
// are rejected by the MCP layer itself with an error naming the tool.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/lepinkainen/vietnews-mcp/internal/news"
	"github.com/lepinkainen/vietnews-mcp/internal/registry"
)

// Version is the server version reported during the MCP handshake.
const Version = "1.0.0"

// Server wires the registry and aggregator to an MCP stdio server.
type Server struct {
	registry   *registry.Registry
	aggregator *news.Aggregator
	mcp        *server.MCPServer
}

// New creates the MCP server and registers both tools.
func New(reg *registry.Registry, aggregator *news.Aggregator) *Server {
	s := &Server{
		registry:   reg,
		aggregator: aggregator,
		mcp: server.NewMCPServer(
			"vietnews-mcp",
			Version,
			server.WithToolCapabilities(false),
		),
	}

	s.mcp.AddTool(s.getNewsTool(), s.handleGetNews)
	s.mcp.AddTool(s.listSourcesTool(), s.handleListSources)

	return s
}

// ServeStdio runs the server on stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}
