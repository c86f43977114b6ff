// Package main provides the CLI entry point for vietnews-mcp.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lepinkainen/vietnews-mcp/internal/config"
	"github.com/lepinkainen/vietnews-mcp/internal/feed"
	"github.com/lepinkainen/vietnews-mcp/internal/mcpserver"
	"github.com/lepinkainen/vietnews-mcp/internal/news"
	"github.com/lepinkainen/vietnews-mcp/internal/preview"
	"github.com/lepinkainen/vietnews-mcp/internal/registry"
)

// CLI structure
var CLI struct {
	Config string `help:"Configuration file path" default:"config.yaml"`
	Debug  bool   `help:"Enable debug logging" default:"false"`

	Serve struct{} `cmd:"" default:"1" help:"Run the MCP server on stdio."`

	Preview struct {
		Sources    []string `help:"Source keys to include (default: all sources)"`
		Categories []string `help:"Category keys to include" default:"home"`
		Limit      int      `help:"Maximum number of items" default:"20"`
	} `cmd:"" help:"Fetch news once and browse the items interactively."`

	Sources struct{} `cmd:"" help:"Print the source catalog."`
}

func main() {
	ctx := kong.Parse(&CLI)

	// All logging goes to stderr; stdout is reserved for the MCP protocol.
	if CLI.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	} else {
		slog.SetLogLoggerLevel(slog.LevelInfo)
	}

	cfg, err := config.LoadConfig(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "path", CLI.Config, "error", err)
		os.Exit(1)
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		slog.Error("Failed to build source registry", "error", err)
		os.Exit(1)
	}

	aggregator := news.NewAggregator(reg, feed.NewFetcher(cfg))

	switch ctx.Command() {
	case "serve":
		serve(reg, aggregator)

	case "preview":
		previewNews(reg, aggregator)

	case "sources":
		printSources(reg)

	default:
		panic(ctx.Command())
	}
}

// buildRegistry returns the built-in catalog, extended from a sources file
// when one is configured.
func buildRegistry(cfg *config.Config) (*registry.Registry, error) {
	if cfg.SourcesFile == "" {
		return registry.Default(), nil
	}
	return registry.LoadFile(cfg.SourcesFile)
}

// serve runs the MCP server until the client disconnects. A transport
// failure here is the only fatal runtime error.
func serve(reg *registry.Registry, aggregator *news.Aggregator) {
	slog.Info("Starting vietnews-mcp server", "version", mcpserver.Version, "sources", len(reg.All()))

	srv := mcpserver.New(reg, aggregator)
	if err := srv.ServeStdio(); err != nil {
		slog.Error("MCP server terminated", "error", err)
		os.Exit(1)
	}
}

// previewNews fetches once and opens the TUI browser.
func previewNews(reg *registry.Registry, aggregator *news.Aggregator) {
	sources := CLI.Preview.Sources
	if len(sources) == 0 {
		sources = reg.Keys()
	}

	limit := CLI.Preview.Limit
	if limit < 1 {
		limit = 1
	}

	items := aggregator.Aggregate(context.Background(), sources, CLI.Preview.Categories, limit)
	if err := preview.Run(items); err != nil {
		slog.Error("Preview failed", "error", err)
		os.Exit(1)
	}
}

// printSources writes the catalog to stdout, one source per line.
func printSources(reg *registry.Registry) {
	for _, src := range reg.All() {
		fmt.Printf("%-12s %-12s %s\n", src.Key, src.Name, strings.Join(src.CategoryKeys(), ", "))
	}
}
