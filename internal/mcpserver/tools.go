package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lepinkainen/vietnews-mcp/internal/registry"
)

// Limit bounds for get_vietnamese_news. Values outside the range are
// clamped here, before the aggregator ever sees them.
const (
	minLimit     = 1
	maxLimit     = 100
	defaultLimit = 20
)

// defaultCategories is used when the caller does not pick any category.
var defaultCategories = []string{registry.CategoryHome}

// getNewsTool declares the get_vietnamese_news schema. The enums are built
// from the live registry so a supplemental sources file extends them too.
func (s *Server) getNewsTool() mcp.Tool {
	return mcp.NewTool("get_vietnamese_news",
		mcp.WithDescription("Lấy tin tức mới nhất từ các báo Việt Nam (VnExpress, Tuổi Trẻ, Thanh Niên, Dân Trí, VietnamNet). Fetches and merges the latest headlines from Vietnamese news outlets, newest first."),
		mcp.WithArray("sources",
			mcp.Description("News sources to include. Defaults to all sources."),
			mcp.Items(map[string]any{
				"type": "string",
				"enum": s.registry.Keys(),
			}),
		),
		mcp.WithArray("categories",
			mcp.Description("News categories to include. Defaults to [\"home\"]."),
			mcp.Items(map[string]any{
				"type": "string",
				"enum": s.registry.AllCategoryKeys(),
			}),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of news items to return."),
			mcp.Min(minLimit),
			mcp.Max(maxLimit),
			mcp.DefaultNumber(defaultLimit),
		),
	)
}

// listSourcesTool declares the list_news_sources schema (no parameters).
func (s *Server) listSourcesTool() mcp.Tool {
	return mcp.NewTool("list_news_sources",
		mcp.WithDescription("List the available Vietnamese news sources and the categories each one offers."),
	)
}

// handleGetNews runs the aggregation pipeline and renders the digest.
func (s *Server) handleGetNews(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	sources := stringSlice(args["sources"])
	if len(sources) == 0 {
		sources = s.registry.Keys()
	}

	categories := stringSlice(args["categories"])
	if len(categories) == 0 {
		categories = defaultCategories
	}

	limit := clampLimit(args["limit"])

	items := s.aggregator.Aggregate(ctx, sources, categories, limit)
	return mcp.NewToolResultText(FormatDigest(items)), nil
}

// sourceListing is one entry in the list_news_sources response.
type sourceListing struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

// handleListSources returns the registry contents in registry order.
func (s *Server) handleListSources(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sources := s.registry.All()
	listing := make([]sourceListing, 0, len(sources))
	for _, src := range sources {
		listing = append(listing, sourceListing{
			ID:         src.Key,
			Name:       src.Name,
			Categories: src.CategoryKeys(),
		})
	}

	data, err := json.MarshalIndent(listing, "", "  ")
	if err != nil {
		slog.Error("Failed to encode source listing", "error", err)
		return nil, fmt.Errorf("failed to encode source listing: %w", err)
	}

	return mcp.NewToolResultText(string(data)), nil
}

// stringSlice extracts a []string from a decoded JSON argument. Anything
// that is not an array of strings yields nil.
func stringSlice(arg any) []string {
	raw, ok := arg.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// clampLimit coerces the limit argument into [minLimit, maxLimit].
// Absent or non-numeric values become the default.
func clampLimit(arg any) int {
	num, ok := arg.(float64)
	if !ok {
		return defaultLimit
	}
	limit := int(num)
	if limit < minLimit {
		return minLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
