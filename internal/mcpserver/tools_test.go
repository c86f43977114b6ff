package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lepinkainen/vietnews-mcp/internal/news"
	"github.com/lepinkainen/vietnews-mcp/internal/registry"
)

// fakeFetcher serves canned items per URL so no handler test touches the network.
type fakeFetcher struct {
	mu    sync.Mutex
	items map[string][]news.Item
	calls int
}

func (f *fakeFetcher) Fetch(_ context.Context, url, sourceName, category string) []news.Item {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	out := make([]news.Item, 0, len(f.items[url]))
	for _, item := range f.items[url] {
		item.SourceName = sourceName
		item.Category = category
		out = append(out, item)
	}
	return out
}

func newTestServer(fetcher news.Fetcher) *Server {
	reg := registry.New([]registry.Source{
		{Key: "A", Name: "Báo A", Categories: map[string]string{"home": "https://a.example/home.rss"}},
		{Key: "B", Name: "Báo B", Categories: map[string]string{"home": "https://b.example/home.rss", "tech": "https://b.example/tech.rss"}},
	})
	return New(reg, news.NewAggregator(reg, fetcher))
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("result has %d content blocks, want 1", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content block is %T, want mcp.TextContent", result.Content[0])
	}
	return text.Text
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name string
		arg  any
		want int
	}{
		{"absent", nil, defaultLimit},
		{"non-numeric", "năm mươi", defaultLimit},
		{"in range", float64(50), 50},
		{"minimum", float64(1), 1},
		{"below minimum", float64(0), minLimit},
		{"negative", float64(-3), minLimit},
		{"maximum", float64(100), 100},
		{"above maximum", float64(500), maxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampLimit(tt.arg); got != tt.want {
				t.Errorf("clampLimit(%v) = %d, want %d", tt.arg, got, tt.want)
			}
		})
	}
}

func TestStringSlice(t *testing.T) {
	tests := []struct {
		name string
		arg  any
		want int
	}{
		{"absent", nil, 0},
		{"not an array", "vnexpress", 0},
		{"array of strings", []any{"a", "b"}, 2},
		{"mixed array keeps strings", []any{"a", 1.0, "b"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stringSlice(tt.arg); len(got) != tt.want {
				t.Errorf("stringSlice(%v) = %v, want %d entries", tt.arg, got, tt.want)
			}
		})
	}
}

func TestHandleGetNews_Defaults(t *testing.T) {
	fetcher := &fakeFetcher{items: map[string][]news.Item{
		"https://a.example/home.rss": {{Title: "tin A", Published: time.Now()}},
		"https://b.example/home.rss": {{Title: "tin B", Published: time.Now()}},
	}}
	srv := newTestServer(fetcher)

	result, err := srv.handleGetNews(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("handleGetNews() error = %v", err)
	}

	// Defaults: all sources, home category only -> 2 fetches, no tech fetch.
	if fetcher.calls != 2 {
		t.Errorf("fetch calls = %d, want 2", fetcher.calls)
	}

	digest := resultText(t, result)
	if !strings.Contains(digest, "tin A") || !strings.Contains(digest, "tin B") {
		t.Errorf("digest missing items:\n%s", digest)
	}
	if !strings.Contains(digest, "2 tin") {
		t.Errorf("digest header wrong:\n%s", digest)
	}
}

func TestHandleGetNews_FiltersAndLimit(t *testing.T) {
	fetcher := &fakeFetcher{items: map[string][]news.Item{
		"https://b.example/tech.rss": {
			{Title: "mới", Published: time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)},
			{Title: "cũ", Published: time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)},
		},
	}}
	srv := newTestServer(fetcher)

	result, err := srv.handleGetNews(context.Background(), callRequest(map[string]any{
		"sources":    []any{"B"},
		"categories": []any{"tech"},
		"limit":      float64(1),
	}))
	if err != nil {
		t.Fatalf("handleGetNews() error = %v", err)
	}

	if fetcher.calls != 1 {
		t.Errorf("fetch calls = %d, want 1", fetcher.calls)
	}

	digest := resultText(t, result)
	if !strings.Contains(digest, "mới") {
		t.Errorf("digest missing newest item:\n%s", digest)
	}
	if strings.Contains(digest, "cũ") {
		t.Errorf("digest contains item beyond limit:\n%s", digest)
	}
}

func TestHandleGetNews_AllFeedsFailing(t *testing.T) {
	srv := newTestServer(&fakeFetcher{items: map[string][]news.Item{}})

	result, err := srv.handleGetNews(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("handleGetNews() error = %v, failing feeds must not be an error", err)
	}

	if got := resultText(t, result); got != emptyResultWarning {
		t.Errorf("digest = %q, want warning %q", got, emptyResultWarning)
	}
}

func TestHandleListSources(t *testing.T) {
	srv := newTestServer(&fakeFetcher{})

	result, err := srv.handleListSources(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handleListSources() error = %v", err)
	}

	var listing []sourceListing
	if err := json.Unmarshal([]byte(resultText(t, result)), &listing); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}

	if len(listing) != 2 {
		t.Fatalf("listing has %d sources, want 2", len(listing))
	}
	// Registry insertion order preserved.
	if listing[0].ID != "A" || listing[1].ID != "B" {
		t.Errorf("listing order = %q, %q; want A, B", listing[0].ID, listing[1].ID)
	}
	if listing[0].Name != "Báo A" {
		t.Errorf("listing[0].Name = %q, want %q", listing[0].Name, "Báo A")
	}
	wantCats := []string{"home", "tech"}
	if len(listing[1].Categories) != len(wantCats) {
		t.Fatalf("listing[1].Categories = %v, want %v", listing[1].Categories, wantCats)
	}
	for i, cat := range wantCats {
		if listing[1].Categories[i] != cat {
			t.Errorf("listing[1].Categories[%d] = %q, want %q", i, listing[1].Categories[i], cat)
		}
	}
}

func TestToolSchemas(t *testing.T) {
	srv := newTestServer(&fakeFetcher{})

	newsTool := srv.getNewsTool()
	if newsTool.Name != "get_vietnamese_news" {
		t.Errorf("news tool name = %q", newsTool.Name)
	}
	for _, prop := range []string{"sources", "categories", "limit"} {
		if _, ok := newsTool.InputSchema.Properties[prop]; !ok {
			t.Errorf("news tool schema missing property %q", prop)
		}
	}

	listTool := srv.listSourcesTool()
	if listTool.Name != "list_news_sources" {
		t.Errorf("list tool name = %q", listTool.Name)
	}
	if len(listTool.InputSchema.Properties) != 0 {
		t.Errorf("list tool should declare no properties, got %v", listTool.InputSchema.Properties)
	}
}
