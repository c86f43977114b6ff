package preview

import (
	"strings"
	"testing"
	"time"

	"github.com/lepinkainen/vietnews-mcp/internal/news"
)

func TestFormatCompactListItem(t *testing.T) {
	item := news.Item{
		Title:      "Cáp quang biển AAG gặp sự cố",
		SourceName: "VnExpress",
		Category:   "tech",
		Published:  time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC),
	}

	got := FormatCompactListItem(0, item)
	if !strings.HasPrefix(got, " 1. ") {
		t.Errorf("line should start with the 1-based index: %q", got)
	}
	for _, want := range []string{"[VnExpress/tech]", "09:30", "Cáp quang biển AAG gặp sự cố"} {
		if !strings.Contains(got, want) {
			t.Errorf("line %q missing %q", got, want)
		}
	}
}

func TestFormatCompactListItem_NoDate(t *testing.T) {
	got := FormatCompactListItem(2, news.Item{Title: "x", SourceName: "s", Category: "home"})
	if !strings.Contains(got, "--:--") {
		t.Errorf("line %q should show a clock placeholder for undated items", got)
	}
}

func TestFormatDetailedItem(t *testing.T) {
	item := news.Item{
		Title:      "Tiêu đề",
		Link:       "https://example.vn/a.html",
		SourceName: "Dân Trí",
		Category:   "world",
		Published:  time.Now().Add(-2 * time.Hour),
		Summary:    "Tóm tắt nội dung bản tin.",
	}

	got := FormatDetailedItem(item)
	for _, want := range []string{"Title: Tiêu đề", "Source: Dân Trí", "Category: world", "Link: https://example.vn/a.html", "2 hours ago", "Tóm tắt nội dung bản tin."} {
		if !strings.Contains(got, want) {
			t.Errorf("detail view missing %q:\n%s", want, got)
		}
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("aaa bbb ccc ddd", 7)
	want := "aaa bbb\nccc ddd"
	if got != want {
		t.Errorf("wrapText() = %q, want %q", got, want)
	}
}
