package preview

import (
	"fmt"
	"strings"
	"time"

	"github.com/lepinkainen/vietnews-mcp/internal/news"
	"github.com/lepinkainen/vietnews-mcp/pkg/textutil"
)

// FormatCompactListItem formats a single news item in compact list format
// Example: " 1. [VnExpress/tech] 09:30 - Cáp quang biển AAG gặp sự cố"
func FormatCompactListItem(index int, item news.Item) string {
	title := item.Title

	const maxTitleLength = 70
	title = textutil.Truncate(title, maxTitleLength)

	clock := "--:--"
	if !item.Published.IsZero() {
		clock = item.Published.Format("15:04")
	}

	return fmt.Sprintf("%2d. [%s/%s] %s - %s", index+1, item.SourceName, item.Category, clock, title)
}

// FormatDetailedItem formats a single news item with all metadata
func FormatDetailedItem(item news.Item) string {
	var b strings.Builder

	b.WriteString("═══════════════════════════════════════════════════════════════════════\n")
	b.WriteString(fmt.Sprintf("Title: %s\n", item.Title))
	b.WriteString(fmt.Sprintf("Source: %s\n", item.SourceName))
	b.WriteString(fmt.Sprintf("Category: %s\n", item.Category))

	if item.Link != "" {
		b.WriteString(fmt.Sprintf("Link: %s\n", item.Link))
	}

	if !item.Published.IsZero() {
		b.WriteString(fmt.Sprintf("Published: %s\n", formatTimeAgo(item.Published)))
	}

	if item.Summary != "" {
		wrapped := wrapText(item.Summary, 70)
		b.WriteString(fmt.Sprintf("\nSummary:\n%s\n", wrapped))
	}

	b.WriteString("═══════════════════════════════════════════════════════════════════════\n")

	return b.String()
}

// wrapText wraps text to the specified width, breaking at word boundaries
func wrapText(text string, width int) string {
	if width <= 0 {
		width = 70
	}

	var result strings.Builder
	var line strings.Builder
	lineLen := 0

	words := strings.Fields(text)
	for i, word := range words {
		wordLen := len([]rune(word))

		if lineLen > 0 && lineLen+1+wordLen > width {
			result.WriteString(line.String())
			result.WriteString("\n")
			line.Reset()
			lineLen = 0
		}

		if lineLen > 0 {
			line.WriteString(" ")
			lineLen++
		}

		line.WriteString(word)
		lineLen += wordLen

		if i == len(words)-1 {
			result.WriteString(line.String())
		}
	}

	return result.String()
}

// formatTimeAgo formats a time.Time as a human-readable "X ago" string
func formatTimeAgo(t time.Time) string {
	duration := time.Since(t)

	switch {
	case duration < time.Minute:
		return "just now"
	case duration < time.Hour:
		mins := int(duration.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case duration < 24*time.Hour:
		hours := int(duration.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case duration < 7*24*time.Hour:
		days := int(duration.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("2006-01-02")
	}
}
