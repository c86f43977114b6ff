package mcpserver

import (
	"fmt"
	"strings"
	"time"

	"github.com/lepinkainen/vietnews-mcp/internal/news"
	"github.com/lepinkainen/vietnews-mcp/pkg/textutil"
)

// emptyResultWarning is returned as a normal text result when every feed
// failed or no valid (source, category) pair existed. Not an error.
const emptyResultWarning = "Không thể lấy tin tức nào lúc này. Vui lòng thử lại sau."

// summaryMaxRunes caps the summary shown per item in the digest.
const summaryMaxRunes = 150

const divider = "----------------------------------------"

// Headlines are rendered in Vietnam's timezone regardless of host tzdata.
var ict = time.FixedZone("ICT", 7*60*60)

// FormatDigest renders the aggregated items as a numbered, human-readable
// digest with one block per item.
func FormatDigest(items []news.Item) string {
	if len(items) == 0 {
		return emptyResultWarning
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tin tức Việt Nam mới nhất (%d tin)\n", len(items))

	for i, item := range items {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Title)
		fmt.Fprintf(&b, "   Nguồn: %s • %s\n", item.SourceName, item.Category)
		fmt.Fprintf(&b, "   Thời gian: %s\n", formatPublished(item.Published))
		fmt.Fprintf(&b, "   Liên kết: %s\n", item.Link)
		if item.Summary != "" {
			fmt.Fprintf(&b, "   %s\n", textutil.Truncate(item.Summary, summaryMaxRunes))
		}
		if i < len(items)-1 {
			b.WriteString("\n" + divider + "\n")
		}
	}

	return b.String()
}

// formatPublished renders a timestamp in ICT. The zero time means the feed
// carried a date we could not parse.
func formatPublished(t time.Time) string {
	if t.IsZero() {
		return "không rõ thời gian"
	}
	return t.In(ict).Format("15:04 02/01/2006")
}
