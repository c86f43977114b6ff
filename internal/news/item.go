// Package news contains the aggregation core: the news item model and the
// concurrent fan-out that merges items from every requested feed.
package news

import (
	"sort"
	"time"
)

// Item is one normalized headline. Items live only for the duration of a
// single aggregation call; nothing is persisted.
type Item struct {
	Title      string    `json:"title"`
	Link       string    `json:"link"`
	Published  time.Time `json:"published_at"`
	SourceName string    `json:"source_name"` // display name, not the registry key
	Category   string    `json:"category"`    // category key used to fetch this item
	Summary    string    `json:"summary,omitempty"`
}

// SortByPublishedDesc orders items newest first. The sort is stable, so
// items with equal timestamps keep their arrival order. Items whose feed
// carried an unparsable date hold the zero time and end up last.
func SortByPublishedDesc(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Published.After(items[j].Published)
	})
}
