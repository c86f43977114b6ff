// Package feed fetches and normalizes a single RSS feed.
package feed

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/lepinkainen/vietnews-mcp/internal/config"
	"github.com/lepinkainen/vietnews-mcp/internal/news"
	"github.com/lepinkainen/vietnews-mcp/pkg/textutil"
)

// placeholderTitle is used when an upstream entry has no title at all.
const placeholderTitle = "Không có tiêu đề"

// Fetcher retrieves one RSS feed per call. It satisfies news.Fetcher: a
// failing feed logs a diagnostic line and returns an empty slice, never an
// error, so one dead outlet cannot abort the whole aggregation.
type Fetcher struct {
	client       *http.Client
	userAgent    string
	timeout      time.Duration
	perFeedLimit int
	now          func() time.Time
}

// NewFetcher builds a fetcher from the application configuration.
func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		client:       &http.Client{Timeout: cfg.Fetch.Timeout},
		userAgent:    cfg.Fetch.UserAgent,
		timeout:      cfg.Fetch.Timeout,
		perFeedLimit: cfg.Fetch.PerFeedLimit,
		now:          time.Now,
	}
}

// Fetch retrieves and parses the feed at url, returning at most the
// configured number of entries in feed order. Each item carries the given
// sourceName and category. Exactly one request is made; there is no retry.
func (f *Fetcher) Fetch(ctx context.Context, url, sourceName, category string) []news.Item {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parser := gofeed.NewParser()
	parser.Client = f.client
	parser.UserAgent = f.userAgent

	parsed, err := parser.ParseURLWithContext(url, ctx)
	if err != nil {
		slog.Error("Failed to fetch feed", "url", url, "source", sourceName, "category", category, "error", err)
		return nil
	}

	entries := parsed.Items
	if len(entries) > f.perFeedLimit {
		entries = entries[:f.perFeedLimit]
	}

	items := make([]news.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, news.Item{
			Title:      titleOrPlaceholder(entry.Title),
			Link:       entry.Link,
			Published:  f.publishedTime(entry),
			SourceName: sourceName,
			Category:   category,
			Summary:    textutil.StripHTML(entry.Description),
		})
	}

	slog.Debug("Fetched feed", "url", url, "items", len(items))
	return items
}

func titleOrPlaceholder(title string) string {
	title = textutil.CollapseWhitespace(title)
	if title == "" {
		return placeholderTitle
	}
	return title
}

// publishedTime normalizes an entry's timestamp. A missing date defaults to
// the fetch time. A date string that is present but unparsable yields the
// zero time, which sorts to the end of the merged list.
func (f *Fetcher) publishedTime(entry *gofeed.Item) time.Time {
	if entry.PublishedParsed != nil {
		return *entry.PublishedParsed
	}
	if entry.UpdatedParsed != nil {
		return *entry.UpdatedParsed
	}
	if entry.Published == "" && entry.Updated == "" {
		return f.now()
	}
	return time.Time{}
}
