package news

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lepinkainen/vietnews-mcp/internal/registry"
)

// Fetcher retrieves the items of a single feed. Implementations must never
// fail the caller: any internal error degrades to an empty slice.
type Fetcher interface {
	Fetch(ctx context.Context, url, sourceName, category string) []Item
}

// Aggregator fans out one fetch per (source, category) pair and merges the
// results into a single recency-ordered list.
type Aggregator struct {
	registry *registry.Registry
	fetcher  Fetcher
}

// NewAggregator creates an aggregator over the given registry and fetcher.
func NewAggregator(reg *registry.Registry, fetcher Fetcher) *Aggregator {
	return &Aggregator{registry: reg, fetcher: fetcher}
}

// feedJob is one (source, category) pair resolved to a feed URL.
type feedJob struct {
	url        string
	sourceName string
	category   string
}

// Aggregate fetches every requested (source, category) pair concurrently,
// waits for all fetches to settle, then flattens, sorts newest-first and
// truncates to limit.
//
// Unknown source or category keys contribute no fetch and no error. The
// limit is trusted as-is; the tool layer clamps it before calling here.
func (a *Aggregator) Aggregate(ctx context.Context, sourceKeys, categoryKeys []string, limit int) []Item {
	jobs := a.resolveJobs(sourceKeys, categoryKeys)

	slog.Debug("Aggregating feeds", "pairs", len(jobs), "limit", limit)

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		items []Item
	)

	for _, job := range jobs {
		wg.Add(1)
		go func(job feedJob) {
			defer wg.Done()

			fetched := a.fetcher.Fetch(ctx, job.url, job.sourceName, job.category)
			if len(fetched) == 0 {
				return
			}

			mu.Lock()
			items = append(items, fetched...)
			mu.Unlock()
		}(job)
	}

	// Join barrier: every fetch completes (or internally gives up) before
	// the merge. There is no partial-results path.
	wg.Wait()

	SortByPublishedDesc(items)

	if len(items) > limit {
		items = items[:limit]
	}

	slog.Debug("Aggregation complete", "items", len(items))
	return items
}

// resolveJobs expands the requested keys into fetchable feed jobs,
// silently skipping pairs the registry does not know.
func (a *Aggregator) resolveJobs(sourceKeys, categoryKeys []string) []feedJob {
	var jobs []feedJob
	for _, sourceKey := range sourceKeys {
		src, ok := a.registry.Lookup(sourceKey)
		if !ok {
			continue
		}
		for _, categoryKey := range categoryKeys {
			url, ok := src.Categories[categoryKey]
			if !ok {
				continue
			}
			jobs = append(jobs, feedJob{url: url, sourceName: src.Name, category: categoryKey})
		}
	}
	return jobs
}
