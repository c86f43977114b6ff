// Package registry holds the static catalog of Vietnamese news sources.
//
// The catalog maps a short source key (e.g. "vnexpress") to a display name
// and a set of category feeds. It is built once at startup and read-only
// afterwards, so no locking is needed.
package registry

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/vietnews-mcp/pkg/urlutils"
)

// Source describes one news outlet and its category feeds.
type Source struct {
	Key        string            `yaml:"key"`
	Name       string            `yaml:"name"`
	Categories map[string]string `yaml:"categories"` // category key -> feed URL
}

// CategoryKeys returns the source's category keys in sorted order.
func (s Source) CategoryKeys() []string {
	keys := make([]string, 0, len(s.Categories))
	for key := range s.Categories {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Registry is an ordered, immutable collection of sources.
type Registry struct {
	sources []Source
	byKey   map[string]int
}

// New builds a registry from the given sources, preserving their order.
func New(sources []Source) *Registry {
	r := &Registry{
		sources: sources,
		byKey:   make(map[string]int, len(sources)),
	}
	for i, src := range sources {
		r.byKey[src.Key] = i
	}
	return r
}

// Lookup returns the source for key. Missing keys are not an error.
func (r *Registry) Lookup(key string) (Source, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return Source{}, false
	}
	return r.sources[i], true
}

// All returns every source in registry order.
func (r *Registry) All() []Source {
	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// Keys returns every source key in registry order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.sources))
	for i, src := range r.sources {
		keys[i] = src.Key
	}
	return keys
}

// AllCategoryKeys returns the union of category keys across all sources,
// sorted for stable schema output.
func (r *Registry) AllCategoryKeys() []string {
	seen := make(map[string]struct{})
	for _, src := range r.sources {
		for key := range src.Categories {
			seen[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// sourcesFile is the on-disk shape of a supplemental sources file.
type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadFile parses a YAML sources file and returns a registry containing the
// built-in catalog followed by the file's sources. Entries with a missing
// key, a duplicate key or an invalid feed URL are rejected up front so a
// typo in the file surfaces at startup rather than as a silent dead feed.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	sources := Builtin()
	seen := make(map[string]struct{}, len(sources))
	for _, src := range sources {
		seen[src.Key] = struct{}{}
	}

	for _, src := range file.Sources {
		if src.Key == "" || src.Name == "" {
			return nil, fmt.Errorf("source entry missing key or name: %+v", src)
		}
		if _, dup := seen[src.Key]; dup {
			return nil, fmt.Errorf("duplicate source key %q", src.Key)
		}
		if len(src.Categories) == 0 {
			return nil, fmt.Errorf("source %q has no categories", src.Key)
		}
		for category, feedURL := range src.Categories {
			if !urlutils.IsValidFeedURL(feedURL) {
				return nil, fmt.Errorf("source %q category %q has invalid feed URL %q", src.Key, category, feedURL)
			}
		}
		seen[src.Key] = struct{}{}
		sources = append(sources, src)
	}

	return New(sources), nil
}

// Default returns a registry with only the built-in catalog.
func Default() *Registry {
	return New(Builtin())
}
