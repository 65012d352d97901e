package templates

import (
	"github.com/sahilm/fuzzy"
	"sort"
	"strings"
)

// Filter returns the names in catalog that fuzzy-match query,
// in catalog order. An empty query matches everything.
func Filter(catalog []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return catalog
	}

	matches := fuzzy.Find(query, catalog)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Index < matches[j].Index
	})

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Str)
	}
	return names
}
