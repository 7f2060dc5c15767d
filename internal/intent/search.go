package intent

import "github.com/sahilm/fuzzy"

// String implements fuzzy.Source.
func (c Catalog) String(i int) string {
	return c[i].Intent
}

// Len implements fuzzy.Source.
func (c Catalog) Len() int {
	return len(c)
}

// Search ranks rules by fuzzy similarity of query to their intent name,
// best first. An empty query returns the catalog in order.
func (c Catalog) Search(query string) []Rule {
	if query == "" {
		out := make([]Rule, len(c))
		copy(out, c)
		return out
	}

	matches := fuzzy.FindFrom(query, c)
	out := make([]Rule, len(matches))
	for i, m := range matches {
		out[i] = c[m.Index]
	}
	return out
}
