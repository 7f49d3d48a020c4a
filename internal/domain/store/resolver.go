package store

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// nameKeyLimit bounds the forward-containment key so pathological
// extracted names (a whole address block) cannot defeat matching.
const nameKeyLimit = 40

// Resolution is the outcome of a store lookup. A miss is not an error:
// records are still emitted with the store unresolved.
type Resolution struct {
	StoreID string
	Name    string
	Matched bool
}

// Resolve matches an extracted site code and/or destination name
// against the mapping. Precedence: exact site-code match, then
// case-insensitive forward containment (mapping name contains the
// extracted name), then reverse containment (extracted name contains a
// mapping name). First row wins in each pass.
func (m *Mapping) Resolve(siteCode, name string) Resolution {
	if m == nil {
		return Resolution{}
	}

	if code := strings.TrimSpace(siteCode); code != "" {
		for _, e := range m.entries {
			if strings.EqualFold(strings.TrimSpace(e.SiteCode), code) {
				return Resolution{StoreID: e.StoreID, Name: e.Name, Matched: true}
			}
		}
	}

	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Resolution{}
	}
	shortKey := truncate(key, nameKeyLimit)

	for i, e := range m.entries {
		if m.loweredNames[i] != "" && strings.Contains(m.loweredNames[i], shortKey) {
			return Resolution{StoreID: e.StoreID, Name: e.Name, Matched: true}
		}
	}
	for i, e := range m.entries {
		if m.loweredNames[i] != "" && strings.Contains(key, m.loweredNames[i]) {
			return Resolution{StoreID: e.StoreID, Name: e.Name, Matched: true}
		}
	}

	return Resolution{}
}

// Suggestion is a ranked near-miss candidate for review tooling.
type Suggestion struct {
	Entry MappingEntry

	// Distance is the Levenshtein distance to the query; lower is
	// closer.
	Distance int
}

// Suggest returns up to n mapping rows ranked by similarity to the
// extracted name. It is advisory only — Resolve never applies fuzzy
// scores, so resolution stays deterministic.
func (m *Mapping) Suggest(name string, n int) []Suggestion {
	if m == nil || n <= 0 {
		return nil
	}
	query := strings.TrimSpace(name)
	if query == "" {
		return nil
	}

	ranks := fuzzy.RankFindNormalizedFold(query, m.names())

	suggestions := make([]Suggestion, 0, len(ranks))
	for _, r := range ranks {
		suggestions = append(suggestions, Suggestion{
			Entry:    m.entries[r.OriginalIndex],
			Distance: r.Distance,
		})
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Distance < suggestions[j].Distance
	})

	if len(suggestions) > n {
		suggestions = suggestions[:n]
	}
	return suggestions
}

func (m *Mapping) names() []string {
	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.Name
	}
	return names
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
