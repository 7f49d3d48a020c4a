// Package detect chooses the active vendor profile for a document,
// by keyword scan first and by extractor productivity when the
// document carries no distinguishing banner text.
package detect

import (
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/FACorreiaa/po-import/internal/domain/profile"
)

// keywordEngine matches every profile's keyword set against a document
// in a single pass using Aho-Corasick. The matcher is built once per
// registry snapshot and shared read-only afterwards.
type keywordEngine struct {
	matcher *ahocorasick.Matcher

	// vendorFor maps pattern index to the owning profile.
	vendorFor []*profile.Compiled

	// keywords keeps the upper-cased patterns for hit counting.
	keywords []string
}

func newKeywordEngine(reg *profile.Registry) *keywordEngine {
	e := &keywordEngine{}

	var patterns [][]byte
	for _, p := range reg.All() {
		for _, kw := range p.DetectKeywords {
			upper := strings.ToUpper(strings.TrimSpace(kw))
			if upper == "" {
				continue
			}
			patterns = append(patterns, []byte(upper))
			e.vendorFor = append(e.vendorFor, p)
			e.keywords = append(e.keywords, upper)
		}
	}

	if len(patterns) > 0 {
		e.matcher = ahocorasick.NewMatcher(patterns)
	}
	return e
}

// match returns the matching profile with the lowest priority value,
// or nil when no keyword hits. Priority order is fixed by the
// registry, independent of keyword position in the text.
func (e *keywordEngine) match(upperText string) *profile.Compiled {
	if e.matcher == nil || upperText == "" {
		return nil
	}

	var best *profile.Compiled
	for _, idx := range e.matcher.Match([]byte(upperText)) {
		if idx < 0 || idx >= len(e.vendorFor) {
			continue
		}
		p := e.vendorFor[idx]
		if best == nil || p.Priority < best.Priority {
			best = p
		}
	}
	return best
}

// hits counts keyword occurrences per vendor, for diagnostics.
func (e *keywordEngine) hits(upperText string) map[string]int {
	counts := make(map[string]int, len(e.vendorFor))
	for _, p := range e.vendorFor {
		if _, ok := counts[p.Key]; !ok {
			counts[p.Key] = 0
		}
	}
	for i, kw := range e.keywords {
		if n := strings.Count(upperText, kw); n > 0 {
			counts[e.vendorFor[i].Key] += n
		}
	}
	return counts
}
