package detect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/FACorreiaa/po-import/internal/domain/document"
	"github.com/FACorreiaa/po-import/internal/domain/extract"
	"github.com/FACorreiaa/po-import/internal/domain/profile"
)

// ErrUndetected is returned when no profile's keywords matched and no
// profile's line-item extraction produced rows.
var ErrUndetected = errors.New("vendor undetected")

// Result describes how the active vendor was chosen.
type Result struct {
	Profile *profile.Compiled

	// ByFallback is set when the vendor was chosen by running every
	// profile's extractor rather than by keyword match.
	ByFallback bool

	// KeywordHits counts keyword occurrences per vendor key, kept for
	// diagnostics even when detection succeeds.
	KeywordHits map[string]int
}

// Detector selects the active profile for a document. It is immutable
// and safe for concurrent use; build a new one per registry snapshot.
type Detector struct {
	registry *profile.Registry
	engine   *keywordEngine
}

// New builds a detector over a registry snapshot.
func New(reg *profile.Registry) *Detector {
	return &Detector{registry: reg, engine: newKeywordEngine(reg)}
}

// Detect chooses the vendor for a document. An explicit choice is used
// verbatim (it must exist in the registry). Otherwise the upper-cased
// text is scanned for keywords in fixed priority order; if nothing
// hits, every profile's line-item extractor runs and the strictly most
// productive one wins. Ties or an all-zero result yield ErrUndetected.
func (d *Detector) Detect(doc document.RawDocument, explicit string) (Result, error) {
	if explicit != "" {
		p, err := d.registry.Get(explicit)
		if err != nil {
			return Result{}, err
		}
		return Result{Profile: p}, nil
	}

	upper := strings.ToUpper(doc.Text)
	hits := d.engine.hits(upper)

	if p := d.engine.match(upper); p != nil {
		return Result{Profile: p, KeywordHits: hits}, nil
	}

	if p := d.mostProductive(doc); p != nil {
		return Result{Profile: p, ByFallback: true, KeywordHits: hits}, nil
	}

	return Result{KeywordHits: hits}, fmt.Errorf("%w: zero keyword hits across %d profiles and no extractable rows", ErrUndetected, d.registry.Len())
}

// mostProductive runs line-item extraction under every profile and
// returns the one with the strictly largest validated-row count. A tie
// for the lead, or zero rows everywhere, returns nil.
func (d *Detector) mostProductive(doc document.RawDocument) *profile.Compiled {
	var best *profile.Compiled
	bestCount := 0
	tied := false

	for _, p := range d.registry.All() {
		items, _ := extract.LineItems(p, doc)
		switch {
		case len(items) > bestCount:
			best, bestCount, tied = p, len(items), false
		case len(items) == bestCount && bestCount > 0:
			tied = true
		}
	}

	if tied || bestCount == 0 {
		return nil
	}
	return best
}
