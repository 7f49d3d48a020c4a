package extract

import (
	"strings"

	"github.com/FACorreiaa/po-import/internal/domain/document"
	"github.com/FACorreiaa/po-import/internal/domain/profile"
	"github.com/FACorreiaa/po-import/pkg/numeric"
)

// Strategy is one pure extraction approach. Strategies report dropped
// candidates through stats; they never fail.
type Strategy func(p *profile.Compiled, doc document.RawDocument, stats *DropStats) []LineItem

// strategies is the fixed cascade: the structured-table interpretation
// first, the line-pattern scan as fallback. Evaluation stops at the
// first strategy yielding at least one validated row.
var strategies = []Strategy{tableStrategy, lineStrategy}

// LineItems runs the strategy cascade for a document and returns the
// validated rows together with the drop tally.
func LineItems(p *profile.Compiled, doc document.RawDocument) ([]LineItem, DropStats) {
	var total DropStats
	for _, s := range strategies {
		var stats DropStats
		items := s(p, doc, &stats)
		total.add(stats)
		if len(items) > 0 {
			return items, total
		}
	}
	return nil, total
}

// lineStrategy scans the document text line by line against the
// profile's anchored pattern. Non-matching lines are prose, headers or
// page furniture — skipped silently, not counted as drops.
func lineStrategy(p *profile.Compiled, doc document.RawDocument, stats *DropStats) []LineItem {
	if !p.HasLineStrategy() || doc.Text == "" {
		return nil
	}

	var items []LineItem
	for _, line := range strings.Split(doc.Text, "\n") {
		m := p.Line.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		group := func(name string) string {
			if idx := p.LineGroup(name); idx >= 0 && idx < len(m) {
				return strings.TrimSpace(m[idx])
			}
			return ""
		}

		item, ok := validateRow(p, candidateRow{
			itemID:      group(profile.GroupItem),
			description: group(profile.GroupDesc),
			rawQty:      group(profile.GroupQty),
			rawPrice:    group(profile.GroupPrice),
		}, stats)
		if ok {
			items = append(items, item)
		}
	}
	return items
}

// candidateRow is an unvalidated row produced by either strategy.
type candidateRow struct {
	itemID      string
	description string
	rawQty      string
	rawPrice    string
}

// validateRow applies the common validity rules: non-empty identifier,
// strictly positive quantity, and strictly positive price for vendors
// whose template requires one. Invalid rows are tallied and dropped.
func validateRow(p *profile.Compiled, row candidateRow, stats *DropStats) (LineItem, bool) {
	if row.itemID == "" {
		stats.MissingItemID++
		return LineItem{}, false
	}

	qty, ok := numeric.NormalizePositive(row.rawQty)
	if !ok {
		stats.BadQuantity++
		return LineItem{}, false
	}

	item := LineItem{
		ItemID:      row.itemID,
		Description: row.description,
		Quantity:    qty,
	}

	if p.RequiresPrice {
		price, ok := numeric.NormalizePositive(row.rawPrice)
		if !ok {
			stats.BadPrice++
			return LineItem{}, false
		}
		item.UnitPrice = price
		item.HasPrice = true
	} else if price, ok := numeric.NormalizePositive(row.rawPrice); ok {
		// Price not required but present and sane; carry it for
		// callers that want it.
		item.UnitPrice = price
		item.HasPrice = true
	}

	return item, true
}
