package extract

import (
	"regexp"
	"strings"

	"github.com/FACorreiaa/po-import/internal/domain/document"
	"github.com/FACorreiaa/po-import/internal/domain/profile"
)

// Column-header guessing, used when a table's headers match none of the
// profile's aliases. Mirrors the spellings seen across vendor document
// revisions.
var (
	qtyHeaderRe   = regexp.MustCompile(`(?i)\b(qty|quantity)\b`)
	priceHeaderRe = regexp.MustCompile(`(?i)(unit\s*price|price)`)

	// footerRe matches summary rows appended below the item grid.
	footerRe = regexp.MustCompile(`(?i)^(total|totals|合计)$`)

	// headerNoiseRe matches rows that repeat the column headers inside
	// the data body (page breaks).
	headerNoiseRe = regexp.MustCompile(`(?i)^(item|sku|code|description|qty|quantity|price)$`)
)

// Fallback identifier column spellings, tried when the profile aliases
// miss. Order matters: the first existing column wins.
var genericIDColumns = []string{
	"ItemNo", "Item #", "Item No.", "ITEM NO", "Article Number",
	"Article", "SKU", "PLU", "GTIN", "UPC", "Barcode",
}

var genericDescColumns = []string{
	"Item", "Description", "DESCRIPTION", "Product Description",
}

// tableStrategy interprets the document's recovered tables. Each table
// contributes rows independently; a table whose columns cannot be
// located contributes nothing.
func tableStrategy(p *profile.Compiled, doc document.RawDocument, stats *DropStats) []LineItem {
	if len(doc.Tables) == 0 {
		return nil
	}

	var items []LineItem
	for _, table := range doc.Tables {
		items = append(items, coerceTable(p, table, stats)...)
	}
	return items
}

// coerceTable locates the identifier, description, quantity and price
// columns and validates each data row.
func coerceTable(p *profile.Compiled, t document.Table, stats *DropStats) []LineItem {
	if len(t.Headers) == 0 || len(t.Rows) == 0 {
		return nil
	}

	idCol := findColumn(t.Headers, p.Columns.ItemID, genericIDColumns)
	descCol := findColumn(t.Headers, p.Columns.Description, genericDescColumns)
	qtyCol := findColumn(t.Headers, p.Columns.Quantity, nil)
	if qtyCol < 0 {
		qtyCol = guessColumn(t.Headers, qtyHeaderRe)
	}
	priceCol := findColumn(t.Headers, p.Columns.Price, nil)
	if priceCol < 0 {
		priceCol = guessColumn(t.Headers, priceHeaderRe)
	}

	// Without an identifier or a quantity column the grid cannot yield
	// usable rows.
	if idCol < 0 || qtyCol < 0 {
		return nil
	}
	if descCol < 0 {
		descCol = 0
	}

	var items []LineItem
	for _, row := range t.Rows {
		desc := t.Cell(row, descCol)
		id := t.Cell(row, idCol)

		// Footer/summary and repeated-header rows are non-data.
		if footerRe.MatchString(desc) || footerRe.MatchString(id) || headerNoiseRe.MatchString(desc) {
			stats.FooterRows++
			continue
		}
		if desc == "" && id == "" {
			continue
		}

		item, ok := validateRow(p, candidateRow{
			itemID:      id,
			description: desc,
			rawQty:      t.Cell(row, qtyCol),
			rawPrice:    t.Cell(row, priceCol),
		}, stats)
		if ok {
			items = append(items, item)
		}
	}
	return items
}

// findColumn returns the index of the first header matching the
// profile aliases, falling back to the generic candidate spellings.
// Matching is case-insensitive on trimmed headers.
func findColumn(headers []string, aliases, generic []string) int {
	for _, set := range [][]string{aliases, generic} {
		for _, want := range set {
			for i, h := range headers {
				if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(want)) {
					return i
				}
			}
		}
	}
	return -1
}

// guessColumn returns the first header the pattern matches, or -1.
func guessColumn(headers []string, re *regexp.Regexp) int {
	for i, h := range headers {
		if re.MatchString(h) {
			return i
		}
	}
	return -1
}
