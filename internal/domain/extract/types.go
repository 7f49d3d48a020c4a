// Package extract pulls header metadata and order line items out of a
// raw document using a vendor profile's patterns. Extraction is pure:
// a stage that finds nothing yields empty fields or zero rows, never an
// error — only diagnostics reflect what was dropped.
package extract

import "github.com/shopspring/decimal"

// HeaderFields holds the scalar metadata recovered from a document.
// Dates are ISO 8601 (yyyy-mm-dd) when one of the accepted formats
// parsed, and the verbatim document value otherwise, so downstream
// consumers see the unparsed value rather than losing it. Absent
// fields are empty strings.
type HeaderFields struct {
	OrderID      string
	OrderDate    string
	DeliveryDate string
	DeliveryTime string

	// SiteCode is the short numeric destination token, when the store
	// pattern yields one.
	SiteCode string

	// StoreName is the raw destination text after profile cleanup.
	StoreName string
}

// LineItem is one validated product row. Quantity is always positive;
// UnitPrice is positive when HasPrice is set and zero otherwise
// (vendors whose template carries no price).
type LineItem struct {
	ItemID      string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	HasPrice    bool
}

// DropStats tallies candidate rows discarded during extraction. Rows
// are dropped, never emitted with fabricated values.
type DropStats struct {
	MissingItemID int
	BadQuantity   int
	BadPrice      int
	FooterRows    int
}

// Total returns the number of dropped candidate rows.
func (d DropStats) Total() int {
	return d.MissingItemID + d.BadQuantity + d.BadPrice + d.FooterRows
}

func (d *DropStats) add(other DropStats) {
	d.MissingItemID += other.MissingItemID
	d.BadQuantity += other.BadQuantity
	d.BadPrice += other.BadPrice
	d.FooterRows += other.FooterRows
}
