// Package assemble composes header fields, validated line items and
// the store resolution into output records, and tallies per-document
// diagnostics.
package assemble

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/po-import/internal/domain/extract"
	"github.com/FACorreiaa/po-import/internal/domain/store"
)

// OutputRecord is one import-ready order line. StoreID and OrderID may
// be empty (unresolved/absent); ItemID and Quantity are always set —
// no record exists without them.
type OutputRecord struct {
	StoreID   string
	StoreName string
	OrderID   string

	// OrderDate is the delivery date when present, the order date
	// otherwise, empty when neither was found. ISO 8601 when parsed.
	OrderDate string

	ItemID   string
	Quantity decimal.Decimal

	// UnitPrice is meaningful only when HasPrice is set; vendors whose
	// import template carries no price leave it unset.
	UnitPrice decimal.Decimal
	HasPrice  bool
}

// Diagnostics summarizes one document run for caller visibility.
type Diagnostics struct {
	RunID    uuid.UUID
	Document string
	Vendor   string

	// ByFallback marks vendors chosen by extractor productivity
	// rather than keyword match.
	ByFallback  bool
	KeywordHits map[string]int

	Emitted         int
	MissingItemID   int
	MissingQuantity int
	MissingPrice    int
	FooterRows      int
	StoreUnresolved int
}

// Records joins the extraction outputs into output records. Line items
// already satisfy the extractor's validity rules, so no further numeric
// filtering happens here; only header and store fields are joined in
// and the tally recomputed.
func Records(header extract.HeaderFields, items []extract.LineItem, res store.Resolution, drops extract.DropStats) ([]OutputRecord, Diagnostics) {
	diag := Diagnostics{
		RunID:           uuid.New(),
		MissingItemID:   drops.MissingItemID,
		MissingQuantity: drops.BadQuantity,
		MissingPrice:    drops.BadPrice,
		FooterRows:      drops.FooterRows,
	}

	orderDate := header.DeliveryDate
	if orderDate == "" {
		orderDate = header.OrderDate
	}

	// Best available name: the canonical mapping name when resolved,
	// the extracted text otherwise.
	storeName := res.Name
	if storeName == "" {
		storeName = header.StoreName
	}

	records := make([]OutputRecord, 0, len(items))
	for _, item := range items {
		rec := OutputRecord{
			StoreID:   res.StoreID,
			StoreName: storeName,
			OrderID:   header.OrderID,
			OrderDate: orderDate,
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			HasPrice:  item.HasPrice,
		}
		if !res.Matched {
			diag.StoreUnresolved++
		}
		records = append(records, rec)
	}

	diag.Emitted = len(records)
	return records, diag
}
