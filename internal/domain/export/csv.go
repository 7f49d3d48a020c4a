// Package export writes assembled records into the two downstream
// import templates: DCorder (with a price column) and CDDCorder
// (without). The template is chosen per vendor — profiles whose
// documents carry no importable price use CDDCorder.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/FACorreiaa/po-import/internal/domain/assemble"
)

// Template names a downstream import format.
type Template string

const (
	TemplateDCOrder   Template = "DCorder"
	TemplateCDDCOrder Template = "CDDCorder"
)

// ForVendor picks the template from the profile's price requirement.
func ForVendor(requiresPrice bool) Template {
	if requiresPrice {
		return TemplateDCOrder
	}
	return TemplateCDDCOrder
}

type dcOrderRow struct {
	StoreID   string `csv:"store_id"`
	Name      string `csv:"name"`
	SalesID   string `csv:"sales_id"`
	OrderDate string `csv:"order_date"`
	ItemID    string `csv:"item_id"`
	Quantity  string `csv:"quantity"`
	Price     string `csv:"price"`
}

type cddcOrderRow struct {
	StoreID   string `csv:"store_id"`
	Name      string `csv:"name"`
	SalesID   string `csv:"sales_id"`
	OrderDate string `csv:"order_date"`
	ItemID    string `csv:"item_id"`
	Quantity  string `csv:"quantity"`
}

// Write serializes records in the given template. Records without a
// price still export under DCorder with an empty price cell; the
// assembler guarantees item id and quantity are always present.
func Write(w io.Writer, tmpl Template, records []assemble.OutputRecord) error {
	switch tmpl {
	case TemplateDCOrder:
		rows := make([]dcOrderRow, 0, len(records))
		for _, r := range records {
			row := dcOrderRow{
				StoreID:   r.StoreID,
				Name:      r.StoreName,
				SalesID:   r.OrderID,
				OrderDate: r.OrderDate,
				ItemID:    r.ItemID,
				Quantity:  r.Quantity.String(),
			}
			if r.HasPrice {
				row.Price = r.UnitPrice.String()
			}
			rows = append(rows, row)
		}
		return gocsv.Marshal(rows, w)

	case TemplateCDDCOrder:
		rows := make([]cddcOrderRow, 0, len(records))
		for _, r := range records {
			rows = append(rows, cddcOrderRow{
				StoreID:   r.StoreID,
				Name:      r.StoreName,
				SalesID:   r.OrderID,
				OrderDate: r.OrderDate,
				ItemID:    r.ItemID,
				Quantity:  r.Quantity.String(),
			})
		}
		return gocsv.Marshal(rows, w)

	default:
		return fmt.Errorf("unknown export template %q", tmpl)
	}
}

// WriteFile serializes records to a CSV file.
func WriteFile(path string, tmpl Template, records []assemble.OutputRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, tmpl, records); err != nil {
		return err
	}
	return f.Close()
}
