package profile

// Built-in profiles for the three supported NZ produce vendors. The
// keyword sets, header patterns and line patterns track the document
// revisions seen in production; WWNZ carries the lowest priority value
// so its banner text wins when a document mentions several vendors.
func defaultProfiles() []VendorProfile {
	return []VendorProfile{
		{
			Key:      "WWNZ",
			Priority: 0,
			DetectKeywords: []string{
				"WOOLWORTHS NZ",
				"WOOLWORTHS NEW ZEALAND",
				"PRODUCE ORDER NUMBER",
				"NEW PURCHASE ORDER",
				"VENDOR COPY",
			},
			StorePattern: `Deliver\s+To:\s*([0-9]{3,6})\s*\n\s*([^\n]+)`,
			// WWNZ footers repeat the destination with vendor-number
			// noise ("9793 - Vendor Number: 123456").
			StoreCleanup: []string{
				`\d{4}-?\s*-?\s*Vendor\s*Number:?\s*\d+`,
				`^\d{3,5}\s*\n?\s*`,
			},
			Header: HeaderPatterns{
				OrderID:      `PRODUCE\s+ORDER\s+NUMBER\s*:\s*([0-9]+)`,
				OrderDate:    `Order\s+Date\s*:\s*([0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4})`,
				DeliveryDate: `Delivery\s+Date\s*:\s*([0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4})`,
				DeliveryTime: `Delivery\s+Time\s*:\s*([0-9][0-9\s:]{3,})`,
			},
			// LINE GTIN DESCRIPTION ITEM_NO TU SFX OM ORD_QTY PRICE_EXCL ...
			LinePattern: `^\s*\d+\s+\d{8,14}\s+(?P<desc>.+?)\s+(?P<item>\d{5,})\s+[\d.]+\s+\S+\s+\d+\s+(?P<qty>\d+)\s+(?P<price>[\d.]+)`,
			Columns: ColumnAliases{
				ItemID:      []string{"ITEM NO"},
				Description: []string{"ITEM DESCRIPTION"},
				Quantity:    []string{"ORD QTY"},
				Price:       []string{"PRICE EXCL"},
			},
			// WWNZ imports through the template without a price column.
			RequiresPrice: false,
		},
		{
			Key:      "Foodstuffs_NI",
			Priority: 1,
			DetectKeywords: []string{
				"Foodstuffs North Island Limited",
				"Order Forecast",
				"O/F",
			},
			StorePattern: `(?:Delivery\s+To|Delivery\s+Address)[:：]?\s*([^\n]+)`,
			Header: HeaderPatterns{
				OrderID:      `Order\s+Forecast\s+Number[:：]?\s*([0-9]+)`,
				OrderDate:    `Date\s+of\s+Order[:：]?\s*([0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4})`,
				DeliveryDate: `Delivery\s+Date[:：]?\s*([0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4})`,
			},
			// LINE ARTICLE UOM-CODE DESCRIPTION QTY UOM UNITS PRICE ... TOTAL
			LinePattern: `^\s*\d+\s+(?P<item>\d{6,})\s+[A-Z0-9$]+\s+(?P<desc>.+?)\s+(?P<qty>\d+)\s+[A-Z]{2,4}\s+\d+\s+\$?(?P<price>[\d,]+\.\d{2}).*?\$?[\d,]+\.\d{2}\s*$`,
			Columns: ColumnAliases{
				ItemID:      []string{"Article Number", "Item #"},
				Description: []string{"Product Description"},
				Quantity:    []string{"Order Qty"},
				Price:       []string{"Price Per Ord. Unit"},
			},
			RequiresPrice: true,
		},
		{
			Key:      "MyFoodBag",
			Priority: 2,
			DetectKeywords: []string{
				"My Food Bag",
				"My Food Bag Limited",
				"PURCHASE ORDER",
				"GST Reg. No:",
			},
			StorePattern: `(My\s*Food\s*Bag[\s\S]{0,200}?Christchurch\s*8042)`,
			Header: HeaderPatterns{
				OrderID:   `Purchase\s+(?:Order\s+)?No[:：]?\s*([0-9]+)`,
				OrderDate: `Order\s*Date[:：]?\s*([0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4})`,
			},
			// ITEM_NO QTY DESCRIPTION DELIVERY_DATE PRICE TOTAL
			LinePattern: `^\s*(?P<item>\d{6,})\s+(?P<qty>[\d,]+)\s+(?P<desc>.+?)\s+[0-9/]{6,}\s+(?P<price>\d+\.\d{2})\s+[\d,]+\.\d{2}\s*$`,
			Columns: ColumnAliases{
				ItemID:      []string{"Item No."},
				Description: []string{"DESCRIPTION"},
				Quantity:    []string{"QTY"},
				Price:       []string{"PRICE"},
			},
			RequiresPrice: true,
		},
	}
}
