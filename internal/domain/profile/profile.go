// Package profile holds the static catalog of per-vendor matching
// rules: detection keywords, header and destination patterns, and the
// line/table extraction strategies. Profiles are data, validated once
// at load time and immutable afterwards.
package profile

import (
	"fmt"
	"regexp"
	"strings"
)

// Named capture groups a line pattern may define. Item and Qty are
// mandatory for any profile that carries a line pattern; Price is
// mandatory only when the profile requires prices.
const (
	GroupItem  = "item"
	GroupQty   = "qty"
	GroupPrice = "price"
	GroupDesc  = "desc"
)

// HeaderPatterns maps the scalar header fields to their extraction
// regexes. An empty pattern means the vendor's documents never carry
// that field.
type HeaderPatterns struct {
	OrderID      string `json:"order_id"`
	OrderDate    string `json:"order_date"`
	DeliveryDate string `json:"delivery_date"`
	DeliveryTime string `json:"delivery_time,omitempty"`
}

// ColumnAliases lists the header spellings a vendor's recovered tables
// use for each logical column. Matching is case-insensitive on trimmed
// headers.
type ColumnAliases struct {
	ItemID      []string `json:"item_id"`
	Description []string `json:"description"`
	Quantity    []string `json:"quantity"`
	Price       []string `json:"price"`
}

func (a ColumnAliases) empty() bool {
	return len(a.ItemID) == 0 && len(a.Description) == 0 &&
		len(a.Quantity) == 0 && len(a.Price) == 0
}

// VendorProfile is the configured rule bundle for one document-issuing
// vendor. The zero value is not usable; profiles are compiled and
// validated through Compile before entering the registry.
type VendorProfile struct {
	// Key uniquely identifies the vendor (e.g. "WWNZ").
	Key string `json:"key"`

	// Priority fixes the detection order across profiles; lower wins.
	Priority int `json:"priority"`

	// DetectKeywords are scanned (case-insensitively) against document
	// text to identify the vendor.
	DetectKeywords []string `json:"detect_keywords"`

	// StorePattern extracts the destination. Two capture groups where
	// the first is a 3-6 digit token yield (site code, name); a single
	// group yields name only.
	StorePattern string `json:"store_pattern"`

	// StoreCleanup lists noise patterns removed from the extracted
	// destination name (vendor numbers, leading site tokens).
	StoreCleanup []string `json:"store_cleanup,omitempty"`

	// Header holds the scalar metadata patterns.
	Header HeaderPatterns `json:"header"`

	// LinePattern matches one item row per text line, with named
	// groups item/qty/price/desc.
	LinePattern string `json:"line_pattern"`

	// Columns aliases the vendor's table headers for the structured
	// table strategy.
	Columns ColumnAliases `json:"columns"`

	// RequiresPrice marks vendors whose import template carries a unit
	// price. When false, rows are valid without a positive price and
	// output records omit the price field.
	RequiresPrice bool `json:"requires_price"`
}

// Compiled is a VendorProfile with every pattern compiled. Produced by
// Compile and shared read-only across concurrent document runs.
type Compiled struct {
	VendorProfile

	Store        *regexp.Regexp
	OrderID      *regexp.Regexp
	OrderDate    *regexp.Regexp
	DeliveryDate *regexp.Regexp
	DeliveryTime *regexp.Regexp
	Line         *regexp.Regexp

	storeCleanup []*regexp.Regexp

	// lineGroups maps named group -> submatch index in Line.
	lineGroups map[string]int
}

// CleanDestination strips the profile's configured noise patterns from
// an extracted destination name.
func (c *Compiled) CleanDestination(name string) string {
	for _, re := range c.storeCleanup {
		name = re.ReplaceAllString(name, "")
	}
	return strings.TrimSpace(name)
}

// LineGroup returns the submatch index of a named group in the line
// pattern, or -1 when the pattern does not define it.
func (c *Compiled) LineGroup(name string) int {
	if idx, ok := c.lineGroups[name]; ok {
		return idx
	}
	return -1
}

// HasLineStrategy reports whether the profile carries a usable
// line-pattern strategy.
func (c *Compiled) HasLineStrategy() bool { return c.Line != nil }

// HasTableStrategy reports whether the profile carries table column
// aliases for the structured-table strategy.
func (c *Compiled) HasTableStrategy() bool { return !c.Columns.empty() }

// Compile validates a profile and compiles its patterns. Header and
// store patterns search case-insensitively across line breaks; line
// patterns are case-insensitive but line-anchored by the extractor.
func Compile(p VendorProfile) (*Compiled, error) {
	if strings.TrimSpace(p.Key) == "" {
		return nil, fmt.Errorf("%w: empty vendor key", ErrInvalidProfile)
	}
	if len(p.DetectKeywords) == 0 {
		return nil, fmt.Errorf("%w: vendor %s has no detection keywords", ErrInvalidProfile, p.Key)
	}
	if p.LinePattern == "" && p.Columns.empty() {
		return nil, fmt.Errorf("%w: vendor %s defines neither a line pattern nor table column aliases", ErrInvalidProfile, p.Key)
	}

	c := &Compiled{VendorProfile: p}

	var err error
	if c.Store, err = compileSearch(p.Key, "store", p.StorePattern); err != nil {
		return nil, err
	}
	if c.OrderID, err = compileSearch(p.Key, "order id", p.Header.OrderID); err != nil {
		return nil, err
	}
	if c.OrderDate, err = compileSearch(p.Key, "order date", p.Header.OrderDate); err != nil {
		return nil, err
	}
	if c.DeliveryDate, err = compileSearch(p.Key, "delivery date", p.Header.DeliveryDate); err != nil {
		return nil, err
	}
	if c.DeliveryTime, err = compileSearch(p.Key, "delivery time", p.Header.DeliveryTime); err != nil {
		return nil, err
	}

	for _, pat := range p.StoreCleanup {
		re, err := regexp.Compile("(?i)" + pat)
		if err != nil {
			return nil, fmt.Errorf("%w: vendor %s store cleanup pattern: %v", ErrInvalidProfile, p.Key, err)
		}
		c.storeCleanup = append(c.storeCleanup, re)
	}

	if p.LinePattern != "" {
		c.Line, err = regexp.Compile("(?i)" + p.LinePattern)
		if err != nil {
			return nil, fmt.Errorf("%w: vendor %s line pattern: %v", ErrInvalidProfile, p.Key, err)
		}
		c.lineGroups = make(map[string]int)
		for i, name := range c.Line.SubexpNames() {
			if name != "" {
				c.lineGroups[name] = i
			}
		}
		if _, ok := c.lineGroups[GroupItem]; !ok {
			return nil, fmt.Errorf("%w: vendor %s line pattern lacks %q group", ErrInvalidProfile, p.Key, GroupItem)
		}
		if _, ok := c.lineGroups[GroupQty]; !ok {
			return nil, fmt.Errorf("%w: vendor %s line pattern lacks %q group", ErrInvalidProfile, p.Key, GroupQty)
		}
		if _, ok := c.lineGroups[GroupPrice]; !ok && p.RequiresPrice {
			return nil, fmt.Errorf("%w: vendor %s requires price but line pattern lacks %q group", ErrInvalidProfile, p.Key, GroupPrice)
		}
	}

	return c, nil
}

// compileSearch compiles a first-match header/store pattern with the
// flags every header search uses: case-insensitive, dot matches
// newline. Empty patterns compile to nil (field absent for vendor).
func compileSearch(vendor, field, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile("(?is)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: vendor %s %s pattern: %v", ErrInvalidProfile, vendor, field, err)
	}
	return re, nil
}
