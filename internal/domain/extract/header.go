package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/FACorreiaa/po-import/internal/domain/profile"
)

// Accepted date layouts, tried in order. Day-first formats come first
// because every supported vendor is NZ-based. Non-padded layouts accept
// both "3/9/25" and "03/09/25".
var dateLayouts = []string{
	"2/1/2006",
	"2/1/06",
	"2006/1/2",
	"2-1-2006",
	"2006-1-2",
}

var siteCodeRe = regexp.MustCompile(`^\d{3,6}$`)

// Header extracts the scalar metadata fields from the document text
// using the profile's patterns. Each pattern gets a single first-match
// search; absence of a match yields an empty field, never an error.
func Header(p *profile.Compiled, text string) HeaderFields {
	h := HeaderFields{
		OrderID:      searchFirst(p.OrderID, text),
		OrderDate:    ParseDate(searchFirst(p.OrderDate, text)),
		DeliveryDate: ParseDate(searchFirst(p.DeliveryDate, text)),
		DeliveryTime: searchFirst(p.DeliveryTime, text),
	}
	h.SiteCode, h.StoreName = destination(p, text)
	return h
}

// ParseDate normalizes a raw date string to ISO 8601 using the first
// accepted layout that parses. Unparseable input is returned verbatim;
// empty input stays empty.
func ParseDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}

// searchFirst runs a single first-match search. A pattern with one
// capture group yields that group; with none, the whole match; with
// several, the groups joined by a space.
func searchFirst(re *regexp.Regexp, text string) string {
	if re == nil || text == "" {
		return ""
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	switch len(m) {
	case 1:
		return strings.TrimSpace(m[0])
	case 2:
		return strings.TrimSpace(m[1])
	default:
		parts := make([]string, 0, len(m)-1)
		for _, g := range m[1:] {
			if g = strings.TrimSpace(g); g != "" {
				parts = append(parts, g)
			}
		}
		return strings.Join(parts, " ")
	}
}

// destination extracts the delivery site from the document. When the
// store pattern yields two groups and the first is a short numeric
// token, it is the site code and the second the name; a single group is
// name only.
func destination(p *profile.Compiled, text string) (siteCode, name string) {
	if p.Store == nil || text == "" {
		return "", ""
	}
	m := p.Store.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}

	switch len(m) {
	case 1:
		name = m[0]
	case 2:
		name = m[1]
	default:
		first := strings.TrimSpace(m[1])
		if siteCodeRe.MatchString(first) {
			siteCode = first
			name = m[2]
		} else {
			name = m[2]
		}
	}

	return siteCode, p.CleanDestination(strings.TrimSpace(name))
}
