package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/po-import/internal/domain/profile"
)

func mustProfile(t *testing.T, key string) *profile.Compiled {
	t.Helper()
	reg, err := profile.Default()
	require.NoError(t, err)
	p, err := reg.Get(key)
	require.NoError(t, err)
	return p
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"slash dmy", "03/09/25", "2025-09-03"},
		{"slash dmy unpadded", "3/9/25", "2025-09-03"},
		{"slash dmy full year", "03/09/2025", "2025-09-03"},
		{"slash ymd", "2025/9/3", "2025-09-03"},
		{"dash dmy", "03-09-2025", "2025-09-03"},
		{"dash ymd", "2025-9-3", "2025-09-03"},
		{"whitespace trimmed", "  3/9/2025  ", "2025-09-03"},
		{"unparseable kept verbatim", "next Tuesday", "next Tuesday"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDate(tt.raw))
		})
	}
}

func TestHeader_WWNZ(t *testing.T) {
	p := mustProfile(t, "WWNZ")
	text := `NEW PURCHASE ORDER - VENDOR COPY
PRODUCE ORDER NUMBER : 4456789
Order Date : 01/09/25
Delivery Date : 02/09/25
Delivery Time : 06 : 00
Deliver To: 9793
Christchurch DC 9793 - Vendor Number: 123456
`

	h := Header(p, text)
	assert.Equal(t, "4456789", h.OrderID)
	assert.Equal(t, "2025-09-01", h.OrderDate)
	assert.Equal(t, "2025-09-02", h.DeliveryDate)
	assert.NotEmpty(t, h.DeliveryTime)
	assert.Equal(t, "9793", h.SiteCode)
	assert.Equal(t, "Christchurch DC", h.StoreName, "vendor-number noise must be stripped")
}

func TestHeader_Foodstuffs(t *testing.T) {
	p := mustProfile(t, "Foodstuffs_NI")
	text := `Foodstuffs North Island Limited
Order Forecast Number: 55521
Date of Order: 01/09/25
Delivery Date: 03/09/25
Delivery To: Christchurch DC Annex
`

	h := Header(p, text)
	assert.Equal(t, "55521", h.OrderID)
	assert.Equal(t, "2025-09-01", h.OrderDate)
	assert.Equal(t, "2025-09-03", h.DeliveryDate)
	assert.Empty(t, h.SiteCode, "single-group store pattern yields name only")
	assert.Equal(t, "Christchurch DC Annex", h.StoreName)
}

func TestHeader_AbsentFieldsStayEmpty(t *testing.T) {
	p := mustProfile(t, "MyFoodBag")

	h := Header(p, "nothing recognizable in here")
	assert.Empty(t, h.OrderID)
	assert.Empty(t, h.OrderDate)
	assert.Empty(t, h.DeliveryDate)
	assert.Empty(t, h.SiteCode)
	assert.Empty(t, h.StoreName)
}
