package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/po-import/internal/domain/document"
	"github.com/FACorreiaa/po-import/internal/domain/profile"
)

func newDetector(t *testing.T) *Detector {
	t.Helper()
	reg, err := profile.Default()
	require.NoError(t, err)
	return New(reg)
}

func TestDetect_Keyword(t *testing.T) {
	d := newDetector(t)

	res, err := d.Detect(document.RawDocument{
		Text: "Foodstuffs North Island Limited\nOrder Forecast Number: 55521\n",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "Foodstuffs_NI", res.Profile.Key)
	assert.False(t, res.ByFallback)
	assert.Positive(t, res.KeywordHits["Foodstuffs_NI"])
}

func TestDetect_PriorityBeatsPosition(t *testing.T) {
	d := newDetector(t)

	// The lower-priority vendor's keyword comes first in the text; the
	// fixed priority order must still win.
	res, err := d.Detect(document.RawDocument{
		Text: "Order Forecast mentioned up here\n...\nNEW PURCHASE ORDER - VENDOR COPY\n",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "WWNZ", res.Profile.Key)
	assert.Positive(t, res.KeywordHits["Foodstuffs_NI"], "the losing vendor's hits stay visible")
}

func TestDetect_CaseInsensitive(t *testing.T) {
	d := newDetector(t)

	res, err := d.Detect(document.RawDocument{Text: "woolworths nz weekly order"}, "")
	require.NoError(t, err)
	assert.Equal(t, "WWNZ", res.Profile.Key)
}

func TestDetect_Explicit(t *testing.T) {
	d := newDetector(t)

	// Explicit choice wins even when the text screams another vendor.
	res, err := d.Detect(document.RawDocument{Text: "WOOLWORTHS NZ"}, "MyFoodBag")
	require.NoError(t, err)
	assert.Equal(t, "MyFoodBag", res.Profile.Key)
	assert.False(t, res.ByFallback)

	_, err = d.Detect(document.RawDocument{Text: "WOOLWORTHS NZ"}, "Unknown")
	assert.ErrorIs(t, err, profile.ErrVendorNotFound)
}

func TestDetect_ContentFallback(t *testing.T) {
	d := newDetector(t)

	// No banner text at all; the row format identifies the vendor.
	res, err := d.Detect(document.RawDocument{
		Text: "654321 12 Beef Mince 500g 05/09/25 4.20 50.40\n" +
			"987654 6 Chicken Thigh 1kg 05/09/25 7.10 42.60\n",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "MyFoodBag", res.Profile.Key)
	assert.True(t, res.ByFallback)
}

func TestDetect_Undetected(t *testing.T) {
	d := newDetector(t)

	tests := []struct {
		name string
		doc  document.RawDocument
	}{
		{"empty document", document.RawDocument{}},
		{"prose only", document.RawDocument{Text: "dear supplier, please see attached"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := d.Detect(tt.doc, "")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUndetected)
			assert.Nil(t, res.Profile)
		})
	}
}
