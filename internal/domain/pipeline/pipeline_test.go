package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/po-import/internal/domain/detect"
	"github.com/FACorreiaa/po-import/internal/domain/document"
	"github.com/FACorreiaa/po-import/internal/domain/profile"
	"github.com/FACorreiaa/po-import/internal/domain/store"
)

const foodstuffsDoc = `Foodstuffs North Island Limited
Order Forecast Number: 55521
Date of Order: 01/09/25
Delivery Date: 03/09/25
Delivery To: Christchurch DC Annex
1 654321 EA Baby Spinach 120g 10 EA 10 $2.50 $25.00
`

func newPipeline(t *testing.T) *Pipeline {
	t.Helper()
	reg, err := profile.Default()
	require.NoError(t, err)

	mapping := store.NewMapping([]store.MappingEntry{
		{SiteCode: "1234", Name: "Christchurch DC", StoreID: "S9"},
		{SiteCode: "9793", Name: "Wellington Metro", StoreID: "S3"},
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(reg, mapping, logger)
}

func TestProcess_EndToEnd(t *testing.T) {
	p := newPipeline(t)

	res, err := p.Process(document.RawDocument{Name: "order.txt", Text: foodstuffsDoc}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "Foodstuffs_NI", res.Vendor)
	assert.True(t, res.RequiresPrice)
	assert.Equal(t, "55521", res.Header.OrderID)
	assert.Equal(t, "2025-09-03", res.Header.DeliveryDate)

	require.Len(t, res.Records, 1)
	rec := res.Records[0]
	assert.Equal(t, "S9", rec.StoreID, "annex name resolves by containment")
	assert.Equal(t, "Christchurch DC", rec.StoreName)
	assert.Equal(t, "55521", rec.OrderID)
	assert.Equal(t, "2025-09-03", rec.OrderDate, "delivery date preferred over order date")
	assert.Equal(t, "654321", rec.ItemID)
	assert.True(t, rec.Quantity.Equal(decimal.NewFromInt(10)))
	require.True(t, rec.HasPrice)
	assert.True(t, rec.UnitPrice.Equal(decimal.RequireFromString("2.50")))

	assert.Equal(t, 1, res.Diagnostics.Emitted)
	assert.False(t, res.Diagnostics.ByFallback)
	assert.Zero(t, res.Diagnostics.StoreUnresolved)
}

func TestProcess_Undetected(t *testing.T) {
	p := newPipeline(t)

	res, err := p.Process(document.RawDocument{Name: "noise.txt", Text: "dear supplier"}, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, detect.ErrUndetected)
	assert.Empty(t, res.Records)
	assert.Equal(t, "noise.txt", res.Diagnostics.Document)
}

func TestProcess_ExplicitVendor(t *testing.T) {
	p := newPipeline(t)

	res, err := p.Process(document.RawDocument{Name: "order.txt", Text: foodstuffsDoc},
		Options{ExplicitVendor: "Foodstuffs_NI"})
	require.NoError(t, err)
	assert.Equal(t, "Foodstuffs_NI", res.Vendor)

	_, err = p.Process(document.RawDocument{Text: foodstuffsDoc}, Options{ExplicitVendor: "Nope"})
	assert.ErrorIs(t, err, profile.ErrVendorNotFound)
}

func TestProcess_NilMapping(t *testing.T) {
	reg, err := profile.Default()
	require.NoError(t, err)
	p := New(reg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	res, err := p.Process(document.RawDocument{Name: "order.txt", Text: foodstuffsDoc}, Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Empty(t, res.Records[0].StoreID)
	assert.Equal(t, "Christchurch DC Annex", res.Records[0].StoreName)
	assert.Equal(t, 1, res.Diagnostics.StoreUnresolved)
}

func TestProcessBatch(t *testing.T) {
	p := newPipeline(t)

	docs := []document.RawDocument{
		{Name: "good-0.txt", Text: foodstuffsDoc},
		{Name: "bad.txt", Text: "dear supplier"},
		{Name: "good-1.txt", Text: foodstuffsDoc},
	}

	results := p.ProcessBatch(context.Background(), docs, Options{}, 2)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, "good-0.txt", results[0].Result.Document)

	assert.ErrorIs(t, results[1].Err, detect.ErrUndetected)

	assert.NoError(t, results[2].Err, "one bad document must not fail the batch")
	assert.Equal(t, "good-1.txt", results[2].Result.Document)
}

func TestProcessBatch_OrderPreserved(t *testing.T) {
	p := newPipeline(t)

	var docs []document.RawDocument
	for i := 0; i < 20; i++ {
		docs = append(docs, document.RawDocument{
			Name: fmt.Sprintf("doc-%02d.txt", i),
			Text: foodstuffsDoc,
		})
	}

	results := p.ProcessBatch(context.Background(), docs, Options{}, 4)
	require.Len(t, results, len(docs))
	for i, dr := range results {
		require.NoError(t, dr.Err)
		assert.Equal(t, fmt.Sprintf("doc-%02d.txt", i), dr.Result.Document)
	}
}

func TestProcessBatch_CanceledContext(t *testing.T) {
	p := newPipeline(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := p.ProcessBatch(ctx, []document.RawDocument{{Name: "a.txt", Text: foodstuffsDoc}}, Options{}, 1)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}
