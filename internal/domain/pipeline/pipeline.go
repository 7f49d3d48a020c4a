// Package pipeline runs the per-document extraction flow: detect →
// header → line items → store resolution → assembly. Each document run
// is isolated; stage-local failures surface only in diagnostics and no
// document's failure affects another's.
package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/po-import/internal/domain/assemble"
	"github.com/FACorreiaa/po-import/internal/domain/detect"
	"github.com/FACorreiaa/po-import/internal/domain/document"
	"github.com/FACorreiaa/po-import/internal/domain/extract"
	"github.com/FACorreiaa/po-import/internal/domain/profile"
	"github.com/FACorreiaa/po-import/internal/domain/store"
)

// Options tunes a single document run.
type Options struct {
	// ExplicitVendor bypasses automatic detection when set. It must
	// name a registered profile.
	ExplicitVendor string
}

// Result is the outcome of one document run. Records is empty when the
// vendor was undetected or no rows survived validation; Diagnostics is
// always populated.
type Result struct {
	Document    string
	Vendor      string
	Header      extract.HeaderFields
	Records     []assemble.OutputRecord
	Diagnostics assemble.Diagnostics

	// RequiresPrice mirrors the active profile's template flag, so
	// exporters can pick the right output template.
	RequiresPrice bool
}

// Pipeline processes documents against one registry snapshot and one
// store mapping. Both are immutable; a Pipeline is safe for concurrent
// use.
type Pipeline struct {
	registry *profile.Registry
	detector *detect.Detector
	mapping  *store.Mapping
	logger   *slog.Logger
}

// New builds a pipeline over the given snapshot and mapping. The
// mapping may be nil (every store stays unresolved).
func New(reg *profile.Registry, mapping *store.Mapping, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		registry: reg,
		detector: detect.New(reg),
		mapping:  mapping,
		logger:   logger,
	}
}

// Process runs the full flow for one document. An undetected vendor
// returns the diagnostics alongside detect.ErrUndetected; the batch
// treats that as a per-document outcome, not a batch failure.
func (p *Pipeline) Process(doc document.RawDocument, opts Options) (Result, error) {
	res := Result{Document: doc.Name}

	det, err := p.detector.Detect(doc, opts.ExplicitVendor)
	res.Diagnostics.Document = doc.Name
	res.Diagnostics.KeywordHits = det.KeywordHits
	if err != nil {
		p.logger.Warn("vendor undetected",
			slog.String("document", doc.Name),
			slog.Any("keyword_hits", det.KeywordHits),
		)
		return res, err
	}

	prof := det.Profile
	res.Vendor = prof.Key
	res.RequiresPrice = prof.RequiresPrice

	res.Header = extract.Header(prof, doc.Text)
	items, drops := extract.LineItems(prof, doc)

	resolution := store.Resolution{}
	if p.mapping != nil {
		resolution = p.mapping.Resolve(res.Header.SiteCode, res.Header.StoreName)
	}

	res.Records, res.Diagnostics = assemble.Records(res.Header, items, resolution, drops)
	res.Diagnostics.Document = doc.Name
	res.Diagnostics.Vendor = prof.Key
	res.Diagnostics.ByFallback = det.ByFallback
	res.Diagnostics.KeywordHits = det.KeywordHits

	p.logger.Info("document processed",
		slog.String("document", doc.Name),
		slog.String("vendor", prof.Key),
		slog.Bool("by_fallback", det.ByFallback),
		slog.Int("records", len(res.Records)),
		slog.Int("dropped", drops.Total()),
		slog.Bool("store_resolved", resolution.Matched),
	)
	return res, nil
}

// DocResult pairs a batch document with its outcome.
type DocResult struct {
	Result Result
	Err    error
}

// ProcessBatch runs documents concurrently with bounded parallelism.
// Results are returned in input order; each document fails
// independently. The context bounds the whole batch, not individual
// stages.
func (p *Pipeline) ProcessBatch(ctx context.Context, docs []document.RawDocument, opts Options, concurrency int) []DocResult {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]DocResult, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = DocResult{Err: err}
				return nil
			}
			res, err := p.Process(doc, opts)
			results[i] = DocResult{Result: res, Err: err}
			return nil
		})
	}

	// Goroutines never return errors; Wait only synchronizes.
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		p.logger.Error("batch wait failed", slog.Any("error", err))
	}
	return results
}
