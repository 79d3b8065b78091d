// Package labelscan wires the label-scanning pipeline together: text
// extraction, field parsing, ingredient classification, and report assembly.
package labelscan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nutricheck/labelscan/pkg/labelscan/classify"
	"github.com/nutricheck/labelscan/pkg/labelscan/parse"
	"github.com/nutricheck/labelscan/pkg/labelscan/report"
	"github.com/nutricheck/labelscan/pkg/labelscan/store"
	"github.com/nutricheck/labelscan/pkg/labelscan/taxonomy"
	"github.com/nutricheck/labelscan/pkg/labelscan/textextract"
)

// Image is one uploaded label image with its declared metadata. The upload
// boundary validates it before the scanner ever sees it.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Options configures a Scanner instance
type Options struct {
	Store      store.Store           // optional; nil disables persistence
	Extractor  textextract.Extractor // defaults to the canned engine
	Taxonomy   *taxonomy.Taxonomy    // defaults to the built-in set
	Confidence classify.Config       // zero value means DefaultConfig
}

// Scanner is the main label-scanning facade
type Scanner struct {
	store      store.Store
	extractor  textextract.Extractor
	classifier *classify.Classifier
	assembler  *report.Assembler
	tax        *taxonomy.Taxonomy
}

// New creates a Scanner with the given dependencies
func New(opts Options) *Scanner {
	if opts.Extractor == nil {
		opts.Extractor = textextract.NewCanned()
	}
	if opts.Taxonomy == nil {
		opts.Taxonomy = taxonomy.Default()
	}
	if opts.Confidence == (classify.Config{}) {
		opts.Confidence = classify.DefaultConfig()
	}
	return &Scanner{
		store:      opts.Store,
		extractor:  opts.Extractor,
		classifier: classify.New(opts.Store, opts.Taxonomy, opts.Confidence),
		assembler:  report.NewAssembler(),
		tax:        opts.Taxonomy,
	}
}

// Close releases the store, if one was configured.
func (s *Scanner) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// Scan runs one image through the full pipeline and returns the assembled
// report. Persistence of the report is best-effort: a store failure is
// logged and the report is still returned.
func (s *Scanner) Scan(ctx context.Context, img Image) (report.ScanReport, error) {
	start := time.Now()

	extracted, err := s.extractor.ExtractText(ctx, img.Data)
	if err != nil {
		return report.ScanReport{}, fmt.Errorf("extract text: %w", err)
	}

	label := parse.ParseLabel(extracted.Text)
	verdicts := s.classifier.Classify(ctx, label.Ingredients)

	rep := s.assembler.Assemble(
		report.ImageInfo{
			Filename:    img.Filename,
			Size:        int64(len(img.Data)),
			ContentType: img.ContentType,
		},
		label.RawText,
		verdicts,
		label.Nutrition,
		time.Since(start),
	)

	if s.store != nil {
		if err := s.store.InsertScan(ctx, rep); err != nil {
			slog.Warn("scan persistence failed", "scan_id", rep.ScanID, "err", err)
		}
	}

	return rep, nil
}

// Ingredients lists the reference set: the store's copy when available,
// otherwise the in-process taxonomy.
func (s *Scanner) Ingredients(ctx context.Context, limit int) ([]taxonomy.Entry, error) {
	if s.store != nil {
		entries, err := s.store.ListIngredients(ctx, limit)
		if err == nil {
			return entries, nil
		}
		slog.Warn("ingredient listing fell back to built-in taxonomy", "err", err)
	}

	entries := s.tax.Entries()
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// History returns the most recent scans, newest first. Without a store there
// is no history.
func (s *Scanner) History(ctx context.Context, limit int) ([]report.ScanReport, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.ListScans(ctx, limit)
}
