package labelscan

import (
	"context"
	"errors"
	"testing"

	"github.com/nutricheck/labelscan/pkg/labelscan/store/memstore"
	"github.com/nutricheck/labelscan/pkg/labelscan/taxonomy"
	"github.com/nutricheck/labelscan/pkg/labelscan/textextract"
)

func testImage() Image {
	return Image{
		Filename:    "label.png",
		ContentType: "image/png",
		Data:        []byte{0x89, 0x50, 0x4e, 0x47},
	}
}

func TestScanEndToEnd(t *testing.T) {
	st := memstore.New()
	if err := st.UpsertIngredients(context.Background(), taxonomy.Default().Entries()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := New(Options{
		Store:     st,
		Extractor: textextract.NewCannedFixed(0),
	})

	rep, err := s.Scan(context.Background(), testImage())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if rep.ScanID == "" {
		t.Error("scan ID should be set")
	}
	if len(rep.Ingredients) != 10 {
		t.Fatalf("expected 10 verdicts for the first canned label, got %d", len(rep.Ingredients))
	}

	last := rep.Ingredients[len(rep.Ingredients)-1]
	if last.Name != "Red Dye 40" {
		t.Errorf("last verdict should be Red Dye 40, got %q", last.Name)
	}
	if last.RiskLevel != taxonomy.RiskBanned {
		t.Errorf("red dye 40 should be banned, got %s", last.RiskLevel)
	}
	if last.Confidence != 0.95 {
		t.Errorf("seeded store hit should give 0.95, got %v", last.Confidence)
	}

	if rep.Nutrition["trans_fat"] != "0" {
		t.Errorf("trans_fat should be captured, got %v", rep.Nutrition)
	}
	if rep.Image.Filename != "label.png" || rep.Image.Size != 4 {
		t.Errorf("image metadata mismatch: %+v", rep.Image)
	}
	if rep.ProcessingSeconds < 0 {
		t.Errorf("processing time should be non-negative, got %v", rep.ProcessingSeconds)
	}

	// The report is persisted best-effort.
	scans, err := st.ListScans(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListScans: %v", err)
	}
	if len(scans) != 1 || scans[0].ScanID != rep.ScanID {
		t.Errorf("scan should be stored, got %v", scans)
	}
}

func TestScanWithoutStore(t *testing.T) {
	s := New(Options{Extractor: textextract.NewCannedFixed(0)})

	rep, err := s.Scan(context.Background(), testImage())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(rep.Ingredients) != 10 {
		t.Fatalf("expected 10 verdicts, got %d", len(rep.Ingredients))
	}
	// Without a store every hit comes from the in-process set.
	for _, v := range rep.Ingredients {
		if v.Confidence == 0.95 {
			t.Errorf("verdict %q claims a store hit with no store configured", v.Name)
		}
	}
}

func TestScanSurvivesStoreOutage(t *testing.T) {
	st := memstore.New()
	st.FailReads = true
	st.FailWrites = true

	s := New(Options{
		Store:     st,
		Extractor: textextract.NewCannedFixed(0),
	})

	rep, err := s.Scan(context.Background(), testImage())
	if err != nil {
		t.Fatalf("scan should survive a store outage, got error: %v", err)
	}
	if len(rep.Ingredients) != 10 {
		t.Errorf("expected a fully-formed report despite the outage, got %d verdicts", len(rep.Ingredients))
	}
	if rep.ScanID == "" {
		t.Error("report should still carry a scan ID")
	}
}

type failingExtractor struct{}

func (failingExtractor) Name() string { return "failing" }
func (failingExtractor) ExtractText(ctx context.Context, image []byte) (textextract.Result, error) {
	return textextract.Result{}, errors.New("ocr backend down")
}

func TestScanPropagatesExtractorError(t *testing.T) {
	s := New(Options{Extractor: failingExtractor{}})

	if _, err := s.Scan(context.Background(), testImage()); err == nil {
		t.Error("extractor failure should surface as an error")
	}
}

func TestIngredientsFallsBackToTaxonomy(t *testing.T) {
	s := New(Options{})

	entries, err := s.Ingredients(context.Background(), 0)
	if err != nil {
		t.Fatalf("Ingredients: %v", err)
	}
	if len(entries) != taxonomy.Default().Len() {
		t.Errorf("expected the built-in set, got %d entries", len(entries))
	}

	limited, err := s.Ingredients(context.Background(), 5)
	if err != nil {
		t.Fatalf("Ingredients: %v", err)
	}
	if len(limited) != 5 {
		t.Errorf("limit should apply to the fallback listing, got %d", len(limited))
	}
}

func TestIngredientsFallsBackOnStoreError(t *testing.T) {
	st := memstore.New()
	st.FailReads = true

	s := New(Options{Store: st})

	entries, err := s.Ingredients(context.Background(), 0)
	if err != nil {
		t.Fatalf("Ingredients should not fail on a store outage: %v", err)
	}
	if len(entries) != taxonomy.Default().Len() {
		t.Errorf("expected fallback to the built-in set, got %d entries", len(entries))
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	s := New(Options{})

	scans, err := s.History(context.Background(), 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(scans) != 0 {
		t.Errorf("no store means no history, got %d scans", len(scans))
	}
}
