package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nutricheck/labelscan/pkg/labelscan/report"
	"github.com/nutricheck/labelscan/pkg/labelscan/taxonomy"
)

func openTestStore(t *testing.T) (context.Context, func() error, *sqliteStore) {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return ctx, st.Close, st.(*sqliteStore)
}

// TestSQLiteIngredientRoundTrip tests ingredient upsert and lookup
func TestSQLiteIngredientRoundTrip(t *testing.T) {
	ctx, closeStore, st := openTestStore(t)
	defer closeStore()

	entries := []taxonomy.Entry{
		{
			Name:        "Red Dye 40",
			RiskLevel:   taxonomy.RiskBanned,
			Description: "Artificial coloring",
			BannedIn:    map[string]bool{"EU": true, "Norway": true},
			Sources:     []string{"EFSA"},
			Synonyms:    []string{"red dye 40"},
		},
		{
			Name:      "Sugar",
			RiskLevel: taxonomy.RiskSafe,
			Synonyms:  []string{"sugar"},
		},
	}

	if err := st.UpsertIngredients(ctx, entries); err != nil {
		t.Fatalf("UpsertIngredients: %v", err)
	}

	entry, found, err := st.FindIngredient(ctx, "red dye 40")
	if err != nil {
		t.Fatalf("FindIngredient: %v", err)
	}
	if !found {
		t.Fatal("entry should be found by synonym")
	}
	if entry.RiskLevel != taxonomy.RiskBanned {
		t.Errorf("expected banned, got %s", entry.RiskLevel)
	}
	if !entry.BannedIn["EU"] {
		t.Errorf("banned-in set should survive the round trip, got %v", entry.BannedIn)
	}
	if len(entry.Sources) != 1 || entry.Sources[0] != "EFSA" {
		t.Errorf("sources should survive the round trip, got %v", entry.Sources)
	}
}

func TestSQLiteFindIngredientByNameSubstring(t *testing.T) {
	ctx, closeStore, st := openTestStore(t)
	defer closeStore()

	err := st.UpsertIngredients(ctx, []taxonomy.Entry{
		{Name: "Sugar", RiskLevel: taxonomy.RiskSafe, Synonyms: []string{"sugar"}},
	})
	if err != nil {
		t.Fatalf("UpsertIngredients: %v", err)
	}

	// Token contains the stored name; no synonym equals it.
	_, found, err := st.FindIngredient(ctx, "organic sugar")
	if err != nil {
		t.Fatalf("FindIngredient: %v", err)
	}
	if !found {
		t.Error("stored name inside the token should match")
	}
}

func TestSQLiteFindIngredientMiss(t *testing.T) {
	ctx, closeStore, st := openTestStore(t)
	defer closeStore()

	if _, found, err := st.FindIngredient(ctx, "xyzzyfoo"); err != nil {
		t.Fatalf("FindIngredient: %v", err)
	} else if found {
		t.Error("no entry should match")
	}
}

func TestSQLiteUpsertIsIdempotent(t *testing.T) {
	ctx, closeStore, st := openTestStore(t)
	defer closeStore()

	entries := taxonomy.Default().Entries()
	for i := 0; i < 2; i++ {
		if err := st.UpsertIngredients(ctx, entries); err != nil {
			t.Fatalf("UpsertIngredients pass %d: %v", i+1, err)
		}
	}

	stored, err := st.ListIngredients(ctx, 100)
	if err != nil {
		t.Fatalf("ListIngredients: %v", err)
	}
	if len(stored) != len(entries) {
		t.Errorf("expected %d entries after reseeding, got %d", len(entries), len(stored))
	}
}

func TestSQLiteListIngredientsKeepsOrder(t *testing.T) {
	ctx, closeStore, st := openTestStore(t)
	defer closeStore()

	entries := taxonomy.Default().Entries()
	if err := st.UpsertIngredients(ctx, entries); err != nil {
		t.Fatalf("UpsertIngredients: %v", err)
	}

	stored, err := st.ListIngredients(ctx, len(entries))
	if err != nil {
		t.Fatalf("ListIngredients: %v", err)
	}
	if len(stored) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(stored))
	}
	for i := range entries {
		if stored[i].Name != entries[i].Name {
			t.Errorf("position %d: expected %q, got %q", i, entries[i].Name, stored[i].Name)
		}
	}
}

// TestSQLiteScanHistory tests scan insert and recency-ordered listing
func TestSQLiteScanHistory(t *testing.T) {
	ctx, closeStore, st := openTestStore(t)
	defer closeStore()

	base := time.Now().UTC()
	ids := []string{"scan-1", "scan-2", "scan-3"}
	for i, id := range ids {
		rep := report.ScanReport{
			ScanID:  id,
			OCRText: "INGREDIENTS: sugar",
			Ingredients: []report.Verdict{
				{Name: "Sugar", RiskLevel: taxonomy.RiskSafe, Confidence: 0.85},
			},
			Nutrition:         map[string]string{"calories": "150"},
			ProcessingSeconds: 0.2,
			Image:             report.ImageInfo{Filename: "label.png", Size: 123, ContentType: "image/png"},
			CreatedAt:         base.Add(time.Duration(i) * time.Second),
		}
		if err := st.InsertScan(ctx, rep); err != nil {
			t.Fatalf("InsertScan %s: %v", id, err)
		}
	}

	scans, err := st.ListScans(ctx, 2)
	if err != nil {
		t.Fatalf("ListScans: %v", err)
	}
	if len(scans) != 2 {
		t.Fatalf("expected 2 scans, got %d", len(scans))
	}
	if scans[0].ScanID != "scan-3" || scans[1].ScanID != "scan-2" {
		t.Errorf("scans should be newest first, got %s then %s", scans[0].ScanID, scans[1].ScanID)
	}

	first := scans[0]
	if len(first.Ingredients) != 1 || first.Ingredients[0].Name != "Sugar" {
		t.Errorf("verdicts should survive the round trip, got %v", first.Ingredients)
	}
	if first.Nutrition["calories"] != "150" {
		t.Errorf("nutrition should survive the round trip, got %v", first.Nutrition)
	}
	if first.Image.Filename != "label.png" {
		t.Errorf("image info should survive the round trip, got %v", first.Image)
	}
}
