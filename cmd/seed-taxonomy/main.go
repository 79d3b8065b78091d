// Command seed-taxonomy populates a SQLite store with the reference
// ingredient set, optionally extended by a YAML overlay file.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/nutricheck/labelscan/pkg/labelscan/config"
	"github.com/nutricheck/labelscan/pkg/labelscan/store/sqlite"
	"github.com/nutricheck/labelscan/pkg/labelscan/taxonomy"
)

func main() {
	var (
		dbPath      = flag.String("db", "", "Database path (required)")
		overlayPath = flag.String("taxonomy", "", "YAML overlay with extra entries (optional)")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	entries := taxonomy.Default().Entries()
	if *overlayPath != "" {
		overlay, err := config.LoadTaxonomyOverlay(*overlayPath)
		if err != nil {
			log.Fatal("Failed to load taxonomy overlay:", err)
		}
		entries = append(entries, overlay...)
	}

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer st.Close()

	// New normalizes synonyms and fills in default keys before storage.
	if err := st.UpsertIngredients(ctx, taxonomy.New(entries).Entries()); err != nil {
		log.Fatal("Failed to seed ingredients:", err)
	}

	log.Printf("Seeded %d reference ingredients into %s", len(entries), *dbPath)
}
