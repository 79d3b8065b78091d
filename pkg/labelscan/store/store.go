package store

import (
	"context"

	"github.com/nutricheck/labelscan/pkg/labelscan/report"
	"github.com/nutricheck/labelscan/pkg/labelscan/taxonomy"
)

// Store is the persistence boundary for reference ingredients and scan
// history. The pipeline treats it as optional: every read path has an
// in-process fallback and every write is best-effort.
type Store interface {
	Close() error

	// Ingredients
	FindIngredient(ctx context.Context, token string) (taxonomy.Entry, bool, error)
	UpsertIngredients(ctx context.Context, entries []taxonomy.Entry) error
	ListIngredients(ctx context.Context, limit int) ([]taxonomy.Entry, error)

	// Scans
	InsertScan(ctx context.Context, r report.ScanReport) error
	ListScans(ctx context.Context, limit int) ([]report.ScanReport, error)
}
