// Package classify assigns a risk verdict to each parsed ingredient token.
package classify

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nutricheck/labelscan/pkg/labelscan/report"
	"github.com/nutricheck/labelscan/pkg/labelscan/store"
	"github.com/nutricheck/labelscan/pkg/labelscan/taxonomy"
)

// unknownDescription is the fixed text for tokens no reference entry matches.
const unknownDescription = "Ingredient not found in database. Generally considered safe."

// Config holds the confidence assigned per match provenance. The values have
// no derivation beyond the reference behavior, so they are configuration
// rather than constants.
type Config struct {
	StoreHit    float64 `yaml:"store_hit"`
	FallbackHit float64 `yaml:"fallback_hit"`
	Unknown     float64 `yaml:"unknown"`
}

// DefaultConfig returns the reference confidence values.
func DefaultConfig() Config {
	return Config{
		StoreHit:    0.95,
		FallbackHit: 0.85,
		Unknown:     0.3,
	}
}

// Classifier matches ingredient tokens against the reference taxonomy.
// A persistent store, when present, is tried before the in-process set.
type Classifier struct {
	store store.Store // nil disables the persistent pass
	tax   *taxonomy.Taxonomy
	cfg   Config
}

// New creates a classifier. Pass a nil store to run purely in-process.
func New(st store.Store, tax *taxonomy.Taxonomy, cfg Config) *Classifier {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Classifier{
		store: st,
		tax:   tax,
		cfg:   cfg,
	}
}

// Classify returns one verdict per input token, in input order. Unknown
// tokens default to safe at low confidence; store errors degrade to the
// in-process pass and never fail the call.
func (c *Classifier) Classify(ctx context.Context, tokens []string) []report.Verdict {
	verdicts := make([]report.Verdict, 0, len(tokens))
	for _, token := range tokens {
		verdicts = append(verdicts, c.classifyOne(ctx, token))
	}
	return verdicts
}

func (c *Classifier) classifyOne(ctx context.Context, token string) report.Verdict {
	key := strings.ToLower(strings.TrimSpace(token))

	if c.store != nil {
		entry, found, err := c.store.FindIngredient(ctx, key)
		if err != nil {
			slog.Warn("ingredient store lookup failed", "token", key, "err", err)
		} else if found {
			return verdictFromEntry(entry, c.cfg.StoreHit)
		}
	}

	if entry, found := c.tax.Lookup(key); found {
		return verdictFromEntry(entry, c.cfg.FallbackHit)
	}

	// Casers are stateful, so build one per call instead of sharing.
	return report.Verdict{
		Name:        cases.Title(language.English).String(token),
		RiskLevel:   taxonomy.RiskSafe,
		Description: unknownDescription,
		BannedIn:    map[string]bool{},
		Sources:     []string{},
		Confidence:  c.cfg.Unknown,
	}
}

func verdictFromEntry(e taxonomy.Entry, confidence float64) report.Verdict {
	bannedIn := make(map[string]bool, len(e.BannedIn))
	for k, v := range e.BannedIn {
		bannedIn[k] = v
	}
	sources := make([]string, len(e.Sources))
	copy(sources, e.Sources)

	return report.Verdict{
		Name:        e.Name,
		RiskLevel:   e.RiskLevel,
		Description: e.Description,
		BannedIn:    bannedIn,
		Sources:     sources,
		Confidence:  confidence,
	}
}
