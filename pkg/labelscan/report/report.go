// Package report assembles the output record for one label scan.
package report

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/nutricheck/labelscan/pkg/labelscan/taxonomy"
)

// Verdict is the per-token classification result for one scanned label.
type Verdict struct {
	Name        string             `json:"name"`
	RiskLevel   taxonomy.RiskLevel `json:"risk_level"`
	Description string             `json:"description"`
	BannedIn    map[string]bool    `json:"banned_in,omitempty"`
	Sources     []string           `json:"sources,omitempty"`
	Confidence  float64            `json:"confidence"`
}

// ImageInfo carries the declared metadata of the uploaded image.
type ImageInfo struct {
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// ScanReport is the full output record for one scan. It is created once per
// request and never mutated afterwards.
type ScanReport struct {
	ScanID            string            `json:"scan_id"`
	OCRText           string            `json:"ocr_text"`
	Ingredients       []Verdict         `json:"parsed_ingredients"`
	Nutrition         map[string]string `json:"nutritional_info,omitempty"`
	ProcessingSeconds float64           `json:"processing_time"`
	Image             ImageInfo         `json:"image_info"`
	CreatedAt         time.Time         `json:"created_at"`
}

// Assembler packages pipeline output into scan reports, stamping each with a
// fresh monotonic ULID. One assembler is shared across requests, so the
// entropy source is wrapped in a locked reader.
type Assembler struct {
	entropy io.Reader
}

// NewAssembler creates an assembler with its own entropy source.
func NewAssembler() *Assembler {
	return &Assembler{
		entropy: &ulid.LockedMonotonicReader{
			MonotonicReader: ulid.Monotonic(rand.Reader, 0),
		},
	}
}

// Assemble builds the immutable report. Elapsed is the wall-clock duration
// of the whole pipeline as measured by the caller. No validation happens
// here; the upload boundary has already done it.
func (a *Assembler) Assemble(image ImageInfo, ocrText string, verdicts []Verdict, nutrition map[string]string, elapsed time.Duration) ScanReport {
	return ScanReport{
		ScanID:            ulid.MustNew(ulid.Now(), a.entropy).String(),
		OCRText:           ocrText,
		Ingredients:       verdicts,
		Nutrition:         nutrition,
		ProcessingSeconds: elapsed.Seconds(),
		Image:             image,
		CreatedAt:         time.Now().UTC(),
	}
}
