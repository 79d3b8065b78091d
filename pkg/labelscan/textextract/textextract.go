// Package textextract defines the text-extraction boundary of the pipeline.
// Any engine that can turn label image bytes into text satisfies Extractor;
// the pipeline treats the implementation as a black box.
package textextract

import "context"

// Result is the output of one extraction: the raw text plus the engine's
// overall confidence in [0,1].
type Result struct {
	Text       string
	Confidence float64
}

// Extractor is the contract for a text-extraction backend.
type Extractor interface {
	Name() string
	ExtractText(ctx context.Context, image []byte) (Result, error)
}
