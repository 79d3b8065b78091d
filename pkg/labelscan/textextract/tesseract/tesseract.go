// Package tesseract provides a production text extractor backed by a local
// Tesseract installation via gosseract.
package tesseract

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/nutricheck/labelscan/pkg/labelscan/textextract"
)

// Engine implements textextract.Extractor using gosseract. A fresh client is
// created per call; gosseract clients are not safe for concurrent use.
type Engine struct {
	languages     []string
	clientFactory func() *gosseract.Client
}

// New constructs a Tesseract-backed extractor. Language hints are optional;
// with none given Tesseract uses its default trained data.
func New(languages ...string) *Engine {
	return &Engine{
		languages:     languages,
		clientFactory: gosseract.NewClient,
	}
}

// Name implements textextract.Extractor.
func (e *Engine) Name() string { return "tesseract" }

// ExtractText implements textextract.Extractor. Confidence is the mean
// word-level confidence reported by Tesseract, scaled to [0,1].
func (e *Engine) ExtractText(ctx context.Context, image []byte) (textextract.Result, error) {
	if err := ctx.Err(); err != nil {
		return textextract.Result{}, err
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(image); err != nil {
		return textextract.Result{}, fmt.Errorf("set image: %w", err)
	}
	if len(e.languages) > 0 {
		if err := c.SetLanguage(e.languages...); err != nil {
			return textextract.Result{}, fmt.Errorf("set languages: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return textextract.Result{}, fmt.Errorf("recognize text: %w", err)
	}

	return textextract.Result{
		Text:       strings.TrimSpace(text),
		Confidence: meanWordConfidence(c),
	}, nil
}

func meanWordConfidence(c *gosseract.Client) float64 {
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	var sum float64
	for _, b := range boxes {
		sum += b.Confidence / 100.0
	}
	return sum / float64(len(boxes))
}
