package textextract

import (
	"context"
	"strings"
	"testing"
)

func TestCannedFixedIsDeterministic(t *testing.T) {
	c := NewCannedFixed(0)

	first, err := c.ExtractText(context.Background(), nil)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	second, err := c.ExtractText(context.Background(), nil)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}

	if first.Text != second.Text {
		t.Error("fixed canned extractor should return the same text every call")
	}
	if first.Confidence != second.Confidence {
		t.Error("fixed canned extractor should return the same confidence every call")
	}
	if !strings.Contains(first.Text, "INGREDIENTS:") {
		t.Error("canned response should carry an ingredients header")
	}
}

func TestCannedFixedClampsIndex(t *testing.T) {
	c := NewCannedFixed(999)

	res, err := c.ExtractText(context.Background(), nil)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if res.Text != Responses()[0] {
		t.Error("out-of-range index should clamp to the first response")
	}
}

func TestCannedRandomSelectsFromSet(t *testing.T) {
	c := NewCanned()
	known := make(map[string]struct{})
	for _, text := range Responses() {
		known[text] = struct{}{}
	}

	for i := 0; i < 20; i++ {
		res, err := c.ExtractText(context.Background(), nil)
		if err != nil {
			t.Fatalf("ExtractText: %v", err)
		}
		if _, ok := known[res.Text]; !ok {
			t.Fatal("random selection returned text outside the canned set")
		}
		if res.Confidence < 0.85 || res.Confidence > 0.98 {
			t.Errorf("confidence %v outside [0.85, 0.98]", res.Confidence)
		}
	}
}

func TestCannedHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewCanned().ExtractText(ctx, nil); err == nil {
		t.Error("canceled context should surface an error")
	}
}

func TestResponsesCoverParserVariants(t *testing.T) {
	responses := Responses()
	if len(responses) != 6 {
		t.Fatalf("expected 6 canned labels, got %d", len(responses))
	}

	var sawOrganic bool
	for _, text := range responses {
		lower := strings.ToLower(text)
		if !strings.Contains(lower, "ingredients") {
			t.Error("every canned label should mention ingredients")
		}
		if strings.Contains(lower, "organic ingredients") {
			sawOrganic = true
		}
	}
	if !sawOrganic {
		t.Error("canned set should include the organic-header variant")
	}
}
