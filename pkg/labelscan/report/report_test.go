package report

import (
	"sync"
	"testing"
	"time"

	"github.com/nutricheck/labelscan/pkg/labelscan/taxonomy"
)

func TestAssembleFieldsAndID(t *testing.T) {
	a := NewAssembler()

	image := ImageInfo{Filename: "label.png", Size: 2048, ContentType: "image/png"}
	verdicts := []Verdict{
		{Name: "Sugar", RiskLevel: taxonomy.RiskSafe, Confidence: 0.85},
	}
	nutrition := map[string]string{"calories": "150"}

	rep := a.Assemble(image, "raw text", verdicts, nutrition, 1500*time.Millisecond)

	if rep.ScanID == "" {
		t.Error("scan ID should be generated")
	}
	if rep.OCRText != "raw text" {
		t.Errorf("OCR text should be copied, got %q", rep.OCRText)
	}
	if len(rep.Ingredients) != 1 || rep.Ingredients[0].Name != "Sugar" {
		t.Errorf("verdicts should be carried through, got %v", rep.Ingredients)
	}
	if rep.Nutrition["calories"] != "150" {
		t.Errorf("nutrition should be carried through, got %v", rep.Nutrition)
	}
	if rep.ProcessingSeconds != 1.5 {
		t.Errorf("expected 1.5s processing time, got %v", rep.ProcessingSeconds)
	}
	if rep.Image != image {
		t.Errorf("image info mismatch: %v", rep.Image)
	}
	if rep.CreatedAt.IsZero() {
		t.Error("created-at should be stamped")
	}
}

// One assembler serves every request, so Assemble must be safe to call from
// concurrent handlers. Run with -race.
func TestAssembleConcurrent(t *testing.T) {
	a := NewAssembler()

	const workers = 8
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				rep := a.Assemble(ImageInfo{}, "", nil, nil, 0)
				mu.Lock()
				seen[rep.ScanID] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Errorf("expected %d unique scan IDs, got %d", workers*perWorker, len(seen))
	}
}

func TestAssembleIDsAreUnique(t *testing.T) {
	a := NewAssembler()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		rep := a.Assemble(ImageInfo{}, "", nil, nil, 0)
		if _, dup := seen[rep.ScanID]; dup {
			t.Fatalf("duplicate scan ID %q", rep.ScanID)
		}
		seen[rep.ScanID] = struct{}{}
	}
}
