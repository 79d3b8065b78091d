package textextract

import (
	"context"
	"math/rand"
)

// cannedLabels is the fixed set of label texts the canned engine serves.
// Together they cover the ingredient-header variants and nutrition-block
// formats the parser recognizes.
var cannedLabels = []string{
	`NUTRITION FACTS
Serving Size 1 package (40g)
Calories 150
Total Fat 6g
Saturated Fat 3g
Trans Fat 0g
Cholesterol 10mg
Sodium 125mg
Total Carbohydrate 20g
Dietary Fiber 2g
Total Sugars 12g
Protein 4g

INGREDIENTS: Wheat flour, sugar, palm oil, milk powder, eggs, salt, baking powder, artificial vanilla, sodium benzoate, red dye 40`,

	`INGREDIENTS: Water, high fructose corn syrup, citric acid, natural flavors, sodium benzoate, potassium sorbate, yellow dye 6, caffeine

NUTRITION INFORMATION
Calories per serving: 140
Total Fat: 0g
Sodium: 55mg
Total Carbs: 39g
Sugars: 38g`,

	`INGREDIENTS: Milk, sugar, cocoa, vanilla extract, carrageenan, guar gum

NUTRITIONAL INFORMATION (per 100ml):
Energy: 280kJ/67kcal
Fat: 2.1g
Saturated Fat: 1.3g
Carbohydrates: 9.8g
Sugars: 9.7g
Protein: 3.4g
Salt: 0.1g`,

	`INGREDIENTS: Wheat flour, water, yeast, salt, sugar, vegetable oil, milk powder, eggs, BHA, BHT

NUTRITION FACTS
Serving Size: 2 slices (60g)
Calories: 160
Total Fat: 2g
Sodium: 320mg
Total Carbohydrate: 30g
Dietary Fiber: 2g
Protein: 6g`,

	`ORGANIC INGREDIENTS: Organic wheat flour, organic sugar, organic palm oil, organic milk, organic eggs, sea salt, organic vanilla extract, baking soda

NUTRITION INFORMATION
Per serving (30g):
Energy: 520kJ/125kcal
Fat: 5.2g
Saturated Fat: 2.8g
Carbohydrates: 18g
Sugars: 6.5g
Protein: 2.1g
Salt: 0.4g`,

	`INGREDIENTS: Brown rice, water, coconut oil, sea salt, nutritional yeast

NUTRITION FACTS
Serving Size: 1 cup (150g)
Calories: 180
Total Fat: 4g
Sodium: 200mg
Total Carbohydrate: 35g
Dietary Fiber: 3g
Protein: 4g`,
}

// fixedConfidence is reported when the response index is pinned.
const fixedConfidence = 0.92

// Canned is an Extractor that ignores the image and serves one of the fixed
// label texts. By default selection is random per call; NewCannedFixed pins
// a single response for reproducible tests.
type Canned struct {
	fixed int // -1 means random selection
}

// NewCanned creates a canned extractor with randomized selection.
func NewCanned() *Canned {
	return &Canned{fixed: -1}
}

// NewCannedFixed creates a canned extractor that always serves response i.
// Out-of-range indices clamp to the first response.
func NewCannedFixed(i int) *Canned {
	if i < 0 || i >= len(cannedLabels) {
		i = 0
	}
	return &Canned{fixed: i}
}

// Name implements Extractor.
func (c *Canned) Name() string { return "canned" }

// ExtractText implements Extractor. The image bytes are ignored.
func (c *Canned) ExtractText(ctx context.Context, image []byte) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if c.fixed >= 0 {
		return Result{Text: cannedLabels[c.fixed], Confidence: fixedConfidence}, nil
	}
	// The shared top-level source is safe for concurrent use.
	return Result{
		Text:       cannedLabels[rand.Intn(len(cannedLabels))],
		Confidence: 0.85 + rand.Float64()*0.13,
	}, nil
}

// Responses returns a copy of the canned label set.
func Responses() []string {
	out := make([]string, len(cannedLabels))
	copy(out, cannedLabels)
	return out
}
