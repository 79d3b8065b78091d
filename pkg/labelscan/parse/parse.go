// Package parse pulls structured data out of raw OCR text. Parsing is pure
// and never fails: text without an ingredients header or nutrition block
// degrades to empty results.
package parse

import (
	"regexp"
	"strings"
)

// ingredientsPattern captures everything after the first "ingredient(s):"
// header up to a blank line, the word "nutrition", or end of text.
var ingredientsPattern = regexp.MustCompile(`(?is)ingredients?\s*:?\s*(.+?)(?:\n\n|nutrition|$)`)

// minTokenLen drops OCR fragments: pieces of 2 or fewer characters after
// trimming are noise, not ingredients.
const minTokenLen = 3

// ExtractIngredients returns the comma-separated ingredient tokens in their
// order of appearance. No header means no ingredients, not an error.
func ExtractIngredients(text string) []string {
	m := ingredientsPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	var tokens []string
	for _, piece := range strings.Split(m[1], ",") {
		piece = strings.TrimSpace(piece)
		if len(piece) < minTokenLen {
			continue
		}
		tokens = append(tokens, piece)
	}
	return tokens
}

// factPattern declares one nutrition fact: the label phrase to look for, the
// numeric value shape, and the unit token that must follow the value (empty
// for unitless facts). Adding a fact is a row here, not new control flow.
type factPattern struct {
	name   string
	phrase string
	value  string
	unit   string
}

var factPatterns = []factPattern{
	{name: "calories", phrase: `calories?`, value: `\d+`},
	{name: "total_fat", phrase: `total\s*fat`, value: `\d+\.?\d*`, unit: "g"},
	{name: "saturated_fat", phrase: `saturated\s*fat`, value: `\d+\.?\d*`, unit: "g"},
	{name: "trans_fat", phrase: `trans\s*fat`, value: `\d+\.?\d*`, unit: "g"},
	{name: "cholesterol", phrase: `cholesterol`, value: `\d+`, unit: "mg"},
	{name: "sodium", phrase: `sodium`, value: `\d+`, unit: "mg"},
	{name: "total_carbs", phrase: `total\s*carbohydrate`, value: `\d+`, unit: "g"},
	{name: "fiber", phrase: `dietary\s*fiber`, value: `\d+`, unit: "g"},
	{name: "sugars", phrase: `(?:total\s*)?sugars?`, value: `\d+\.?\d*`, unit: "g"},
	{name: "protein", phrase: `protein`, value: `\d+\.?\d*`, unit: "g"},
}

var factRegexps = compileFactPatterns(factPatterns)

func compileFactPatterns(patterns []factPattern) map[string]*regexp.Regexp {
	compiled := make(map[string]*regexp.Regexp, len(patterns))
	for _, fp := range patterns {
		compiled[fp.name] = regexp.MustCompile(`(?i)` + fp.phrase + `\s*:?\s*(` + fp.value + `)\s*` + fp.unit)
	}
	return compiled
}

// ExtractNutritionFacts applies each fact pattern independently and returns
// the raw captured value strings keyed by fact name. Absent facts are simply
// omitted; the first match per pattern wins.
func ExtractNutritionFacts(text string) map[string]string {
	facts := make(map[string]string)
	for _, fp := range factPatterns {
		if m := factRegexps[fp.name].FindStringSubmatch(text); m != nil {
			facts[fp.name] = m[1]
		}
	}
	return facts
}

// Label is the parsed view of one OCR text.
type Label struct {
	RawText     string
	Ingredients []string
	Nutrition   map[string]string
}

// ParseLabel runs both extractors over the text.
func ParseLabel(text string) Label {
	return Label{
		RawText:     text,
		Ingredients: ExtractIngredients(text),
		Nutrition:   ExtractNutritionFacts(text),
	}
}
