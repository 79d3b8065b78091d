package taxonomy

import "strings"

// RiskLevel is the coarse health-risk classification for an ingredient.
type RiskLevel string

const (
	RiskSafe    RiskLevel = "safe"
	RiskCaution RiskLevel = "caution"
	RiskBanned  RiskLevel = "banned"
)

// Valid reports whether the level is one of the three known tiers.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskSafe, RiskCaution, RiskBanned:
		return true
	}
	return false
}

// Entry describes one canonical ingredient's risk metadata.
// Entries are immutable after the taxonomy is built.
type Entry struct {
	Name        string          `json:"name" yaml:"name"`
	RiskLevel   RiskLevel       `json:"risk_level" yaml:"risk_level"`
	Description string          `json:"description" yaml:"description"`
	BannedIn    map[string]bool `json:"banned_in,omitempty" yaml:"banned_in,omitempty"`
	Sources     []string        `json:"sources,omitempty" yaml:"sources,omitempty"`
	Synonyms    []string        `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
}

// Taxonomy is an ordered, read-only reference set of ingredient entries.
// Entry order is significant: Lookup returns the first match, so the order
// entries were added in is the tie break.
type Taxonomy struct {
	entries []Entry
}

// New builds a taxonomy from entries, preserving their order. Synonyms are
// normalized to lowercase; entries without any synonym get their lowercased
// name as the single key.
func New(entries []Entry) *Taxonomy {
	t := &Taxonomy{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		if len(e.Synonyms) == 0 {
			e.Synonyms = []string{strings.ToLower(e.Name)}
		} else {
			normalized := make([]string, len(e.Synonyms))
			for i, syn := range e.Synonyms {
				normalized[i] = strings.ToLower(strings.TrimSpace(syn))
			}
			e.Synonyms = normalized
		}
		t.entries = append(t.entries, e)
	}
	return t
}

// Lookup finds the reference entry for an ingredient token. Matching is
// case-insensitive bidirectional substring containment: a token matches an
// entry when it equals a synonym, contains a synonym, or a synonym contains
// it. The first entry in taxonomy order wins, so a short synonym embedded in
// an unrelated longer token still matches.
func (t *Taxonomy) Lookup(token string) (Entry, bool) {
	key := strings.ToLower(strings.TrimSpace(token))
	if key == "" {
		return Entry{}, false
	}
	for _, e := range t.entries {
		for _, syn := range e.Synonyms {
			if syn == "" {
				continue
			}
			if strings.Contains(key, syn) || strings.Contains(syn, key) {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the entry list in taxonomy order.
func (t *Taxonomy) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Taxonomy) Len() int { return len(t.entries) }
