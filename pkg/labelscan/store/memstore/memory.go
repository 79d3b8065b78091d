// Package memstore provides an in-memory store.Store used by tests and as
// the outage-simulation double.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/nutricheck/labelscan/pkg/labelscan/internalerr"
	"github.com/nutricheck/labelscan/pkg/labelscan/report"
	"github.com/nutricheck/labelscan/pkg/labelscan/store"
	"github.com/nutricheck/labelscan/pkg/labelscan/taxonomy"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu      sync.RWMutex
	entries []taxonomy.Entry
	scans   []report.ScanReport

	// FailReads/FailWrites make the corresponding operations return
	// ErrStoreUnavailable, simulating a store outage.
	FailReads  bool
	FailWrites bool
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// FindIngredient matches a stored synonym exactly or the stored name as a
// case-insensitive substring of the token, first entry wins. Name containment
// runs one direction only, unlike the taxonomy's bidirectional match; both
// store implementations keep the same behavior.
func (s *Store) FindIngredient(ctx context.Context, token string) (taxonomy.Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailReads {
		return taxonomy.Entry{}, false, internalerr.ErrStoreUnavailable
	}

	key := strings.ToLower(strings.TrimSpace(token))
	if key == "" {
		return taxonomy.Entry{}, false, nil
	}

	for _, e := range s.entries {
		for _, syn := range e.Synonyms {
			if syn == key {
				return copyEntry(e), true, nil
			}
		}
		if strings.Contains(key, strings.ToLower(e.Name)) {
			return copyEntry(e), true, nil
		}
	}
	return taxonomy.Entry{}, false, nil
}

// UpsertIngredients replaces entries by name, appending new ones in order.
func (s *Store) UpsertIngredients(ctx context.Context, entries []taxonomy.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return internalerr.ErrStoreUnavailable
	}

	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		replaced := false
		for i, existing := range s.entries {
			if existing.Name == e.Name {
				s.entries[i] = copyEntry(e)
				replaced = true
				break
			}
		}
		if !replaced {
			s.entries = append(s.entries, copyEntry(e))
		}
	}
	return nil
}

// ListIngredients returns stored entries in insertion order.
func (s *Store) ListIngredients(ctx context.Context, limit int) ([]taxonomy.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailReads {
		return nil, internalerr.ErrStoreUnavailable
	}

	if limit <= 0 {
		limit = 100
	}

	n := len(s.entries)
	if n > limit {
		n = limit
	}
	out := make([]taxonomy.Entry, 0, n)
	for _, e := range s.entries[:n] {
		out = append(out, copyEntry(e))
	}
	return out, nil
}

// InsertScan stores a scan report.
func (s *Store) InsertScan(ctx context.Context, r report.ScanReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return internalerr.ErrStoreUnavailable
	}

	s.scans = append(s.scans, r)
	return nil
}

// ListScans returns stored scans newest first.
func (s *Store) ListScans(ctx context.Context, limit int) ([]report.ScanReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailReads {
		return nil, internalerr.ErrStoreUnavailable
	}

	if limit <= 0 {
		limit = 10
	}

	out := make([]report.ScanReport, len(s.scans))
	copy(out, s.scans)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func copyEntry(e taxonomy.Entry) taxonomy.Entry {
	out := e
	if e.BannedIn != nil {
		out.BannedIn = make(map[string]bool, len(e.BannedIn))
		for k, v := range e.BannedIn {
			out.BannedIn[k] = v
		}
	}
	out.Sources = append([]string(nil), e.Sources...)
	out.Synonyms = append([]string(nil), e.Synonyms...)
	return out
}

var _ store.Store = (*Store)(nil)
