package rank

import (
	"context"
	"math"
	"sort"
	"sync"
)

// record accumulates trial scores for one labeler.
type record struct {
	sum    float64
	trials int
}

func (r record) mean() float64 {
	if r.trials == 0 {
		return math.NaN()
	}
	return r.sum / float64(r.trials)
}

// MemStore is an in-memory Store implementation.
//
// Ordering: mean score DESC, then labeler name ASC (deterministic).
type MemStore struct {
	mu      sync.RWMutex
	records map[string]record
}

// NewMemStore creates an empty in-memory ranking store.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]record)}
}

// Record folds a trial score into the labeler's aggregate. NaN scores are
// ignored: an undefined metric should not drag a labeler's mean.
func (s *MemStore) Record(_ context.Context, labeler string, score float64) (bool, error) {
	if math.IsNaN(score) {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.records[labeler]
	r.sum += score
	r.trials++
	s.records[labeler] = r
	return true, nil
}

// Rank returns the current rank and mean score for a labeler.
func (s *MemStore) Rank(ctx context.Context, labeler string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.records[labeler]; !ok {
		return Entry{}, ErrNotFound
	}
	for _, e := range s.sortedLocked() {
		if e.Labeler == labeler {
			return e, nil
		}
	}
	return Entry{}, ErrNotFound
}

// TopN returns the best n labelers by mean score.
func (s *MemStore) TopN(_ context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, ErrInvalidLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.sortedLocked()
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries, nil
}

// Count returns the number of labelers tracked.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// sortedLocked builds the ranked entry list. Callers hold at least a read
// lock.
func (s *MemStore) sortedLocked() []Entry {
	entries := make([]Entry, 0, len(s.records))
	for name, r := range s.records {
		entries = append(entries, Entry{Labeler: name, Score: r.mean(), Trials: r.trials})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Labeler < entries[j].Labeler
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
