// Package rank defines the labeler ranking store interface and errors.
//
// The benchmark compares many detectors and raters against one ground truth
// and ranks them by an agreement score; the store keeps each labeler's best
// score.
package rank

import "context"

// Entry represents one labeler row in the ranking.
type Entry struct {
	Rank    int
	Labeler string
	Score   float64
	Trials  int
}

// Store provides read/write access to the ranking state.
type Store interface {
	// Record folds a trial score into the labeler's aggregate. It returns
	// true when the labeler's mean score changed.
	Record(ctx context.Context, labeler string, score float64) (bool, error)

	// Rank returns the current rank and score for a labeler.
	// Returns ErrNotFound if the labeler is unknown.
	Rank(ctx context.Context, labeler string) (Entry, error)

	// TopN returns the top-N entries ordered by score desc.
	// Returns ErrInvalidLimit when n is not positive.
	TopN(ctx context.Context, n int) ([]Entry, error)

	// Count returns the number of labelers tracked.
	Count(ctx context.Context) int
}
