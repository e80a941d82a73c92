package rank

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrNotFound     = errors.New("labeler not found")
	ErrInvalidLimit = errors.New("invalid ranking limit")
)
