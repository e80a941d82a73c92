package agreement

import "errors"

// Sentinel kinds for agreement metric errors. These allow errors.Is/As from
// callers.
var (
	ErrUnknownFeature    = errors.New("unknown feature")
	ErrUnknownCorrection = errors.New("unknown d-prime correction")
)
