package compare

import "errors"

// Sentinel kinds for orchestrator errors. These allow errors.Is/As from
// callers.
var (
	ErrUnknownMetric = errors.New("unknown metric")
	ErrInvalidConfig = errors.New("invalid comparison config")
)
