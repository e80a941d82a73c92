package match

import "errors"

// Sentinel kinds for matching errors. These allow errors.Is/As from callers.
var (
	ErrUnknownStrategy  = errors.New("unknown matching strategy")
	ErrInvalidParameter = errors.New("invalid matching parameter")
)
