package board

import "errors"

// Contract violations. These mean the caller handed the engine malformed
// input; an illegal but well-formed move is reported as a Rejection instead.
var (
	// ErrFormat is returned for malformed position strings and move notation.
	ErrFormat = errors.New("format error")

	// ErrRange is returned for coordinates or colors outside their domain.
	ErrRange = errors.New("range error")
)
