package domain

import "errors"

var (
	// ErrUnknownCategory signals a browse request for a corpus that does not exist.
	ErrUnknownCategory = errors.New("unknown category")
)
