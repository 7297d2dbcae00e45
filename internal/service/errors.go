package service

import "errors"

// These indicate wiring or data defects rather than user mistakes; the bank
// validation at startup should make them unreachable.
var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrEmptyTally       = errors.New("empty tally")
	ErrUnknownCategory  = errors.New("unknown category")
)
