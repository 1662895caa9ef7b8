package assignment

import "errors"

var (
	ErrNoDriversAvailable = errors.New("no drivers available")
	ErrNothingToAssign    = errors.New("no orders awaiting assignment")
)
