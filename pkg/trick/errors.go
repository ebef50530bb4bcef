package trick

import "errors"

var (
	ErrInvalidSetSize    = errors.New("invalid set size")
	ErrInfeasibleModulus = errors.New("infeasible modulus")
	ErrOutOfRange        = errors.New("value out of range")
	ErrInvalidRank       = errors.New("invalid rank")
	ErrDuplicateValue    = errors.New("duplicate value")
)
