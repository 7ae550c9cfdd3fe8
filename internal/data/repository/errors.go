package repository

import "errors"

var (
	// ErrNotFound is returned by writes that matched no row. Lookup misses
	// return (nil, nil) instead.
	ErrNotFound = errors.New("not found")

	// ErrAlreadySettled is returned by Settle when the paid compare-and-set
	// matched no row because the order was settled earlier.
	ErrAlreadySettled = errors.New("already settled")
)
