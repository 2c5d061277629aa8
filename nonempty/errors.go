package nonempty

import "errors"

// Sentinel errors returned by Seq constructors and combinators.
var (
	// ErrEmptyInput is returned by From when given a slice with no elements.
	// It is the only way a Seq construction can fail.
	ErrEmptyInput = errors.New("nonempty: cannot build a sequence from an empty slice")

	// ErrLengthMismatch is returned by StrictZip when the two sequences do
	// not have the same length.
	ErrLengthMismatch = errors.New("nonempty: sequences must have the same length")
)
