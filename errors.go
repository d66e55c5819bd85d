package usas

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
// Parse failures wrap one of these with the line index, the offending unit
// and the original line.
var (
	// ErrMalformedLine indicates a corpus line or token unit that does not
	// match the corpus format.
	ErrMalformedLine = errors.New("usas: malformed corpus line")

	// ErrInvalidMWE indicates a broken or inconsistent multi-word-expression
	// marker, including unsupported nesting and declared-count mismatches.
	ErrInvalidMWE = errors.New("usas: invalid MWE marker")

	// ErrTagNotAllowed indicates a semantic tag absent from the supplied
	// validation set.
	ErrTagNotAllowed = errors.New("usas: tag not in validation set")

	// ErrLengthMismatch indicates parallel annotation sequences of unequal
	// length.
	ErrLengthMismatch = errors.New("usas: annotation length mismatch")
)
