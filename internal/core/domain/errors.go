package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist in the library.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedFormat indicates a file extension outside {epub, pdf, txt}.
	// Permanent: a wrong extension never becomes parseable on retry.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrOpenDocument indicates a source file that is missing, unreadable,
	// or structurally invalid (corrupt EPUB or PDF archive).
	ErrOpenDocument = errors.New("cannot open document")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
