package enquire

import "errors"

// Common errors
var (
	// ErrCanceled is returned when the user cancels a prompt with Escape or Ctrl+C.
	// It is a distinct outcome, not a failure: callers should branch on it explicitly
	// instead of treating it like an I/O error.
	ErrCanceled = errors.New("prompt canceled")
	// ErrEOF is returned when the input source is exhausted before an answer was
	// submitted, e.g. Ctrl+D on an empty terminal or a scripted key sequence
	// running out during tests.
	ErrEOF = errors.New("EOF")
)
