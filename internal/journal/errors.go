package journal

import "errors"

// Sentinel errors for parsing and session validation.
var (
	// ErrNoEntries indicates the log text produced zero time entries.
	// Recoverable: the user fixes the input and retries; no partial
	// dashboard is computed.
	ErrNoEntries = errors.New("no valid time entries found in log")
	// ErrEmptyLog indicates the input text was entirely blank.
	ErrEmptyLog = errors.New("log text is empty")
)
