package classify

import "errors"

// Sentinel errors for remote classification and advice generation. Any of
// them means the whole remote result is discarded; partial application of
// a response is never allowed.
var (
	// ErrNoAPIKey indicates no API key was configured for the remote call.
	ErrNoAPIKey = errors.New("no api key configured")
	// ErrBadStatus indicates a non-2xx transport status.
	ErrBadStatus = errors.New("unexpected response status")
	// ErrBadEnvelope indicates the completion envelope was malformed or empty.
	ErrBadEnvelope = errors.New("malformed completion envelope")
	// ErrNotArray indicates the model output did not parse as a JSON array
	// of strings.
	ErrNotArray = errors.New("model output is not a JSON array of strings")
	// ErrLengthMismatch indicates the label array length differs from the
	// input entry count.
	ErrLengthMismatch = errors.New("label count does not match entry count")
	// ErrUnknownLabel indicates a label outside the closed category set.
	ErrUnknownLabel = errors.New("label outside the category set")
)
