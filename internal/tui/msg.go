package tui

import (
	"github.com/plumharbor/daylens/internal/classify"
	"github.com/plumharbor/daylens/internal/journal"
)

// msgLoaded carries freshly read log text back into the update loop.
type msgLoaded struct {
	raw string
	err error
}

// msgClassified signals that categorization for the given session sequence
// finished (remote success or local fallback). entries is the categorized
// snapshot; the handler copies its categories back into the session only
// when seq still matches.
type msgClassified struct {
	seq     int
	entries []*journal.Entry
	result  classify.Result
}

// msgAdvice carries a resolved advice request. Messages whose seq does not
// match the current session are stale and dropped.
type msgAdvice struct {
	seq  int
	text string
	err  error
}
