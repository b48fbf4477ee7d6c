package classify

import "github.com/plumharbor/daylens/internal/journal"

// Local deterministically categorizes entries in place using the lexicon's
// keyword sets and a time-of-day rule. Decision order per entry, first
// match wins: resting keywords, work keywords, development keywords, family
// keywords, start hour in [0,7) means resting, otherwise routine. It never
// fails and never blocks.
func Local(entries []*journal.Entry, lex *journal.Lexicon) {
	for _, e := range entries {
		if cat, ok := lex.Match(e.Content); ok {
			e.Category = cat
			continue
		}
		if e.StartHour() < 7 {
			e.Category = journal.CategoryResting
			continue
		}
		e.Category = journal.CategoryRoutine
	}
}
