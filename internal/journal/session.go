package journal

import "strings"

// Session is the owned, resettable state of one analysis pass: the entry
// sequence (single mutable source of truth), the thought/action side
// channels, and bookkeeping about how classification went. There is no
// ambient global state; each load replaces the previous session wholesale.
type Session struct {
	Entries  []*Entry
	Thoughts []string
	Actions  []string

	// Fallback records that the deterministic local classifier was used
	// instead of (or after a failed) remote classification.
	Fallback bool

	seq int
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Seq identifies the current load generation. Asynchronous results tagged
// with an older sequence belong to a superseded session and are discarded.
func (s *Session) Seq() int {
	return s.seq
}

// Reset discards all session state and advances the sequence.
func (s *Session) Reset() {
	s.Entries = nil
	s.Thoughts = nil
	s.Actions = nil
	s.Fallback = false
	s.seq++
}

// Load resets the session, parses raw log text, validates it, and applies
// sleep gap-filling. On error the session is left empty. Blank input is
// rejected with ErrEmptyLog before parsing.
func (s *Session) Load(raw string) error {
	s.Reset()
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyLog
	}
	res := Parse(raw)
	if err := Validate(res); err != nil {
		return err
	}
	s.Entries = AddSleepIfMissing(res.Entries)
	s.Thoughts = res.Thoughts
	s.Actions = res.Actions
	return nil
}

// Reassign moves the entry with the given id to a new category. Returns
// false when the id is unknown or the category is outside the closed set.
// Callers recompute all derived statistics after a successful reassignment.
func (s *Session) Reassign(id int, c Category) bool {
	if !c.Valid() {
		return false
	}
	for _, e := range s.Entries {
		if e.ID == id {
			e.Category = c
			return true
		}
	}
	return false
}

// UserEntries returns the session's entries minus the synthetic sleep entry.
func (s *Session) UserEntries() []*Entry {
	return UserEntries(s.Entries)
}
