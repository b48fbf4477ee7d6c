// Package journal parses free-text daily activity logs into timed,
// categorized entries and owns the per-analysis session state.
package journal

// Category is one of the six fixed life categories an entry can belong to.
// The set is closed: values outside it are rejected at the classifier
// boundary and never stored on an entry.
type Category string

const (
	CategoryWork        Category = "work"
	CategoryRoutine     Category = "routine"
	CategoryDevelopment Category = "development"
	CategoryFamily      Category = "family"
	CategorySocial      Category = "social"
	CategoryResting     Category = "resting"
)

// Categories returns all categories in canonical display order.
func Categories() []Category {
	return []Category{
		CategoryWork,
		CategoryRoutine,
		CategoryDevelopment,
		CategoryFamily,
		CategorySocial,
		CategoryResting,
	}
}

// ParseCategory maps a label string onto the closed category set.
// The second return value is false for anything outside the set.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryWork, CategoryRoutine, CategoryDevelopment,
		CategoryFamily, CategorySocial, CategoryResting:
		return Category(s), true
	}
	return "", false
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	_, ok := ParseCategory(string(c))
	return ok
}

// SleepEntryID is reserved for the auto-inserted sleep entry. User-derived
// entries always receive positive ids.
const SleepEntryID = 0

// Entry is a single time-block from the log: a wall-clock interval with
// free-text content, a self-reported immersion count, and a mutable
// category assignment.
type Entry struct {
	ID        int      `json:"id"`
	Start     string   `json:"start"` // HH:MM, 24-hour
	End       string   `json:"end"`   // HH:MM; may be "before" Start when crossing midnight
	Content   string   `json:"content"`
	Immersion int      `json:"immersion"` // count of bar glyphs, no upper clamp
	Duration  int      `json:"duration"`  // minutes, always in [0, 1439]
	Category  Category `json:"category"`
}

// ParseResult carries everything one parse pass extracts from raw text.
// Thoughts and actions are flat ordered side channels, not linked to
// individual entries.
type ParseResult struct {
	Entries  []*Entry
	Thoughts []string
	Actions  []string
}
