package classify

import (
	"testing"

	"github.com/plumharbor/daylens/internal/journal"
)

func testEntry(start, content string) *journal.Entry {
	return &journal.Entry{
		ID:       2,
		Start:    start,
		End:      "23:59",
		Content:  content,
		Duration: journal.CalculateDuration(start, "23:59"),
		Category: journal.CategoryRoutine,
	}
}

func TestLocal_DecisionOrder(t *testing.T) {
	tests := []struct {
		start, content string
		want           journal.Category
	}{
		{"13:00", "午睡", journal.CategoryResting},         // resting keyword
		{"10:00", "開會", journal.CategoryWork},            // work keyword
		{"09:00", "閱讀", journal.CategoryDevelopment},     // development keyword
		{"18:00", "陪家人", journal.CategoryFamily},         // family keyword
		{"03:00", "起來喝水", journal.CategoryResting},       // start hour in [0,7)
		{"06:59", "隨便什麼", journal.CategoryResting},       // boundary: hour 6
		{"07:00", "隨便什麼", journal.CategoryRoutine},       // boundary: hour 7
		{"12:00", "沒有關鍵字的活動", journal.CategoryRoutine},   // default
		{"02:00", "工作到深夜", journal.CategoryWork},         // keywords beat the hour rule
	}
	lex := journal.DefaultLexicon()
	for _, tt := range tests {
		e := testEntry(tt.start, tt.content)
		Local([]*journal.Entry{e}, lex)
		if e.Category != tt.want {
			t.Errorf("Local(%s %q) = %s, want %s", tt.start, tt.content, e.Category, tt.want)
		}
	}
}

func TestLocal_AlwaysAssignsValidCategory(t *testing.T) {
	entries := []*journal.Entry{
		testEntry("08:00", ""),
		testEntry("15:30", "☃☃☃"),
	}
	Local(entries, journal.DefaultLexicon())
	for _, e := range entries {
		if !e.Category.Valid() {
			t.Errorf("entry %q left with invalid category %q", e.Content, e.Category)
		}
	}
}
