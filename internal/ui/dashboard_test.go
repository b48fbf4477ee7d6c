package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/plumharbor/daylens/internal/classify"
	"github.com/plumharbor/daylens/internal/journal"
	"github.com/plumharbor/daylens/internal/stats"
)

func sessionFor(t *testing.T, raw string) *journal.Session {
	t.Helper()
	s := journal.NewSession()
	if err := s.Load(raw); err != nil {
		t.Fatalf("Load: %v", err)
	}
	classify.Local(s.UserEntries(), journal.DefaultLexicon())
	return s
}

func TestDashboard_ContainsAllSections(t *testing.T) {
	s := sessionFor(t, "- 09:00 ~ 10:00 閱讀 ❚❚❚❚❚\n- 10:00 ~ 11:30 開會 ❚❚\n- > 想法\n- v 行動")
	rep := stats.BuildReport(s.Entries, stats.DefaultOptions())

	out := New(journal.DefaultLexicon()).Dashboard(s, rep)

	for _, want := range []string{
		"Time by category",
		"Immersion distribution",
		"Immersion by category",
		"Energy transitions",
		"Productivity score",
		"Thoughts",
		"Actions",
		"想法",
		"行動",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestDashboard_FallbackNotice(t *testing.T) {
	s := sessionFor(t, "- 09:00 ~ 10:00 閱讀")
	rep := stats.BuildReport(s.Entries, stats.DefaultOptions())
	r := New(journal.DefaultLexicon())

	if out := r.Dashboard(s, rep); strings.Contains(out, "keyword rules") {
		t.Error("fallback notice shown without fallback")
	}
	s.Fallback = true
	if out := r.Dashboard(s, rep); !strings.Contains(out, "keyword rules") {
		t.Error("fallback notice missing")
	}
}

func TestAdvicePanel_States(t *testing.T) {
	r := New(journal.DefaultLexicon())

	if out := r.AdvicePanel(classify.Advice{State: classify.AdviceNotStarted}); out != "" {
		t.Errorf("not-started panel = %q, want empty", out)
	}
	if out := r.AdvicePanel(classify.Advice{State: classify.AdvicePending}); !strings.Contains(out, "generating") {
		t.Errorf("pending panel = %q", out)
	}
	failed := classify.Advice{State: classify.AdviceFailed, Err: errors.New("rate limited")}
	if out := r.AdvicePanel(failed); !strings.Contains(out, "rate limited") {
		t.Errorf("failed panel = %q", out)
	}
	ready := classify.Advice{State: classify.AdviceReady, Text: "## 回顧\n不錯"}
	if out := r.AdvicePanel(ready); !strings.Contains(out, "不錯") {
		t.Errorf("ready panel = %q", out)
	}
}

func TestEntryLine_ClampsDrawnBarsNotValue(t *testing.T) {
	r := New(journal.DefaultLexicon())
	e := &journal.Entry{
		ID: 2, Start: "09:00", End: "10:00",
		Content: "研究", Immersion: 7, Duration: 60,
		Category: journal.CategoryDevelopment,
	}
	line := r.EntryLine(e)
	if strings.Contains(line, strings.Repeat("❚", 6)) {
		t.Error("drawn bar run exceeds the display ceiling")
	}
	if !strings.Contains(line, "(7)") {
		t.Error("numeric immersion value must be printed verbatim")
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{45, "45m"},
		{60, "1h 00m"},
		{95, "1h 35m"},
		{0, "0m"},
	}
	for _, tt := range tests {
		if got := formatMinutes(tt.minutes); got != tt.want {
			t.Errorf("formatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestScale(t *testing.T) {
	if got := scale(0, 100, 30); got != 0 {
		t.Errorf("scale(0) = %d", got)
	}
	if got := scale(1, 10000, 30); got != 1 {
		t.Errorf("scale tiny nonzero = %d, want at least 1", got)
	}
	if got := scale(100, 100, 30); got != 30 {
		t.Errorf("scale full = %d, want 30", got)
	}
	if got := scale(5, 0, 30); got != 0 {
		t.Errorf("scale with zero total = %d, want 0", got)
	}
}
