package journal

import (
	"fmt"
	"strings"
	"testing"
)

// mustParseOne parses raw text and fails unless exactly one entry results.
func mustParseOne(t *testing.T, raw string) *Entry {
	t.Helper()
	res := Parse(raw)
	if len(res.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(res.Entries))
	}
	return res.Entries[0]
}

func TestParse_TimeHeaderLine(t *testing.T) {
	e := mustParseOne(t, "- 09:00 ~ 10:30 閱讀 ❚❚❚")
	if e.Start != "09:00" || e.End != "10:30" {
		t.Errorf("times = %s ~ %s", e.Start, e.End)
	}
	if e.Content != "閱讀" {
		t.Errorf("content = %q", e.Content)
	}
	if e.Immersion != 3 {
		t.Errorf("immersion = %d, want 3", e.Immersion)
	}
	if e.Duration != 90 {
		t.Errorf("duration = %d, want 90", e.Duration)
	}
	if e.Category != CategoryRoutine {
		t.Errorf("initial category = %s, want routine", e.Category)
	}
}

func TestParse_AsciiBars(t *testing.T) {
	e := mustParseOne(t, "09:00 ~ 10:00 deep work ||||")
	if e.Immersion != 4 {
		t.Errorf("immersion = %d, want 4", e.Immersion)
	}
	if e.Content != "deep work" {
		t.Errorf("content = %q", e.Content)
	}
}

func TestParse_NoBarsMeansZeroImmersion(t *testing.T) {
	e := mustParseOne(t, "- 12:00 ~ 12:30 午餐")
	if e.Immersion != 0 {
		t.Errorf("immersion = %d, want 0", e.Immersion)
	}
}

func TestParse_ImmersionAboveFiveKeptUnclamped(t *testing.T) {
	e := mustParseOne(t, "- 09:00 ~ 10:00 研究 ❚❚❚❚❚❚")
	if e.Immersion != 6 {
		t.Errorf("immersion = %d, want 6 (no clamp at parse time)", e.Immersion)
	}
}

func TestParse_ThoughtAndActionLines(t *testing.T) {
	raw := strings.Join([]string{
		"- 09:00 ~ 10:00 閱讀 ❚❚",
		"- > 這本書比想像中難",
		"- v 明天繼續讀第三章",
		"> bare thought",
		"v bare action",
	}, "\n")
	res := Parse(raw)
	if len(res.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(res.Entries))
	}
	wantThoughts := []string{"這本書比想像中難", "bare thought"}
	if len(res.Thoughts) != len(wantThoughts) {
		t.Fatalf("thoughts = %v", res.Thoughts)
	}
	for i, want := range wantThoughts {
		if res.Thoughts[i] != want {
			t.Errorf("thought[%d] = %q, want %q", i, res.Thoughts[i], want)
		}
	}
	wantActions := []string{"明天繼續讀第三章", "bare action"}
	for i, want := range wantActions {
		if res.Actions[i] != want {
			t.Errorf("action[%d] = %q, want %q", i, res.Actions[i], want)
		}
	}
}

func TestParse_UnrecognizedLinesSilentlyDropped(t *testing.T) {
	raw := strings.Join([]string{
		"today was fine",
		"- 09:00 ~ 10:00 reading ❚",
		"## heading",
		"- 25:00 ~ 26:00 impossible time",
		"- 09:61 ~ 10:00 impossible minute",
		"",
	}, "\n")
	res := Parse(raw)
	if len(res.Entries) != 1 {
		t.Fatalf("entries = %d, want 1 (noise must be dropped, not fail)", len(res.Entries))
	}
}

func TestParse_IDsDeriveFromLinePosition(t *testing.T) {
	raw := "noise\n- 10:00 ~ 11:00 b\n\n- 09:00 ~ 10:00 a"
	res := Parse(raw)
	if len(res.Entries) != 2 {
		t.Fatalf("entries = %d", len(res.Entries))
	}
	// Line 2 and line 4, ids offset by one so id 0 stays reserved.
	if res.Entries[0].ID != 3 || res.Entries[1].ID != 5 {
		t.Errorf("ids = %d, %d", res.Entries[0].ID, res.Entries[1].ID)
	}
}

func TestParse_NormalizesSingleDigitHours(t *testing.T) {
	e := mustParseOne(t, "- 9:05 ~ 10:00 morning")
	if e.Start != "09:05" {
		t.Errorf("start = %q, want zero-padded 09:05", e.Start)
	}
}

func TestCalculateDuration(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"09:00", "10:00", 60},
		{"23:30", "00:15", 45},   // crosses midnight
		{"10:00", "10:00", 0},    // equal times are zero-length, not a day
		{"00:00", "23:59", 1439}, // maximum
		{"22:00", "07:00", 540},  // long wrap
	}
	for _, tt := range tests {
		if got := CalculateDuration(tt.start, tt.end); got != tt.want {
			t.Errorf("CalculateDuration(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestCalculateDuration_AlwaysInRange(t *testing.T) {
	for sh := 0; sh < 24; sh += 3 {
		for eh := 0; eh < 24; eh += 3 {
			start := fmt.Sprintf("%02d:17", sh)
			end := fmt.Sprintf("%02d:42", eh)
			d := CalculateDuration(start, end)
			if d < 0 || d > 1439 {
				t.Fatalf("duration(%s, %s) = %d out of [0, 1439]", start, end, d)
			}
		}
	}
}

func TestAddSleepIfMissing(t *testing.T) {
	res := Parse("- 09:00 ~ 10:00 reading ❚❚")
	entries := AddSleepIfMissing(res.Entries)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	sleep := entries[0]
	if sleep.ID != SleepEntryID {
		t.Errorf("sleep id = %d, want %d", sleep.ID, SleepEntryID)
	}
	if sleep.Start != "00:00" || sleep.End != "09:00" {
		t.Errorf("sleep span = %s ~ %s", sleep.Start, sleep.End)
	}
	if sleep.Duration != 540 {
		t.Errorf("sleep duration = %d, want 540", sleep.Duration)
	}
	if sleep.Category != CategoryResting {
		t.Errorf("sleep category = %s, want resting", sleep.Category)
	}
}

func TestAddSleepIfMissing_Idempotent(t *testing.T) {
	res := Parse("- 08:00 ~ 09:00 breakfast")
	entries := AddSleepIfMissing(res.Entries)
	entries = AddSleepIfMissing(entries)
	sleeps := 0
	for _, e := range entries {
		if e.ID == SleepEntryID {
			sleeps++
		}
	}
	if sleeps != 1 {
		t.Errorf("sleep entries = %d, want exactly 1", sleeps)
	}
}

func TestAddSleepIfMissing_NoOpWhenDayStartsAtMidnight(t *testing.T) {
	res := Parse("- 00:00 ~ 07:00 睡覺\n- 07:00 ~ 08:00 早餐")
	entries := AddSleepIfMissing(res.Entries)
	if len(entries) != 2 {
		t.Errorf("entries = %d, want 2 (no synthetic entry)", len(entries))
	}
}

func TestAddSleepIfMissing_SortsByStart(t *testing.T) {
	res := Parse("- 14:00 ~ 15:00 b\n- 09:00 ~ 10:00 a")
	entries := AddSleepIfMissing(res.Entries)
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Start > entries[i].Start {
			t.Fatalf("entries not sorted by start: %s before %s", entries[i-1].Start, entries[i].Start)
		}
	}
}

func TestValidate_NoEntries(t *testing.T) {
	if err := Validate(Parse("just some thoughts\n> note")); err != ErrNoEntries {
		t.Errorf("err = %v, want ErrNoEntries", err)
	}
	if err := Validate(Parse("- 09:00 ~ 10:00 ok")); err != nil {
		t.Errorf("err = %v, want nil", err)
	}
}

func TestUserEntries_ExcludesSyntheticSleep(t *testing.T) {
	res := Parse("- 09:00 ~ 10:00 reading")
	entries := AddSleepIfMissing(res.Entries)
	user := UserEntries(entries)
	if len(user) != 1 {
		t.Fatalf("user entries = %d, want 1", len(user))
	}
	if user[0].ID == SleepEntryID {
		t.Error("synthetic sleep entry leaked into user entries")
	}
}

func TestReconstruct_ParseRoundTrip(t *testing.T) {
	raw := "- 09:00 ~ 10:00 閱讀 ❚❚❚\n- 10:00 ~ 11:30 開會 ❚❚\n- 23:30 ~ 00:15 宵夜"
	first := Parse(raw)
	second := Parse(Reconstruct(first.Entries))
	if len(second.Entries) != len(first.Entries) {
		t.Fatalf("round trip count %d != %d", len(second.Entries), len(first.Entries))
	}
	for i := range first.Entries {
		a, b := first.Entries[i], second.Entries[i]
		if a.Start != b.Start || a.End != b.End || a.Content != b.Content || a.Immersion != b.Immersion {
			t.Errorf("entry %d: %+v != %+v", i, a, b)
		}
	}
}
