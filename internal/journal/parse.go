package journal

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Line patterns, checked in priority order: thought, action, time header.
// Anything that matches none of them is silently dropped.
var (
	thoughtPattern = regexp.MustCompile(`^-?\s*>\s*(.+)$`)
	actionPattern  = regexp.MustCompile(`^-?\s*v\s+(.+)$`)
	headerPattern  = regexp.MustCompile(`^-?\s*(\d{1,2}):(\d{2})\s*~\s*(\d{1,2}):(\d{2})(.*)$`)
	// barPattern matches a contiguous run of immersion bar glyphs: the
	// marked glyph U+275A or its plain-keyboard stand-in.
	barPattern = regexp.MustCompile(`[❚|]+`)
)

// sleepContent is the placeholder content of the synthetic sleep entry.
const sleepContent = "睡眠"

// Parse converts raw multi-line log text into entries plus the thought and
// action side channels. It never fails: unrecognized lines are dropped.
// Every entry starts out in the default routine category.
func Parse(raw string) *ParseResult {
	res := &ParseResult{}
	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := thoughtPattern.FindStringSubmatch(line); m != nil {
			res.Thoughts = append(res.Thoughts, strings.TrimSpace(m[1]))
			continue
		}
		if m := actionPattern.FindStringSubmatch(line); m != nil {
			res.Actions = append(res.Actions, strings.TrimSpace(m[1]))
			continue
		}
		if e := parseHeaderLine(line, i+1); e != nil {
			res.Entries = append(res.Entries, e)
		}
	}
	return res
}

// parseHeaderLine parses a `HH:MM ~ HH:MM <content> <bars>` line. lineNo is
// the 1-based source line number; ids derive from it so they stay stable
// across later mutations. Returns nil for lines that do not match or carry
// an impossible time.
func parseHeaderLine(line string, lineNo int) *Entry {
	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	start, ok := normalizeTime(m[1], m[2])
	if !ok {
		return nil
	}
	end, ok := normalizeTime(m[3], m[4])
	if !ok {
		return nil
	}

	body := m[5]
	immersion := 0
	if loc := barPattern.FindStringIndex(body); loc != nil {
		immersion = utf8.RuneCountInString(body[loc[0]:loc[1]])
		body = body[:loc[0]] + body[loc[1]:]
	}

	return &Entry{
		ID:        lineNo + 1,
		Start:     start,
		End:       end,
		Content:   strings.TrimSpace(body),
		Immersion: immersion,
		Duration:  CalculateDuration(start, end),
		Category:  CategoryRoutine,
	}
}

// normalizeTime zero-pads an H:MM time to fixed-width HH:MM and rejects
// impossible hours or minutes. Fixed width keeps lexicographic entry
// ordering equivalent to chronological ordering.
func normalizeTime(hh, mm string) (string, bool) {
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	if h > 23 || m > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", h, m), true
}

// toMinutes converts a normalized HH:MM string to minutes since midnight.
func toMinutes(t string) int {
	h, _ := strconv.Atoi(t[:2])
	m, _ := strconv.Atoi(t[3:])
	return h*60 + m
}

// CalculateDuration returns the interval length in minutes. A strictly
// negative raw difference means the interval crosses midnight and wraps by
// one day; equal start and end are zero-length, not a full day.
func CalculateDuration(start, end string) int {
	d := toMinutes(end) - toMinutes(start)
	if d < 0 {
		d += 24 * 60
	}
	return d
}

// StartHour returns the hour component of an entry's start time.
func (e *Entry) StartHour() int {
	h, _ := strconv.Atoi(e.Start[:2])
	return h
}

// AddSleepIfMissing sorts entries by start time and, when the day does not
// begin at midnight, prepends a synthetic resting entry covering 00:00 up
// to the earliest start. Idempotent: at most one sleep entry ever exists.
func AddSleepIfMissing(entries []*Entry) []*Entry {
	if len(entries) == 0 {
		return entries
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start < entries[j].Start
	})
	first := entries[0]
	if first.Start == "00:00" {
		return entries
	}
	sleep := &Entry{
		ID:        SleepEntryID,
		Start:     "00:00",
		End:       first.Start,
		Content:   sleepContent,
		Immersion: 0,
		Duration:  CalculateDuration("00:00", first.Start),
		Category:  CategoryResting,
	}
	return append([]*Entry{sleep}, entries...)
}

// Validate fails with ErrNoEntries when a parse produced zero time entries.
// It is checked before gap-filling so an all-noise log is rejected rather
// than analyzed as pure sleep.
func Validate(res *ParseResult) error {
	if len(res.Entries) == 0 {
		return ErrNoEntries
	}
	return nil
}

// UserEntries returns all entries except the synthetic sleep entry. Remote
// and keyword classification are scoped to these; the synthetic entry keeps
// its preset resting category.
func UserEntries(entries []*Entry) []*Entry {
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID == SleepEntryID {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Reconstruct re-emits canonical log text for the given entries. Parsing
// the result yields the same start/end/content/immersion tuples.
func Reconstruct(entries []*Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s ~ %s %s", e.Start, e.End, e.Content)
		if e.Immersion > 0 {
			b.WriteString(" ")
			b.WriteString(strings.Repeat("❚", e.Immersion))
		}
		b.WriteString("\n")
	}
	return b.String()
}
