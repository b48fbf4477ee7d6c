// Package stats derives aggregate statistics and trend signals from a
// categorized entry sequence. Every function is pure, total, and recomputes
// from scratch; there is no incremental or cached state. Callers rebuild
// the whole Report after any category mutation.
package stats

import (
	"math"
	"sort"

	"github.com/plumharbor/daylens/internal/journal"
)

// DefaultEnergyChangeThreshold is the minimum absolute immersion jump
// between consecutive active entries that counts as an energy transition.
const DefaultEnergyChangeThreshold = 2

// productiveCategories are the categories that count toward the
// productivity score when paired with high immersion.
var productiveCategories = map[journal.Category]bool{
	journal.CategoryWork:        true,
	journal.CategoryDevelopment: true,
}

// highImmersion is the immersion floor for "high-immersion" minutes.
const highImmersion = 4

// CategoryTotals sums entry durations grouped by category. Categories with
// zero minutes are absent from the map, not zero-valued.
func CategoryTotals(entries []*journal.Entry) map[journal.Category]int {
	totals := make(map[journal.Category]int)
	for _, e := range entries {
		totals[e.Category] += e.Duration
	}
	return totals
}

// ImmersionDistribution sums durations grouped by immersion level,
// restricted to levels 1 through 5. Entries at level 0 or above 5 are
// excluded entirely, not clipped.
func ImmersionDistribution(entries []*journal.Entry) map[int]int {
	dist := make(map[int]int)
	for _, e := range entries {
		if e.Immersion < 1 || e.Immersion > 5 {
			continue
		}
		dist[e.Immersion] += e.Duration
	}
	return dist
}

// TotalTime sums all entry durations with no filtering.
func TotalTime(entries []*journal.Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Duration
	}
	return total
}

// CategoryImmersion ranks one category by its duration-weighted average
// immersion.
type CategoryImmersion struct {
	Category         journal.Category `json:"category"`
	AverageImmersion float64          `json:"average_immersion"` // rounded to one decimal
	TotalMinutes     int              `json:"total_minutes"`
}

// ImmersionByCategory computes the duration-weighted average immersion per
// category, excluding resting entries and entries with zero immersion, and
// returns categories sorted descending by average. Ties keep the original
// encounter order. Categories with no qualifying minutes are absent, so no
// division by zero can occur.
func ImmersionByCategory(entries []*journal.Entry) []CategoryImmersion {
	type acc struct {
		weighted int // Σ(immersion × duration)
		minutes  int // Σ(duration)
	}
	sums := make(map[journal.Category]*acc)
	var order []journal.Category
	for _, e := range entries {
		if e.Category == journal.CategoryResting || e.Immersion == 0 {
			continue
		}
		a, ok := sums[e.Category]
		if !ok {
			a = &acc{}
			sums[e.Category] = a
			order = append(order, e.Category)
		}
		a.weighted += e.Immersion * e.Duration
		a.minutes += e.Duration
	}

	out := make([]CategoryImmersion, 0, len(order))
	for _, cat := range order {
		a := sums[cat]
		if a.minutes == 0 {
			continue
		}
		avg := float64(a.weighted) / float64(a.minutes)
		out = append(out, CategoryImmersion{
			Category:         cat,
			AverageImmersion: math.Round(avg*10) / 10,
			TotalMinutes:     a.minutes,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageImmersion > out[j].AverageImmersion
	})
	return out
}

// TransitionKind labels the direction of an energy transition.
type TransitionKind string

const (
	TransitionIncrease TransitionKind = "increase"
	TransitionDecrease TransitionKind = "decrease"
)

// TransitionEndpoint is one side of an energy transition.
type TransitionEndpoint struct {
	Content   string `json:"content"`
	Immersion int    `json:"immersion"`
}

// Transition records an immersion jump between two consecutive non-resting
// entries.
type Transition struct {
	Time       string             `json:"time"` // start time of the later entry
	Kind       TransitionKind     `json:"kind"`
	Difference int                `json:"difference"`
	From       TransitionEndpoint `json:"from"`
	To         TransitionEndpoint `json:"to"`
}

// EnergyTransitions filters out resting entries, walks consecutive pairs of
// the remainder in order, and emits a transition wherever the absolute
// immersion difference meets the threshold. The first active entry has no
// predecessor and never produces a transition.
func EnergyTransitions(entries []*journal.Entry, threshold int) []Transition {
	var active []*journal.Entry
	for _, e := range entries {
		if e.Category != journal.CategoryResting {
			active = append(active, e)
		}
	}

	var out []Transition
	for i := 1; i < len(active); i++ {
		prev, cur := active[i-1], active[i]
		diff := cur.Immersion - prev.Immersion
		if diff >= threshold || -diff >= threshold {
			kind := TransitionIncrease
			if diff < 0 {
				kind = TransitionDecrease
			}
			out = append(out, Transition{
				Time:       cur.Start,
				Kind:       kind,
				Difference: diff,
				From:       TransitionEndpoint{Content: prev.Content, Immersion: prev.Immersion},
				To:         TransitionEndpoint{Content: cur.Content, Immersion: cur.Immersion},
			})
		}
	}
	return out
}

// ProductivityScore returns the percentage (0..100) of non-resting minutes
// spent in work or development at immersion 4 or higher. Zero active
// minutes scores 0.
func ProductivityScore(entries []*journal.Entry) int {
	active, productive := 0, 0
	for _, e := range entries {
		if e.Category == journal.CategoryResting {
			continue
		}
		active += e.Duration
		if productiveCategories[e.Category] && e.Immersion >= highImmersion {
			productive += e.Duration
		}
	}
	if active == 0 {
		return 0
	}
	return int(math.Round(100 * float64(productive) / float64(active)))
}

// GroupByCategory partitions entries by category, preserving each entry's
// relative order within its group. Display-only; nothing aggregates it.
func GroupByCategory(entries []*journal.Entry) map[journal.Category][]*journal.Entry {
	groups := make(map[journal.Category][]*journal.Entry)
	for _, e := range entries {
		groups[e.Category] = append(groups[e.Category], e)
	}
	return groups
}
