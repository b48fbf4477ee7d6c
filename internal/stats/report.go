package stats

import "github.com/plumharbor/daylens/internal/journal"

// Options configures report derivation.
type Options struct {
	// EnergyChangeThreshold is the minimum absolute immersion difference
	// that counts as an energy transition.
	EnergyChangeThreshold int
}

// DefaultOptions returns production defaults.
func DefaultOptions() Options {
	return Options{EnergyChangeThreshold: DefaultEnergyChangeThreshold}
}

// Report bundles every derived statistic for one entry snapshot. Reports
// are immutable once built; any entry mutation produces a fresh one.
type Report struct {
	TotalMinutes          int                                   `json:"total_minutes"`
	CategoryTotals        map[journal.Category]int              `json:"category_totals"`
	ImmersionDistribution map[int]int                           `json:"immersion_distribution"`
	ImmersionByCategory   []CategoryImmersion                   `json:"immersion_by_category"`
	EnergyTransitions     []Transition                          `json:"energy_transitions"`
	ProductivityScore     int                                   `json:"productivity_score"`
	Groups                map[journal.Category][]*journal.Entry `json:"-"`
}

// BuildReport recomputes all statistics from scratch for the given entries.
func BuildReport(entries []*journal.Entry, opts Options) *Report {
	if opts.EnergyChangeThreshold == 0 {
		opts.EnergyChangeThreshold = DefaultEnergyChangeThreshold
	}
	return &Report{
		TotalMinutes:          TotalTime(entries),
		CategoryTotals:        CategoryTotals(entries),
		ImmersionDistribution: ImmersionDistribution(entries),
		ImmersionByCategory:   ImmersionByCategory(entries),
		EnergyTransitions:     EnergyTransitions(entries, opts.EnergyChangeThreshold),
		ProductivityScore:     ProductivityScore(entries),
		Groups:                GroupByCategory(entries),
	}
}
