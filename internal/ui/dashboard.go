// Package ui renders derived statistics as a styled terminal dashboard.
// It consumes the analyzer's report and the entry list; it never computes
// statistics itself.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plumharbor/daylens/internal/classify"
	"github.com/plumharbor/daylens/internal/journal"
	"github.com/plumharbor/daylens/internal/stats"
)

// maxBarWidth is the width in cells of the longest category/immersion bar.
const maxBarWidth = 30

// displayImmersionCeiling caps how many bar glyphs are drawn for an
// immersion value; the numeric value is always printed verbatim.
const displayImmersionCeiling = 5

// Renderer draws the dashboard. Width bounds the layout; Lexicon supplies
// category colors.
type Renderer struct {
	Width   int
	Lexicon *journal.Lexicon
}

// New returns a Renderer with the default width.
func New(lex *journal.Lexicon) *Renderer {
	return &Renderer{Width: 80, Lexicon: lex}
}

// Dashboard renders the full report for one session.
func (r *Renderer) Dashboard(s *journal.Session, rep *stats.Report) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("daylens — daily immersion report"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n",
		styleMuted.Render("logged:"), formatMinutes(rep.TotalMinutes))
	if s.Fallback {
		b.WriteString(styleNotice.Render("⚠ categorized by local keyword rules (remote classifier unavailable)"))
		b.WriteString("\n")
	}

	b.WriteString(r.categorySection(rep))
	b.WriteString(r.immersionSection(rep))
	b.WriteString(r.rankingSection(rep))
	b.WriteString(r.transitionSection(rep))
	b.WriteString(r.scoreSection(rep))
	b.WriteString(r.notesSection(s))

	return b.String()
}

func (r *Renderer) categorySection(rep *stats.Report) string {
	var b strings.Builder
	b.WriteString(styleSection.Render("Time by category"))
	b.WriteString("\n")
	for _, cat := range journal.Categories() {
		minutes, ok := rep.CategoryTotals[cat]
		if !ok {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(r.Lexicon.Color(cat)))
		bar := strings.Repeat("█", scale(minutes, rep.TotalMinutes, maxBarWidth))
		fmt.Fprintf(&b, "  %-12s %s %s\n", cat, style.Render(bar), formatMinutes(minutes))
	}
	return b.String()
}

func (r *Renderer) immersionSection(rep *stats.Report) string {
	var b strings.Builder
	b.WriteString(styleSection.Render("Immersion distribution"))
	b.WriteString("\n")
	total := 0
	for _, m := range rep.ImmersionDistribution {
		total += m
	}
	for level := 1; level <= 5; level++ {
		minutes, ok := rep.ImmersionDistribution[level]
		if !ok {
			continue
		}
		bar := strings.Repeat("❚", scale(minutes, total, maxBarWidth))
		fmt.Fprintf(&b, "  %d %s %s\n", level, styleScore.Render(bar), formatMinutes(minutes))
	}
	if total == 0 {
		b.WriteString(styleMuted.Render("  no immersion markers recorded"))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) rankingSection(rep *stats.Report) string {
	if len(rep.ImmersionByCategory) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(styleSection.Render("Immersion by category"))
	b.WriteString("\n")
	for i, ci := range rep.ImmersionByCategory {
		fmt.Fprintf(&b, "  %d. %-12s %.1f  %s\n",
			i+1, ci.Category, ci.AverageImmersion,
			styleMuted.Render(formatMinutes(ci.TotalMinutes)))
	}
	return b.String()
}

func (r *Renderer) transitionSection(rep *stats.Report) string {
	if len(rep.EnergyTransitions) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(styleSection.Render("Energy transitions"))
	b.WriteString("\n")
	for _, tr := range rep.EnergyTransitions {
		arrow := styleIncrease.Render(fmt.Sprintf("↑ +%d", tr.Difference))
		if tr.Kind == stats.TransitionDecrease {
			arrow = styleDecrease.Render(fmt.Sprintf("↓ %d", tr.Difference))
		}
		fmt.Fprintf(&b, "  %s %s  %s → %s\n",
			tr.Time, arrow,
			endpoint(tr.From), endpoint(tr.To))
	}
	return b.String()
}

func (r *Renderer) scoreSection(rep *stats.Report) string {
	var b strings.Builder
	b.WriteString(styleSection.Render("Productivity score"))
	b.WriteString("\n")
	filled := scale(rep.ProductivityScore, 100, maxBarWidth)
	gauge := strings.Repeat("█", filled) + strings.Repeat("░", maxBarWidth-filled)
	fmt.Fprintf(&b, "  %s %s\n", gauge, styleScore.Render(fmt.Sprintf("%d%%", rep.ProductivityScore)))
	return b.String()
}

func (r *Renderer) notesSection(s *journal.Session) string {
	if len(s.Thoughts) == 0 && len(s.Actions) == 0 {
		return ""
	}
	var b strings.Builder
	if len(s.Thoughts) > 0 {
		b.WriteString(styleSection.Render("Thoughts"))
		b.WriteString("\n")
		for _, th := range s.Thoughts {
			fmt.Fprintf(&b, "  › %s\n", th)
		}
	}
	if len(s.Actions) > 0 {
		b.WriteString(styleSection.Render("Actions"))
		b.WriteString("\n")
		for _, a := range s.Actions {
			fmt.Fprintf(&b, "  ◆ %s\n", a)
		}
	}
	return b.String()
}

// AdvicePanel renders the advice lifecycle state for one session.
func (r *Renderer) AdvicePanel(adv classify.Advice) string {
	switch adv.State {
	case classify.AdviceNotStarted:
		return ""
	case classify.AdvicePending:
		return styleMuted.Render("generating advice...") + "\n"
	case classify.AdviceFailed:
		return styleError.Render("advice unavailable: "+adv.Err.Error()) + "\n"
	}
	var b strings.Builder
	b.WriteString(styleSection.Render("Coach's advice"))
	b.WriteString("\n")
	for _, line := range strings.Split(adv.Text, "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

// EntryLine renders one entry for list display, clamping the drawn bar run
// at the display ceiling while printing the numeric value verbatim.
func (r *Renderer) EntryLine(e *journal.Entry) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(r.Lexicon.Color(e.Category)))
	bars := e.Immersion
	if bars > displayImmersionCeiling {
		bars = displayImmersionCeiling
	}
	run := strings.Repeat("❚", bars)
	return fmt.Sprintf("%s ~ %s %s %-12s %s",
		e.Start, e.End, style.Render(fmt.Sprintf("%-12s", e.Category)),
		run+fmt.Sprintf("(%d)", e.Immersion), e.Content)
}

// endpoint formats one side of a transition.
func endpoint(ep stats.TransitionEndpoint) string {
	content := ep.Content
	if runes := []rune(content); len(runes) > 24 {
		content = string(runes[:24]) + "…"
	}
	return fmt.Sprintf("%s(%d)", content, ep.Immersion)
}

// scale maps value/total onto a bar width, guaranteeing at least one cell
// for any nonzero value.
func scale(value, total, width int) int {
	if total <= 0 || value <= 0 {
		return 0
	}
	w := value * width / total
	if w == 0 {
		w = 1
	}
	if w > width {
		w = width
	}
	return w
}

// formatMinutes renders minutes as "3h 25m" or "45m".
func formatMinutes(m int) string {
	h := m / 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m%60)
	}
	return fmt.Sprintf("%dm", m)
}
