// Package tui implements the interactive dashboard: an entry list with
// keyboard category reassignment and a statistics panel that is recomputed
// wholesale after every mutation.
package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plumharbor/daylens/internal/classify"
	"github.com/plumharbor/daylens/internal/journal"
	"github.com/plumharbor/daylens/internal/stats"
	"github.com/plumharbor/daylens/internal/telemetry"
	"github.com/plumharbor/daylens/internal/ui"
)

// Model is the root BubbleTea model for the dashboard.
type Model struct {
	Path     string
	Session  *journal.Session
	Client   *classify.Client // nil means local-only classification
	Lexicon  *journal.Lexicon
	Renderer *ui.Renderer
	Opts     stats.Options
	Emitter  *telemetry.Emitter
	Keys     KeyMap

	report      *stats.Report
	advice      classify.Advice
	spinner     spinner.Model
	cursor      int
	classifying bool
	loadErr     error
	width       int
}

// New creates a dashboard model for the given log file.
func New(path string, client *classify.Client, lex *journal.Lexicon, opts stats.Options, em *telemetry.Emitter) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		Path:     path,
		Session:  journal.NewSession(),
		Client:   client,
		Lexicon:  lex,
		Renderer: ui.New(lex),
		Opts:     opts,
		Emitter:  em,
		Keys:     DefaultKeyMap(),
		spinner:  sp,
	}
}

// Init reads the log file and starts the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.Path))
}

// loadCmd reads the log file off the update loop.
func loadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return msgLoaded{err: err}
		}
		return msgLoaded{raw: string(data)}
	}
}

// snapshotEntries deep-copies entries so an async command never shares
// state with the live session.
func snapshotEntries(entries []*journal.Entry) []*journal.Entry {
	snapshot := make([]*journal.Entry, len(entries))
	for i, e := range entries {
		cp := *e
		snapshot[i] = &cp
	}
	return snapshot
}

// classifyCmd runs the classification pipeline over a snapshot taken on the
// update loop. The goroutine never touches the session: if the session is
// reloaded while classification is in flight, the stale result carries an
// old seq and is dropped whole, categories and fallback flag alike.
func classifyCmd(client *classify.Client, lex *journal.Lexicon, s *journal.Session, em *telemetry.Emitter) tea.Cmd {
	seq := s.Seq()
	snapshot := snapshotEntries(s.UserEntries())
	return func() tea.Msg {
		res := classify.Categorize(context.Background(), client, lex, snapshot, seq, em)
		return msgClassified{seq: seq, entries: snapshot, result: res}
	}
}

// adviceCmd requests coaching advice for a snapshot of the current entries.
func adviceCmd(client *classify.Client, entries []*journal.Entry, seq int) tea.Cmd {
	snapshot := snapshotEntries(entries)
	return func() tea.Msg {
		text, err := client.Advise(context.Background(), snapshot)
		return msgAdvice{seq: seq, text: text, err: err}
	}
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.Renderer.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case msgLoaded:
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		if err := m.Session.Load(msg.raw); err != nil {
			m.loadErr = err
			return m, nil
		}
		m.loadErr = nil
		m.report = nil
		m.advice = classify.Advice{}
		m.cursor = 0
		m.classifying = true
		m.Emitter.Emit(telemetry.KindParseDone, m.Session.Seq(),
			map[string]int{"entries": len(m.Session.Entries)})
		return m, classifyCmd(m.Client, m.Lexicon, m.Session, m.Emitter)

	case msgClassified:
		if msg.seq != m.Session.Seq() {
			return m, nil // Superseded session.
		}
		for _, e := range msg.entries {
			m.Session.Reassign(e.ID, e.Category)
		}
		m.Session.Fallback = msg.result.Fallback
		m.classifying = false
		m.report = stats.BuildReport(m.Session.Entries, m.Opts)
		m.Emitter.Emit(telemetry.KindAnalysisDone, m.Session.Seq(),
			map[string]bool{"fallback": msg.result.Fallback})
		return m, nil

	case msgAdvice:
		if msg.seq != m.Session.Seq() {
			return m, nil // Stale advice for a superseded session.
		}
		if msg.err != nil {
			m.advice = classify.Advice{State: classify.AdviceFailed, Err: msg.err, Seq: msg.seq}
			m.Emitter.Emit(telemetry.KindAdviceFailed, msg.seq,
				map[string]string{"error": msg.err.Error()})
		} else {
			m.advice = classify.Advice{State: classify.AdviceReady, Text: msg.text, Seq: msg.seq}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.Keys.Down):
		if m.cursor < len(m.Session.Entries)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.Keys.Reload):
		return m, loadCmd(m.Path)

	case key.Matches(msg, m.Keys.Advice):
		if m.Client == nil || m.report == nil || m.advice.State == classify.AdvicePending {
			return m, nil
		}
		m.advice = classify.Advice{State: classify.AdvicePending, Seq: m.Session.Seq()}
		return m, adviceCmd(m.Client, m.Session.Entries, m.Session.Seq())

	case key.Matches(msg, m.Keys.Assign):
		return m.reassign(msg.String()), nil
	}
	return m, nil
}

// reassign moves the selected entry to the category at digit position and
// rebuilds the statistics snapshot. Partial recomputation is never done.
func (m Model) reassign(digit string) Model {
	if m.report == nil || len(m.Session.Entries) == 0 {
		return m
	}
	idx, err := strconv.Atoi(digit)
	cats := journal.Categories()
	if err != nil || idx < 1 || idx > len(cats) {
		return m
	}
	entry := m.Session.Entries[m.cursor]
	if !m.Session.Reassign(entry.ID, cats[idx-1]) {
		return m
	}
	m.report = stats.BuildReport(m.Session.Entries, m.Opts)
	m.Emitter.Emit(telemetry.KindReassign, m.Session.Seq(),
		map[string]any{"id": entry.ID, "category": cats[idx-1]})
	return m
}

// View renders the entry list and the statistics panel.
func (m Model) View() string {
	if m.loadErr != nil {
		return fmt.Sprintf("daylens: %v\n\npress r to retry, q to quit\n", m.loadErr)
	}
	if m.classifying || m.report == nil {
		return fmt.Sprintf("\n  %s classifying entries...\n", m.spinner.View())
	}

	var b strings.Builder
	b.WriteString(m.Renderer.Dashboard(m.Session, m.report))
	b.WriteString("\nEntries (1-6 to recategorize):\n")
	for i, e := range m.Session.Entries {
		marker := "  "
		if i == m.cursor {
			marker = "▎ "
		}
		b.WriteString(marker + m.Renderer.EntryLine(e) + "\n")
	}

	if m.advice.State == classify.AdvicePending {
		fmt.Fprintf(&b, "\n%s generating advice...\n", m.spinner.View())
	} else {
		b.WriteString("\n" + m.Renderer.AdvicePanel(m.advice))
	}

	b.WriteString("\n↑/↓ move · 1-6 category · a advice · r reload · q quit\n")
	return b.String()
}
