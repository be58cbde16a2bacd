package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/laporan/internal/logbook"
	"github.com/faizmokh/laporan/internal/stats"
)

const (
	defaultWindowDays = 30
	windowStep        = 7
	barWidth          = 30
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	todoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// Model owns Bubble Tea state for browsing reports day by day alongside
// statistics for the window ending on the displayed day.
type Model struct {
	ctx    context.Context
	reader *logbook.Reader

	currentDate time.Time
	windowDays  int
	view        view

	report   logbook.Report
	missing  bool
	selected int
	summary  *stats.Summary

	keys keyMap
	help help.Model

	loadingReport bool
	loadingStats  bool
	statusLine    string
	errorLine     string
	statsError    string

	now func() time.Time
}

// Option configures a Model.
type Option func(*Model)

// WithClock sets the clock used to find today.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

type view uint8

const (
	viewDay view = iota
	viewStats
)

type reportLoadedMsg struct {
	date   time.Time
	result logbook.LoadResult
}

type summaryLoadedMsg struct {
	date    time.Time
	days    int
	summary *stats.Summary
	err     error
}

// NewModel seeds a Bubble Tea model showing date, with statistics over the
// windowDays ending on it (30 when windowDays is not positive).
func NewModel(ctx context.Context, reader *logbook.Reader, date time.Time, windowDays int, opts ...Option) Model {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}

	m := Model{
		ctx:           ctx,
		reader:        reader,
		currentDate:   date,
		windowDays:    windowDays,
		view:          viewDay,
		keys:          defaultKeyMap(),
		help:          help.New(),
		loadingReport: true,
		loadingStats:  true,
		statusLine:    "Loading reports...",
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init loads the initial report and statistics.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadReportCmd(m.currentDate),
		m.loadSummaryCmd(m.currentDate, m.windowDays),
	)
}

// Update wires TUI state transitions from user input and async loads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case reportLoadedMsg:
		return m.handleReportLoaded(msg)
	case summaryLoadedMsg:
		return m.handleSummaryLoaded(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		return m.gotoDate(m.currentDate.AddDate(0, 0, -1))
	case key.Matches(msg, m.keys.Next):
		return m.gotoDate(m.currentDate.AddDate(0, 0, 1))
	case key.Matches(msg, m.keys.Today):
		return m.gotoDate(today(m.now))
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	case key.Matches(msg, m.keys.Switch):
		if m.view == viewDay {
			m.view = viewStats
		} else {
			m.view = viewDay
		}
		return m, nil
	case key.Matches(msg, m.keys.Wider):
		return m.resizeWindow(m.windowDays + windowStep)
	case key.Matches(msg, m.keys.Narrow):
		return m.resizeWindow(m.windowDays - windowStep)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.report.Entries)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	}
	return m, nil
}

func (m Model) handleReportLoaded(msg reportLoadedMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results for dates we no longer display.
	if !sameDay(m.currentDate, msg.date) {
		return m, nil
	}
	m.loadingReport = false

	switch msg.result.Status {
	case logbook.LoadFound:
		m.report = msg.result.Report
		m.missing = false
		m.errorLine = ""
		if m.selected >= len(m.report.Entries) {
			m.selected = max(len(m.report.Entries)-1, 0)
		}
		m.statusLine = fmt.Sprintf("Loaded %d entr%s.", len(m.report.Entries), plural(len(m.report.Entries)))
	case logbook.LoadMissing:
		m.report = logbook.Report{Date: msg.date}
		m.missing = true
		m.selected = 0
		m.errorLine = ""
		m.statusLine = fmt.Sprintf("No report for %s.", msg.date.Format("2006-01-02"))
	default:
		m.report = logbook.Report{Date: msg.date}
		m.missing = false
		m.selected = 0
		m.statusLine = ""
		m.errorLine = fmt.Sprintf("Failed to load %s: %v", msg.date.Format("2006-01-02"), msg.result.Err)
	}
	return m, nil
}

func (m Model) handleSummaryLoaded(msg summaryLoadedMsg) (tea.Model, tea.Cmd) {
	if !sameDay(m.currentDate, msg.date) || msg.days != m.windowDays {
		return m, nil
	}
	m.loadingStats = false
	if msg.err != nil {
		m.summary = nil
		m.statsError = fmt.Sprintf("Statistics failed: %v", msg.err)
		return m, nil
	}
	m.statsError = ""
	m.summary = msg.summary
	return m, nil
}

func (m Model) gotoDate(date time.Time) (tea.Model, tea.Cmd) {
	if sameDay(m.currentDate, date) {
		return m.reload()
	}

	m.currentDate = date
	m.report = logbook.Report{Date: date}
	m.missing = false
	m.selected = 0
	m.summary = nil
	m.loadingReport = true
	m.loadingStats = true
	m.statusLine = fmt.Sprintf("Loading %s...", date.Format("2006-01-02"))
	m.errorLine = ""
	return m, tea.Batch(m.loadReportCmd(date), m.loadSummaryCmd(date, m.windowDays))
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loadingReport = true
	m.loadingStats = true
	m.statusLine = fmt.Sprintf("Refreshing %s...", m.currentDate.Format("2006-01-02"))
	m.errorLine = ""
	return m, tea.Batch(m.loadReportCmd(m.currentDate), m.loadSummaryCmd(m.currentDate, m.windowDays))
}

func (m Model) resizeWindow(days int) (tea.Model, tea.Cmd) {
	if days < 1 {
		days = 1
	}
	if days == m.windowDays {
		return m, nil
	}
	m.windowDays = days
	m.loadingStats = true
	m.statusLine = fmt.Sprintf("Statistics window: %d day%s.", days, pluralS(days))
	return m, m.loadSummaryCmd(m.currentDate, days)
}

func (m Model) loadReportCmd(date time.Time) tea.Cmd {
	reader := m.reader
	ctx := m.ctx
	return func() tea.Msg {
		return reportLoadedMsg{date: date, result: reader.Lookup(ctx, date)}
	}
}

func (m Model) loadSummaryCmd(date time.Time, days int) tea.Cmd {
	reader := m.reader
	ctx := m.ctx
	return func() tea.Msg {
		start := date.AddDate(0, 0, -(days - 1))
		summary, err := stats.Compute(ctx, reader, start, date)
		return summaryLoadedMsg{date: date, days: days, summary: summary, err: err}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	header := m.currentDate.Format("Monday, 02 January 2006")
	b.WriteString(titleStyle.Render(header))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(header)))
	b.WriteString("\n\n")

	switch m.view {
	case viewStats:
		m.renderStats(&b)
	default:
		m.renderDay(&b)
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) renderDay(b *strings.Builder) {
	switch {
	case m.loadingReport:
		b.WriteString("Loading...\n")
		return
	case m.missing:
		b.WriteString("(no report)\n")
		return
	case m.report.Path == "":
		return
	}

	fmt.Fprintf(b, "Location: %s\n\n", m.report.Header.Location)
	if len(m.report.Entries) == 0 {
		b.WriteString("(no entries)\n")
		return
	}

	for i, entry := range m.report.Entries {
		line := entry.Raw
		if entry.IsTodo {
			line = todoStyle.Render(line)
		}
		if i == m.selected {
			b.WriteString(selectedStyle.Render(">"))
		} else {
			b.WriteByte(' ')
		}
		b.WriteByte(' ')
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

func (m Model) renderStats(b *strings.Builder) {
	if m.loadingStats {
		b.WriteString("Computing statistics...\n")
		return
	}
	if m.statsError != "" {
		b.WriteString(errorStyle.Render("! " + m.statsError))
		b.WriteByte('\n')
		return
	}
	if m.summary == nil {
		return
	}

	fmt.Fprintf(b, "Last %d day%s: %d report%s, %d todo%s\n\n",
		m.windowDays, pluralS(m.windowDays),
		m.summary.Reports, pluralS(m.summary.Reports),
		m.summary.Todos, pluralS(m.summary.Todos))

	ranked := m.summary.Ranked()
	if len(ranked) == 0 {
		b.WriteString("(no tags)\n")
		return
	}

	width := 0
	for _, tc := range ranked {
		width = max(width, len(tc.Tag))
	}
	for _, tc := range ranked {
		filled := int(tc.Percent / 100 * barWidth)
		fmt.Fprintf(b, "%-*s %s %4d %6.2f%%\n",
			width, tc.Tag,
			barStyle.Render(strings.Repeat("█", filled))+strings.Repeat(" ", barWidth-filled),
			tc.Count, tc.Percent)
	}
}

func today(now func() time.Time) time.Time {
	t := now().In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}

func pluralS(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
