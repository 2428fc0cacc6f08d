package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nebula-runner/internal/storage"
)

// RunHistory is the read side of the run store.
type RunHistory interface {
	RecentRuns(limit int) ([]storage.RunEntry, error)
	TopRuns(limit int) ([]storage.RunEntry, error)
}

// resultsView selects which runs the table shows.
type resultsView int

const (
	viewRecent resultsView = iota
	viewBest
)

func (v resultsView) title() string {
	if v == viewBest {
		return "FASTEST WINS"
	}
	return "RECENT RUNS"
}

// ResultsKeyMap defines the key bindings for the results screen.
type ResultsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Switch, k.Quit}}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "left", "right"),
			key.WithHelp("tab", "recent/best"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for browsing run history.
type ResultsModel struct {
	history  RunHistory
	limit    int
	view     resultsView
	runs     []storage.RunEntry
	err      error
	table    table.Model
	help     help.Model
	keys     ResultsKeyMap
	width    int
	height   int
	quitting bool
}

// NewResultsModel creates a results model showing up to limit runs.
func NewResultsModel(history RunHistory, limit, width, height int) ResultsModel {
	m := ResultsModel{
		history: history,
		limit:   limit,
		keys:    DefaultResultsKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table with columns fitted to the width.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Outcome", Width: 8},
		{Title: "Time", Width: 9},
		{Title: "Frames", Width: 7},
		{Title: "Backend", Width: 8},
		{Title: "Date", Width: 12},
	}

	// Give the date column whatever is left, up to 20.
	if spare := m.width - 4 - 56; spare > 0 {
		columns[5].Width = min(12+spare, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the runs of the current view.
func (m *ResultsModel) loadRuns() {
	m.runs, m.err = nil, nil
	if m.history != nil {
		if m.view == viewBest {
			m.runs, m.err = m.history.TopRuns(m.limit)
		} else {
			m.runs, m.err = m.history.RecentRuns(m.limit)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *ResultsModel) updateTableRows() {
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// runRows formats runs as table rows.
func runRows(runs []storage.RunEntry) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Outcome.String(),
			fmt.Sprintf("%.2fs", r.ElapsedSecs),
			fmt.Sprintf("%d", r.Frames),
			r.Backend,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			m.view = 1 - m.view
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results screen.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(m.view.title(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an explanatory message.
func (m ResultsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Cannot read run history:\n" + m.err.Error())
	case len(m.runs) == 0 && m.view == viewBest:
		return emptyStyle.Render("No wins recorded yet.\nJump over all eight nebulae to set a time!")
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nPlay a round to fill the history!")
	}
	return m.table.View()
}

// centerText centers each line of text within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunResults runs the results screen until the user quits.
func RunResults(history RunHistory, limit, width, height int) error {
	p := tea.NewProgram(
		NewResultsModel(history, limit, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
