package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fdieguez/sgp/internal/cli/client"
	"github.com/fdieguez/sgp/internal/cli/ui"
	"github.com/fdieguez/sgp/internal/tabular"
)

// UI configuration constants
const (
	defaultInputWidth     = 100
	defaultViewportWidth  = 100
	defaultViewportHeight = 30
	defaultWindowWidth    = 100
	defaultWindowHeight   = 40
	inputCharLimit        = 200
	inputHeightReserved   = 2
	statusHeightReserved  = 3
	minContentHeight      = 10
	fetchTimeout          = 30 * time.Second
)

// Style definitions
var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

// ExploreProgram encapsulates the snapshot explorer TUI program
type ExploreProgram struct {
	model exploreModel
}

// NewExploreProgram creates a new explorer instance for one planilla
func NewExploreProgram(apiClient *client.APIClient, configID int64) *ExploreProgram {
	return &ExploreProgram{model: initialModel(apiClient, configID)}
}

// Run starts the explorer TUI program
func (p *ExploreProgram) Run() error {
	program := tea.NewProgram(p.model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// exploreModel is the Bubble Tea model containing all explorer state
type exploreModel struct {
	// Dependencies
	apiClient *client.APIClient
	configID  int64

	// UI components
	input       textinput.Model
	contentView viewport.Model

	// Snapshot and derived view. The engine owns every transition:
	// key presses become events, BuildView recomputes the rest.
	name  string
	table tabular.Table
	state tabular.ViewState
	view  tabular.View

	// Column cursor for sort/filter/chart actions
	selected int

	// Search input state
	searching bool

	// Fetch sequencing. Every fetch carries the generation it was
	// started with; responses from an older generation are discarded.
	gen     int
	loading bool

	// Error state
	err error

	// Window dimensions
	width  int
	height int
}

// initialModel creates the initial explorer model
func initialModel(apiClient *client.APIClient, configID int64) exploreModel {
	input := textinput.New()
	input.Placeholder = "search..."
	input.CharLimit = inputCharLimit
	input.Width = defaultInputWidth
	input.Prompt = ""

	contentViewport := viewport.New(defaultViewportWidth, defaultViewportHeight)
	contentViewport.SetContent("")

	return exploreModel{
		apiClient:   apiClient,
		configID:    configID,
		input:       input,
		contentView: contentViewport,
		state:       tabular.NewViewState(),
		loading:     true,
		gen:         1,
		width:       defaultWindowWidth,
		height:      defaultWindowHeight,
	}
}

// Init initializes the model (Bubble Tea interface)
func (m exploreModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, fetchSnapshot(m.apiClient, m.configID, m.gen))
}

// Message type definitions
type (
	snapshotMsg struct {
		gen   int
		name  string
		table tabular.Table
	}
	snapshotErrMsg struct {
		gen int
		err error
	}
)

// fetchSnapshot loads the stored snapshot, tagged with its generation
func fetchSnapshot(apiClient *client.APIClient, configID int64, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		project, err := apiClient.GetProject(ctx, configID)
		if err != nil {
			return snapshotErrMsg{gen: gen, err: err}
		}
		return snapshotMsg{gen: gen, name: project.Name, table: tabular.FromStrings(project.Data)}
	}
}

// Update processes messages and updates the model (Bubble Tea interface)
func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyPress(msg)...)

	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)

	case snapshotMsg:
		// A newer fetch is already in flight, drop this response
		if msg.gen != m.gen {
			break
		}
		m.loading = false
		m.err = nil
		m.name = msg.name
		m.table = msg.table
		m.clampSelected()
		m.rebuild()

	case snapshotErrMsg:
		if msg.gen != m.gen {
			break
		}
		m.loading = false
		m.err = msg.err
		m.refreshContent()
	}

	if m.searching {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m *exploreModel) handleKeyPress(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	if m.searching {
		switch msg.Type {
		case tea.KeyCtrlC:
			cmds = append(cmds, tea.Quit)
		case tea.KeyEsc:
			m.searching = false
			m.input.Blur()
		case tea.KeyEnter:
			m.searching = false
			m.input.Blur()
			m.apply(tabular.SetSearch{Term: strings.TrimSpace(m.input.Value())})
		}
		return cmds
	}

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		cmds = append(cmds, tea.Quit)

	case tea.KeyTab:
		m.moveSelected(1)

	case tea.KeyShiftTab:
		m.moveSelected(-1)

	case tea.KeyLeft:
		m.apply(tabular.SetPage{Page: m.view.Page - 1})

	case tea.KeyRight:
		m.apply(tabular.SetPage{Page: m.view.Page + 1})

	case tea.KeyUp:
		m.contentView.LineUp(1)

	case tea.KeyDown:
		m.contentView.LineDown(1)

	case tea.KeyPgUp:
		m.contentView.ViewUp()

	case tea.KeyPgDown:
		m.contentView.ViewDown()

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			cmds = append(cmds, tea.Quit)
		case "/":
			m.searching = true
			m.input.SetValue(m.state.Search)
			m.input.Focus()
		case "s":
			m.apply(tabular.ToggleSort{Column: m.selected})
		case "f":
			m.cycleFilter()
		case "c":
			m.cycleChart()
		case "x":
			m.input.Reset()
			m.apply(tabular.ClearFilters{})
		case "h":
			m.apply(tabular.SetPage{Page: m.view.Page - 1})
		case "l":
			m.apply(tabular.SetPage{Page: m.view.Page + 1})
		case "r":
			m.gen++
			m.loading = true
			cmds = append(cmds, fetchSnapshot(m.apiClient, m.configID, m.gen))
		}
	}

	return cmds
}

// handleWindowResize handles window size changes
func (m *exploreModel) handleWindowResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	contentHeight := msg.Height - inputHeightReserved - statusHeightReserved
	if contentHeight < minContentHeight {
		contentHeight = minContentHeight
	}

	m.contentView.Width = msg.Width
	m.contentView.Height = contentHeight
	m.input.Width = msg.Width - 3

	m.refreshContent()
}

// apply runs one event through the engine and re-renders
func (m *exploreModel) apply(ev tabular.Event) {
	m.state = m.state.Apply(ev)
	m.rebuild()
}

// rebuild recomputes the derived view from the current snapshot and state
func (m *exploreModel) rebuild() {
	m.view = tabular.BuildView(m.table, m.state)
	m.refreshContent()
}

// moveSelected moves the column cursor, wrapping around
func (m *exploreModel) moveSelected(delta int) {
	n := len(m.table.Headers)
	if n == 0 {
		return
	}
	m.selected = (m.selected + delta + n) % n
	m.refreshContent()
}

// clampSelected keeps the column cursor inside the table after a refetch
func (m *exploreModel) clampSelected() {
	if m.selected >= len(m.table.Headers) {
		m.selected = 0
	}
}

// cycleFilter advances the filter on the selected column through its
// candidate values, back to unfiltered after the last one.
func (m *exploreModel) cycleFilter() {
	opt, ok := m.view.FilterOptions[m.selected]
	if !ok || len(opt.Values) == 0 {
		return
	}

	current := m.state.Filters[m.selected]
	next := opt.Values[0]
	if current != "" {
		next = ""
		for i, v := range opt.Values {
			if v == current && i+1 < len(opt.Values) {
				next = opt.Values[i+1]
				break
			}
		}
	}

	m.apply(tabular.SetFilter{Column: m.selected, Value: next})
}

// cycleChart advances the chart dimension through the categorical columns
func (m *exploreModel) cycleChart() {
	cats := m.view.Categoricals
	if len(cats) == 0 {
		return
	}

	next := cats[0].Index
	for i, c := range cats {
		if c.Index == m.view.ChartColumn {
			next = cats[(i+1)%len(cats)].Index
			break
		}
	}

	m.apply(tabular.SetChartColumn{Column: next})
}

// refreshContent re-renders the table and chart into the viewport
func (m *exploreModel) refreshContent() {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("r to retry, q to quit"))
	} else if m.loading && m.table.Empty() {
		b.WriteString(dimStyle.Render("loading snapshot..."))
	} else {
		b.WriteString(ui.RenderViewTable(m.view))
		if chart := ui.RenderBarChart(m.view); chart != "" {
			b.WriteString("\n")
			b.WriteString(chart)
		}
	}

	m.contentView.SetContent(b.String())
	m.contentView.GotoTop()
}

// statusLine summarizes snapshot, selection, sort and filter state
func (m *exploreModel) statusLine() string {
	name := m.name
	if name == "" {
		name = fmt.Sprintf("planilla %d", m.configID)
	}
	status := boldStyle.Render(name)

	if m.loading {
		status += dimStyle.Render("  •  refreshing...")
	}

	if len(m.table.Headers) > 0 {
		col := m.table.Headers[m.selected]
		status += dimStyle.Render("  •  column: ") + accentStyle.Render(col)

		if m.state.Sort.Column == m.selected && m.state.Sort.Column >= 0 {
			status += dimStyle.Render(fmt.Sprintf(" (%s)", m.state.Sort.Direction))
		}
		if v, ok := m.state.Filters[m.selected]; ok {
			status += dimStyle.Render(" = ") + accentStyle.Render(v)
		}
	}

	if m.state.Search != "" {
		status += dimStyle.Render("  •  search: ") + accentStyle.Render(m.state.Search)
	}

	return status
}

// View renders the UI (Bubble Tea interface)
func (m exploreModel) View() string {
	status := m.statusLine()
	content := m.contentView.View()

	// Input area
	var inputView string
	if m.searching {
		inputView = promptStyle.Render("/ ") + m.input.View()
	} else {
		inputView = dimStyle.Render(fmt.Sprintf("page %d/%d • %d of %d rows",
			m.view.Page, m.view.TotalPages, m.view.FilteredCount, m.view.TotalCount))
	}

	// Bottom help text
	help := dimStyle.Render("/ search • tab column • s sort • f filter • c chart • x clear • ←/→ page • r reload • q quit")
	if m.searching {
		help = dimStyle.Render("enter apply • esc cancel")
	}

	parts := []string{status, "", content, "", inputView, help}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
