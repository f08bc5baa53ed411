// Interactive conflict-report browser rendered with bubbletea.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"drone-deconflict/internal/deconflict"
)

const (
	colorGreen  = "42"
	colorRed    = "196"
	colorGray   = "240"
	colorOrange = "214"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	clearStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color(colorGreen)).
			Padding(0, 1)
	conflictStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color(colorRed)).
			Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray))
	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorGray)).
			Padding(0, 1)
	distanceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorOrange))
)

// Model drives the report browser.
type Model struct {
	report  *deconflict.Report
	bufferM float64
	table   table.Model
	detail  viewport.Model
	width   int
	height  int
	ready   bool
}

// NewModel builds the browser for a finished check.
func NewModel(report *deconflict.Report, bufferM float64) Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Primary", Width: 14},
		{Title: "Other", Width: 14},
		{Title: "Time", Width: 20},
		{Title: "Distance", Width: 10},
	}
	rows := make([]table.Row, len(report.Events))
	for i, ev := range report.Events {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			ev.PrimaryID,
			ev.OtherID,
			ev.Time.UTC().Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%.2fm", ev.Distance),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	st.Selected = st.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color(colorOrange))
	t.SetStyles(st)

	width, height := initialSize()
	m := Model{
		report:  report,
		bufferM: bufferM,
		table:   t,
		detail:  viewport.New(width, 8),
		width:   width,
		height:  height,
	}
	m.layout()
	m.refreshDetail()
	return m
}

// initialSize queries the terminal before the first WindowSizeMsg arrives.
func initialSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w, h
	}
	return 80, 24
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		m.refreshDetail()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	before := m.table.Cursor()
	m.table, cmd = m.table.Update(msg)
	if m.table.Cursor() != before {
		m.refreshDetail()
	}
	return m, cmd
}

func (m *Model) layout() {
	tableHeight := m.height - 10
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.table.SetHeight(tableHeight)
	m.table.SetWidth(m.width)
	m.detail.Width = m.width - 4
	m.detail.Height = 5
}

func (m *Model) refreshDetail() {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.report.Events) {
		m.detail.SetContent(helpStyle.Render("no conflict events"))
		return
	}
	ev := m.report.Events[idx]
	text := fmt.Sprintf(
		"%s vs %s at %s\nprimary (%.2f, %.2f, %.2f)  other (%.2f, %.2f, %.2f)\nseparation %s below the %.2fm buffer",
		ev.PrimaryID, ev.OtherID, ev.Time.UTC().Format("15:04:05.000"),
		ev.PrimaryPos.X, ev.PrimaryPos.Y, ev.PrimaryPos.Z,
		ev.OtherPos.X, ev.OtherPos.Y, ev.OtherPos.Z,
		distanceStyle.Render(fmt.Sprintf("%.2fm", ev.Distance)), m.bufferM,
	)
	width := m.detail.Width
	if width <= 0 {
		width = 76
	}
	m.detail.SetContent(wordwrap.String(text, width))
}

// View implements tea.Model.
func (m Model) View() string {
	status := clearStyle.Render("CLEAR")
	if m.report.Status == deconflict.StatusConflict {
		status = conflictStyle.Render(fmt.Sprintf("CONFLICT · %d events", len(m.report.Events)))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Deconfliction report"))
	b.WriteString(" ")
	b.WriteString(status)
	b.WriteString(fmt.Sprintf("  buffer %.2fm\n\n", m.bufferM))
	if len(m.report.Events) == 0 {
		b.WriteString(helpStyle.Render("No separation violations in the shared time window.\n"))
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(detailStyle.Render(m.detail.View()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ select · q quit"))
	return b.String()
}

// Run shows the browser until the user quits.
func Run(report *deconflict.Report, bufferM float64) error {
	p := tea.NewProgram(NewModel(report, bufferM), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
