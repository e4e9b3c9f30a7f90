package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slidesearch/internal/domain"
)

// Model is the Bubble Tea model for the interactive slide viewer. It pages
// through a fixed result set with a clamped cursor: n and p are no-ops at the
// bounds, o opens the current slide in an external viewer and q quits.
type Model struct {
	results  []domain.SearchResult
	query    string
	opener   Opener
	viewport viewport.Model
	cursor   int
	status   string
	ready    bool
}

// New creates a viewer over the given ranked results.
func New(results []domain.SearchResult, query string, opener Opener) Model {
	return Model{
		results:  results,
		query:    query,
		opener:   opener,
		viewport: viewport.New(0, 0),
		status:   "n = next, p = previous, o = open PDF, q = quit",
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, fh := slideBoxStyle.GetFrameSize()
		reserved := 3 + fh // header, query, status
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(m.currentText())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "n":
			if m.cursor < len(m.results)-1 {
				m.cursor++
				m.viewport.SetContent(m.currentText())
				m.viewport.GotoTop()
			}
			return m, nil
		case "p":
			if m.cursor > 0 {
				m.cursor--
				m.viewport.SetContent(m.currentText())
				m.viewport.GotoTop()
			}
			return m, nil
		case "o":
			if len(m.results) == 0 {
				return m, nil
			}
			r := m.results[m.cursor].Record
			if err := m.opener.Open(r.Path, r.Page); err != nil {
				m.status = warnStyle.Render("could not open PDF: " + err.Error())
			} else {
				m.status = fmt.Sprintf("opened %s", r.Path)
			}
			return m, nil
		}
	}
	// Remaining keys (up/down/pgup/pgdn) scroll the slide text.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the current slide with header, query and status lines.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if len(m.results) == 0 {
		return "No results.\n\nPress q to quit."
	}
	r := m.results[m.cursor]
	header := headerStyle.Render(fmt.Sprintf("[%d/%d] Slide %d - %s", m.cursor+1, len(m.results), r.Record.Page, r.Record.Path))
	query := queryStyle.Render(fmt.Sprintf("Search query: %s  (distance=%.4f)", m.query, r.Distance))
	body := slideBoxStyle.Render(m.viewport.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + query + "\n" + body + "\n" + status
}

func (m Model) currentText() string {
	if len(m.results) == 0 {
		return "No results."
	}
	return m.results[m.cursor].Record.Text
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	queryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	slideBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
