package input

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// Pager shows long diffs full-screen. Its Show method fits
// generator.PagerFunc.
type Pager struct {
	in  io.Reader
	out io.Writer
}

// NewPager creates a pager on the given terminal streams (nil = default).
func NewPager(in io.Reader, out io.Writer) *Pager {
	return &Pager{in: in, out: out}
}

// Show displays body until the user quits the pager.
func (p *Pager) Show(title, body string) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if p.in != nil {
		opts = append(opts, tea.WithInput(p.in))
	}
	if p.out != nil {
		opts = append(opts, tea.WithOutput(p.out))
	}

	if _, err := tea.NewProgram(newPagerModel(title, body), opts...).Run(); err != nil {
		return fmt.Errorf("failed to show diff: %w", err)
	}
	return nil
}

// pagerModel is the BubbleTea model for scrolling a diff
type pagerModel struct {
	title    string
	body     string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, body string) pagerModel {
	return pagerModel{title: title, body: body}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		const chrome = 4 // header + footer lines

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-chrome)
			m.viewport.SetContent(m.body)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - chrome
		}
	}

	// Scrolling keys (arrows, j/k, pgup/pgdown, f/b, space) use the
	// viewport's own key map.
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	title := fmt.Sprintf("─ Diff: %s ", m.title)
	b.WriteString(borderStyle.Render("┌"+title+strings.Repeat("─", max(0, m.viewport.Width-lipgloss.Width(title)+2))+"┐") + "\n")

	for _, line := range strings.Split(m.viewport.View(), "\n") {
		pad := strings.Repeat(" ", max(0, m.viewport.Width-lipgloss.Width(line)))
		b.WriteString(borderStyle.Render("│") + " " + line + pad + " " + borderStyle.Render("│") + "\n")
	}

	footer := " [↑/↓] Scroll    [q] Back to prompt "
	b.WriteString(borderStyle.Render("└"+strings.Repeat("─", max(0, m.viewport.Width-lipgloss.Width(footer)+2))+footer+"┘") + "\n")

	return b.String()
}
