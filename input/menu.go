package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/simonhull/firebird-suite/conflict/generator"
	"github.com/spf13/afero"
)

var (
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
)

// Menu asks with a full keyboard menu: arrows/j/k + Enter, or the choice's
// shortcut key. Quitting the menu (q, esc, ctrl+c) aborts.
type Menu struct {
	fs   afero.Fs
	root string // Destination root, used to show file details
	in   io.Reader
	out  io.Writer
}

// NewMenu creates a menu prompter. root is joined with the asked path to
// show the existing file's size and modification time on fsys.
func NewMenu(fsys afero.Fs, root string, in io.Reader, out io.Writer) *Menu {
	return &Menu{fs: fsys, root: root, in: in, out: out}
}

// Ask implements generator.Prompter.
func (m *Menu) Ask(path string, menu []generator.Choice) (generator.Action, error) {
	info, err := m.details(path)
	if err != nil {
		return 0, err
	}

	var opts []tea.ProgramOption
	if m.in != nil {
		opts = append(opts, tea.WithInput(m.in))
	}
	if m.out != nil {
		opts = append(opts, tea.WithOutput(m.out))
	}

	p := tea.NewProgram(newMenuModel(path, info, menu), opts...)
	final, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("failed to show menu: %w", err)
	}

	result := final.(menuModel)
	if result.selected == nil {
		return generator.Abort, nil
	}
	return *result.selected, nil
}

// details stats the destination file. A missing file has no details.
func (m *Menu) details(path string) (os.FileInfo, error) {
	info, err := m.fs.Stat(filepath.Join(m.root, path))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	return info, nil
}

// menuModel is the BubbleTea model for the conflict menu
type menuModel struct {
	path     string
	fileInfo os.FileInfo
	choices  []generator.Choice
	cursor   int
	selected *generator.Action
}

func newMenuModel(path string, fileInfo os.FileInfo, choices []generator.Choice) menuModel {
	return menuModel{
		path:     path,
		fileInfo: fileInfo,
		choices:  choices,
	}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}

	case "enter":
		action := m.choices[m.cursor].Action
		m.selected = &action
		return m, tea.Quit

	default:
		runes := []rune(key.String())
		if len(runes) != 1 {
			return m, nil
		}
		for i, c := range m.choices {
			if c.Key == runes[0] {
				action := c.Action
				m.cursor = i
				m.selected = &action
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m menuModel) View() string {
	var b strings.Builder

	b.WriteString(warningStyle.Render("⚠️  File conflict detected: ") + titleStyle.Render(m.path) + "\n")

	if m.fileInfo != nil {
		b.WriteString(mutedStyle.Render("    Last modified: ") + humanize.Time(m.fileInfo.ModTime()) + "\n")
		b.WriteString(mutedStyle.Render("    Size: ") + humanize.IBytes(uint64(m.fileInfo.Size())) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("    [↑/↓] Navigate    [Enter] Select    [key] Choose    [q] Abort") + "\n\n")

	for i, c := range m.choices {
		line := fmt.Sprintf("%c) %s", c.Key, c.Name)
		if m.cursor == i {
			b.WriteString("    " + selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("      " + line + "\n")
		}
	}

	return b.String()
}
