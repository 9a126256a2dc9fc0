package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ExitChoice is the menu choice that ends the session.
const ExitChoice = 3

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Direct key.Binding
	Quit   key.Binding
}

func defaultMenuKeys() menuKeyMap {
	return menuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Direct: key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "choose")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c", "ctrl+d"), key.WithHelp("q", "exit")),
	}
}

// inputClosedMsg is sent when the menu's input reaches end of file.
type inputClosedMsg struct{}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	keys   menuKeyMap
	cursor int
	choice int
	styled bool
}

// NewMenuModel returns a MenuModel with the cursor on the first entry.
func NewMenuModel(styled bool) *MenuModel {
	return &MenuModel{keys: defaultMenuKeys(), styled: styled}
}

// Choice returns the selected option (1-3), or 0 if none was made.
func (m *MenuModel) Choice() int {
	return m.choice
}

// Init initializes the model.
func (m *MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, closed := msg.(inputClosedMsg); closed {
		if m.choice == 0 {
			m.choice = ExitChoice
		}
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.choice != 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.choice = ExitChoice
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(MenuOptions)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		m.choice = m.cursor + 1
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Direct):
		m.choice = int(keyMsg.String()[0] - '0')
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu with a cursor on the focused entry.
func (m *MenuModel) View() string {
	if m.choice != 0 {
		return ""
	}

	r := NewRenderer(m.styled)
	var sb strings.Builder
	sb.WriteString(r.render(HeaderStyle, MenuTitle))
	sb.WriteString("\n")
	for i, opt := range MenuOptions {
		line := fmt.Sprintf("%s  %s", menuBullets[i], opt)
		if i == m.cursor {
			sb.WriteString(r.render(CursorStyle, "> ") + r.render(SelectedStyle, line) + "\n")
			continue
		}
		sb.WriteString("  " + line + "\n")
	}
	sb.WriteString(r.render(MutedStyle, "↑/↓ move • enter select • 1-3 choose • q exit"))
	sb.WriteString("\n")
	return sb.String()
}

// eofReader forwards reads to r and calls onEOF once r is exhausted.
type eofReader struct {
	r     io.Reader
	once  sync.Once
	onEOF func()
}

func (e *eofReader) Read(b []byte) (int, error) {
	n, err := e.r.Read(b)
	if errors.Is(err, io.EOF) {
		e.once.Do(e.onEOF)
	}
	return n, err
}

// RunMenu shows the menu as a Bubble Tea program and returns the choice.
// End of input selects ExitChoice.
func RunMenu(ctx context.Context, in io.Reader, out io.Writer, styled bool) (int, error) {
	model := NewMenuModel(styled)

	var p *tea.Program
	input := &eofReader{r: in, onEOF: func() {
		// Send blocks until the event loop receives; the read loop must not.
		go p.Send(inputClosedMsg{})
	}}
	p = tea.NewProgram(model, tea.WithContext(ctx), tea.WithInput(input), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("running menu: %w", err)
	}

	m, ok := final.(*MenuModel)
	if !ok || m.Choice() == 0 {
		return ExitChoice, nil
	}
	return m.Choice(), nil
}
