// Package tui renders the interactive multi-select menu used to pick files,
// folders and categories.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mediaship/internal/app"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Up, k.Down, k.Confirm, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Up, k.Down}, {k.Confirm, k.Quit}}
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "move up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "move down")),
	Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// model is the multi-select menu. Toggled items keep their toggle order;
// confirming appends the item under the cursor as the last choice, so the
// caller can always inspect "the last chosen label".
type model struct {
	title   string
	items   []string
	cursor  int
	toggled map[int]bool
	order   []int
	help    help.Model

	confirmed bool
	canceled  bool
}

func newModel(title string, items []string) model {
	return model{
		title:   title,
		items:   items,
		toggled: make(map[int]bool),
		help:    help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.canceled = true
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Toggle):
			m.toggle(m.cursor)
		case key.Matches(msg, keys.Confirm):
			m.confirmed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *model) toggle(idx int) {
	if m.toggled[idx] {
		delete(m.toggled, idx)
		for i, ord := range m.order {
			if ord == idx {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
		return
	}
	m.toggled[idx] = true
	m.order = append(m.order, idx)
}

// choices returns the toggled labels in toggle order with the cursor item
// last. A bare enter therefore yields exactly the highlighted item.
func (m model) choices() []string {
	if !m.confirmed {
		return nil
	}
	var labels []string
	for _, idx := range m.order {
		if idx == m.cursor {
			continue
		}
		labels = append(labels, m.items[idx])
	}
	return append(labels, m.items[m.cursor])
}

func (m model) View() string {
	if m.confirmed || m.canceled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("❯ ")
		}

		marker := "[ ]"
		label := item
		if m.toggled[i] {
			marker = markerStyle.Render("[x]")
			label = selectedStyle.Render(item)
		} else if i == m.cursor {
			label = cursorStyle.Render(item)
		}

		b.WriteString(cursor + marker + " " + label + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

// Picker implements the menu port with a bubbletea program per prompt.
type Picker struct{}

// Pick appends the synthetic ".." entry (and the DONE sentinel when asked)
// and runs the menu. Any failure of the terminal interaction layer, such as
// a non-interactive stdin, is reported as a cancellation, never as a
// generic error.
func (Picker) Pick(title string, items []string, withDone bool) ([]string, error) {
	labels := append([]string(nil), items...)
	labels = append(labels, app.UpLabel)
	if withDone {
		labels = append(labels, app.DoneLabel)
	}

	out, err := tea.NewProgram(newModel(title, labels)).Run()
	if err != nil {
		return nil, app.ErrCanceled
	}

	final, ok := out.(model)
	if !ok || final.canceled {
		return nil, app.ErrCanceled
	}
	return final.choices(), nil
}
