// Package dialog is the add/edit event form.
package dialog

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/evcal/pkg/event"
	"tableflip.dev/evcal/pkg/group"
	"tableflip.dev/evcal/pkg/tui/theme"
)

const (
	fieldTitle = iota
	fieldDate
	fieldGroup
	fieldCount
)

// Model edits the title, date and group of one event.
type Model struct {
	// ID is empty when creating.
	ID string

	inputs [fieldCount]textinput.Model
	focus  int
	theme  theme.ModalTheme
	err    string
}

// New opens the form for e; a nil e starts a new event on day.
func New(th theme.ModalTheme, e *event.Event, day time.Time) *Model {
	m := &Model{theme: th}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		m.inputs[i] = ti
	}
	m.inputs[fieldTitle].Placeholder = "Event title"
	m.inputs[fieldDate].Placeholder = "YYYY-MM-DD"
	m.inputs[fieldDate].CharLimit = 10
	m.inputs[fieldGroup].Placeholder = group.Default

	if e != nil {
		m.ID = e.ID
		m.inputs[fieldTitle].SetValue(e.Title)
		m.inputs[fieldDate].SetValue(e.Date.String())
		m.inputs[fieldGroup].SetValue(e.GroupName)
	} else {
		m.inputs[fieldDate].SetValue(event.Date{Time: day}.String())
		m.inputs[fieldGroup].SetValue(group.Default)
	}
	for i := range m.inputs {
		m.inputs[i].CursorEnd()
	}
	return m
}

// Init focuses the title field.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.inputs[fieldTitle].Focus(), textinput.Blink)
}

// Editing reports whether the form edits an existing event.
func (m *Model) Editing() bool { return m.ID != "" }

// SetError shows err under the fields until the next keystroke.
func (m *Model) SetError(err error) {
	if err == nil {
		m.err = ""
		return
	}
	m.err = err.Error()
}

// Event builds the event described by the form.
func (m *Model) Event() (*event.Event, error) {
	date, err := event.ParseDate(strings.TrimSpace(m.inputs[fieldDate].Value()))
	if err != nil {
		return nil, err
	}
	name := group.Normalize(m.inputs[fieldGroup].Value())
	if name == "" {
		name = group.Default
	}
	return &event.Event{
		ID:        m.ID,
		Title:     strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Date:      event.Date{Time: date},
		GroupName: name,
	}, nil
}

// Update moves between fields on tab and forwards everything else to the
// focused input. Submitting and cancelling are handled by the caller.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		m.err = ""
		switch key.String() {
		case "tab", "down":
			return m, m.focusField((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.focusField((m.focus + fieldCount - 1) % fieldCount)
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) focusField(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// View renders the framed form.
func (m *Model) View(width int) string {
	title := "New event"
	if m.Editing() {
		title = "Edit event"
	}
	labels := [fieldCount]string{"Title", "Date ", "Group"}

	lines := []string{m.theme.Title.Render(title), ""}
	for i, in := range m.inputs {
		lines = append(lines, m.theme.Label.Render(labels[i])+"  "+in.View())
	}
	lines = append(lines, "")
	if m.err != "" {
		lines = append(lines, m.theme.Body.Render("✗ "+m.err))
	}
	lines = append(lines, m.theme.Label.Render("tab next field · enter save · esc cancel"))
	return m.theme.Frame.Width(width).Render(strings.Join(lines, "\n"))
}
