package teaui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/event"
	"tableflip.dev/evcal/pkg/group"
	"tableflip.dev/evcal/pkg/log"
	"tableflip.dev/evcal/pkg/tui/components/dialog"
	"tableflip.dev/evcal/pkg/tui/components/help"
)

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	switch m.mode {
	case modeInsert:
		return m.handleInsertKey(msg)
	case modeDay:
		return m.handleDayKey(msg)
	case modeDialog:
		return m.handleDialogKey(msg)
	case modeGroups:
		return m.handleGroupsKey(msg)
	case modeGroupInput:
		return m.handleGroupInputKey(msg)
	case modeConfirm:
		return m.handleConfirmKey(msg)
	case modeHelp:
		return m.handleHelpKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "left", "h":
		m.selectDate(m.selected.AddDate(0, 0, -1))
	case "right", "l":
		m.selectDate(m.selected.AddDate(0, 0, 1))
	case "up", "k":
		m.selectDate(m.selected.AddDate(0, 0, -7))
	case "down", "j":
		m.selectDate(m.selected.AddDate(0, 0, 7))
	case "[", "pgup":
		m.shiftMonth(-1)
	case "]", "pgdown":
		m.shiftMonth(1)
	case "t":
		m.selectDate(m.today)
	case "enter":
		m.mode = modeDay
		m.dayCursor = 0
	case "i", "/":
		m.mode = modeInsert
		return tea.Batch(m.input.Focus(), textinput.Blink)
	case "g", "tab":
		m.mode = modeGroups
		m.sidebar.Focus()
	case "?":
		m.mode = modeHelp
		m.help = help.New(m.overlaySize())
		m.help.SetGroups(m.cal.Groups())
	}
	return nil
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.mode = modeNormal
		return nil
	case "enter":
		m.submitQuickCreate()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// submitQuickCreate adds the typed event. On error the buffer is kept so the
// line can be corrected.
func (m *Model) submitQuickCreate() {
	line := m.input.Value()
	e, err := m.cal.QuickCreate(line)
	if err != nil {
		m.setError(fmt.Errorf("%q: %w", line, err))
		return
	}
	m.input.Reset()
	m.selectDate(e.Date.Time)
	m.setStatus(fmt.Sprintf("added %q on %s", e.Title, e.Date.Format("Mon Jan 2")))
	if !m.cal.Visible(e) {
		m.setStatus(fmt.Sprintf("added %q to hidden or unknown group %q", e.Title, e.GroupName))
	}
}

func (m *Model) handleDayKey(msg tea.KeyPressMsg) tea.Cmd {
	events := m.cal.EventsOn(m.selected)
	switch msg.String() {
	case "esc", "q":
		m.mode = modeNormal
	case "up", "k":
		if m.dayCursor > 0 {
			m.dayCursor--
		}
	case "down", "j":
		if m.dayCursor < len(events)-1 {
			m.dayCursor++
		}
	case "a":
		return m.openDialog(nil)
	case "e", "enter":
		if len(events) == 0 {
			return m.openDialog(nil)
		}
		return m.openDialog(events[m.dayCursor])
	case "d", "x", "delete":
		if len(events) == 0 {
			return nil
		}
		e := events[m.dayCursor]
		m.askConfirm(fmt.Sprintf("Delete event %q?", e.Title), func() error {
			if err := m.cal.DeleteEvent(e.ID); err != nil {
				return err
			}
			m.setStatus(fmt.Sprintf("deleted %q", e.Title))
			return nil
		})
	}
	return nil
}

func (m *Model) openDialog(e *event.Event) tea.Cmd {
	m.dialog = dialog.New(m.theme.Modal, e, m.selected)
	m.mode = modeDialog
	return m.dialog.Init()
}

func (m *Model) handleDialogKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.dialog = nil
		m.mode = modeDay
		return nil
	case "enter":
		m.submitDialog()
		return nil
	}
	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	return cmd
}

func (m *Model) submitDialog() {
	e, err := m.dialog.Event()
	if err != nil {
		m.dialog.SetError(err)
		return
	}
	verb := "added"
	if m.dialog.Editing() {
		verb = "updated"
		e, err = m.cal.UpdateEvent(e)
	} else {
		e, err = m.cal.AddEvent(e)
	}
	if err != nil {
		m.dialog.SetError(err)
		return
	}
	log.Debug("event saved from dialog", "id", e.ID, "action", verb)
	m.dialog = nil
	m.selectDate(e.Date.Time)
	m.mode = modeDay
	m.setStatus(fmt.Sprintf("%s %q", verb, e.Title))
}

func (m *Model) handleGroupsKey(msg tea.KeyPressMsg) tea.Cmd {
	sel := m.sidebar.Selected()
	switch msg.String() {
	case "esc", "g", "tab", "q":
		m.sidebar.Blur()
		m.mode = modeNormal
	case "up", "k":
		m.sidebar.Up()
	case "down", "j":
		m.sidebar.Down()
	case "space", " ":
		visible, err := m.cal.ToggleGroup(sel.Name)
		if err != nil {
			m.setError(err)
			return nil
		}
		m.sync()
		state := "hidden"
		if visible {
			state = "shown"
		}
		m.setStatus(fmt.Sprintf("group %q %s", sel.Name, state))
	case "a":
		return m.openGroupInput(groupInputName, "", "")
	case "c":
		return m.openGroupInput(groupInputColor, sel.Name, sel.Color)
	case "d", "x", "delete":
		if sel.Name == group.Default {
			m.setError(app.ErrDefaultGroup)
			return nil
		}
		m.askConfirm(fmt.Sprintf("Delete group %q?", sel.Name), func() error {
			if err := m.cal.DeleteGroup(sel.Name); err != nil {
				return err
			}
			m.setStatus(fmt.Sprintf("deleted group %q", sel.Name))
			return nil
		})
	}
	return nil
}

func (m *Model) openGroupInput(kind groupInput, name, value string) tea.Cmd {
	m.groupInput = kind
	m.pendingGroup = name
	m.groupField.Reset()
	m.groupField.Placeholder = ""
	if kind != groupInputName {
		m.groupField.Placeholder = group.NewGroupColor
	}
	m.groupField.SetValue(value)
	m.groupField.CursorEnd()
	m.mode = modeGroupInput
	return tea.Batch(m.groupField.Focus(), textinput.Blink)
}

func (m *Model) handleGroupInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.groupField.Blur()
		m.mode = modeGroups
		return nil
	case "enter":
		return m.submitGroupInput()
	}
	var cmd tea.Cmd
	m.groupField, cmd = m.groupField.Update(msg)
	return cmd
}

func (m *Model) submitGroupInput() tea.Cmd {
	value := m.groupField.Value()
	switch m.groupInput {
	case groupInputName:
		name := group.Normalize(value)
		if name == "" {
			m.setError(app.ErrGroupNameEmpty)
			return nil
		}
		if _, ok := m.cal.Group(name); ok {
			m.setError(fmt.Errorf("%q: %w", name, app.ErrGroupExists))
			return nil
		}
		return m.openGroupInput(groupInputNewColor, name, group.NewGroupColor)
	case groupInputNewColor:
		g, err := m.cal.AddGroup(m.pendingGroup, value)
		if err != nil {
			m.setError(err)
			return nil
		}
		m.setStatus(fmt.Sprintf("added group %q", g.Name))
	case groupInputColor:
		if err := m.cal.SetGroupColor(m.pendingGroup, value); err != nil {
			m.setError(err)
			return nil
		}
		m.setStatus(fmt.Sprintf("recolored group %q", m.pendingGroup))
	}
	m.groupField.Blur()
	m.sidebar.SetGroups(m.cal.Groups())
	m.mode = modeGroups
	return nil
}

func (m *Model) askConfirm(prompt string, run func() error) {
	m.confirm = confirmState{prompt: prompt, run: run, back: m.mode}
	m.mode = modeConfirm
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		if err := m.confirm.run(); err != nil {
			m.setError(err)
		}
		m.sync()
		m.mode = m.confirm.back
		m.confirm = confirmState{}
	case "n", "esc", "q":
		m.mode = m.confirm.back
		m.confirm = confirmState{}
	}
	return nil
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "?", "esc", "q":
		m.mode = modeNormal
		m.help = nil
		return nil
	}
	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	return cmd
}
