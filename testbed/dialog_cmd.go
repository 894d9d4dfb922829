package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/event"
	"tableflip.dev/evcal/pkg/tui/components/dialog"
	"tableflip.dev/evcal/pkg/tui/components/eventviewer"
	"tableflip.dev/evcal/pkg/tui/theme"
)

func newDialogCmd(opts *options) *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "dialog",
		Short: "Preview the add/edit event dialog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal := sampleCalendar(opts.empty)
			m := &dialogModel{
				testbedModel: newTestbedModel(*opts, cal),
				cal:          cal,
			}
			var existing *event.Event
			if evs := cal.Events(); edit && len(evs) > 0 {
				existing = evs[0]
			}
			m.form = dialog.New(theme.Default().Modal, existing, cal.Now())
			return run(m)
		},
	}

	cmd.Flags().BoolVar(&edit, "edit", false, "open the first sample event instead of a blank form")
	return cmd
}

type dialogModel struct {
	testbedModel
	cal  *app.Calendar
	form *dialog.Model
}

func (m *dialogModel) Init() tea.Cmd {
	return tea.Batch(m.testbedModel.Init(), m.form.Init())
}

func (m *dialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, base := m.testbedModel.Update(msg)
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			return m, tea.Quit
		case "enter":
			m.save()
			return m, base
		}
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, tea.Batch(base, cmd)
}

func (m *dialogModel) save() {
	e, err := m.form.Event()
	if err == nil {
		if m.form.Editing() {
			_, err = m.cal.UpdateEvent(e)
		} else {
			_, err = m.cal.AddEvent(e)
		}
	}
	if err != nil {
		m.form.SetError(err)
		m.events.Append(eventviewer.Entry{Source: "dialog", Summary: "error", Detail: err.Error(), Level: eventviewer.LevelError})
	}
}

func (m *dialogModel) View() (string, *tea.Cursor) {
	width, _ := m.contentSize()
	return m.composeView(m.form.View(min(width, 60)), nil)
}
