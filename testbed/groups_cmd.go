package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/tui/components/eventviewer"
	"tableflip.dev/evcal/pkg/tui/components/groups"
	"tableflip.dev/evcal/pkg/tui/theme"
)

func newGroupsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "Preview the group sidebar component",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal := sampleCalendar(opts.empty)
			list := groups.New(theme.Default().Sidebar)
			list.SetGroups(cal.Groups())
			list.Focus()
			return run(&groupsModel{
				testbedModel: newTestbedModel(*opts, cal),
				cal:          cal,
				list:         list,
			})
		},
	}
}

type groupsModel struct {
	testbedModel
	cal  *app.Calendar
	list *groups.Model
}

func (m *groupsModel) Init() tea.Cmd { return m.testbedModel.Init() }

func (m *groupsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.testbedModel.Update(msg)
	switch msg := msg.(type) {
	case changeMsg:
		m.list.SetGroups(m.cal.Groups())
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "up", "k":
			m.list.Up()
		case "down", "j":
			m.list.Down()
		case "space", "enter":
			if _, err := m.cal.ToggleGroup(m.list.Selected().Name); err != nil {
				m.report(err)
			}
		case "d":
			if err := m.cal.DeleteGroup(m.list.Selected().Name); err != nil {
				m.report(err)
			}
		case "tab":
			if m.list.Focused() {
				m.list.Blur()
			} else {
				m.list.Focus()
			}
			m.SetFocus(m.list.Focused())
		}
	}
	return m, cmd
}

func (m *groupsModel) report(err error) {
	m.events.Append(eventviewer.Entry{Source: "groups", Summary: "error", Detail: err.Error(), Level: eventviewer.LevelError})
}

func (m *groupsModel) View() (string, *tea.Cursor) {
	_, height := m.contentSize()
	hint := fmt.Sprintf("%d groups · space toggle · d delete · q quit", len(m.cal.Groups()))
	return m.composeView(m.list.View(m.list.Width(), height-1)+"\n"+hint, nil)
}
