package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/evcal/pkg/tui/components/help"
)

func newHelpCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "help-overlay",
		Short: "Render the help overlay component",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &helpModel{testbedModel: newTestbedModel(*opts, nil)}
			m.ensureSizing()
			return run(m)
		},
	}
}

type helpModel struct {
	testbedModel
	overlay *help.Model
}

func (m *helpModel) Init() tea.Cmd { return nil }

func (m *helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.testbedModel.Update(msg)
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.ensureSizing()
	case tea.KeyPressMsg:
		switch v.String() {
		case "esc", "q", "?":
			return m, tea.Quit
		}
	}
	var overlayCmd tea.Cmd
	m.overlay, overlayCmd = m.overlay.Update(msg)
	return m, tea.Batch(cmd, overlayCmd)
}

func (m *helpModel) View() (string, *tea.Cursor) {
	m.ensureSizing()
	return m.composeView(m.overlay.View(), nil)
}

func (m *helpModel) ensureSizing() {
	width, height := m.contentSize()
	if m.overlay == nil {
		m.overlay = help.New(width, height)
		m.overlay.SetGroups(sampleCalendar(false).Groups())
		return
	}
	m.overlay.SetSize(width, height)
}
