package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/grid"
	"tableflip.dev/evcal/pkg/tui/components/calendar"
	"tableflip.dev/evcal/pkg/tui/theme"
)

func newCalendarCmd(opts *options) *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Preview the month grid component",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal := sampleCalendar(opts.empty)
			month := grid.FirstOfMonth(cal.Now())
			if monthFlag != "" {
				t, ok := grid.ParseMonth(monthFlag, time.Local)
				if !ok {
					return fmt.Errorf("unknown month %q", monthFlag)
				}
				month = t
			}
			return run(&calendarModel{
				testbedModel: newTestbedModel(*opts, cal),
				cal:          cal,
				month:        month,
				selected:     month,
				theme:        theme.Default(),
			})
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "month to render (e.g. \"2026-03\" or \"March 2026\")")
	return cmd
}

type calendarModel struct {
	testbedModel
	cal      *app.Calendar
	month    time.Time
	selected time.Time
	theme    theme.Theme
}

func (m *calendarModel) Init() tea.Cmd { return m.testbedModel.Init() }

func (m *calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.testbedModel.Update(msg)
	if key, ok := msg.(tea.KeyPressMsg); ok {
		m.SetFocus(true)
		switch key.String() {
		case "q", "esc":
			return m, tea.Quit
		case "left", "h":
			m.move(-1)
		case "right", "l":
			m.move(1)
		case "up", "k":
			m.move(-7)
		case "down", "j":
			m.move(7)
		case "[":
			m.month = grid.AddMonths(m.month, -1)
			m.selected = m.month
		case "]":
			m.month = grid.AddMonths(m.month, 1)
			m.selected = m.month
		case "space":
			m.SetFocus(false)
		}
	}
	return m, cmd
}

func (m *calendarModel) move(days int) {
	m.selected = m.selected.AddDate(0, 0, days)
	m.month = grid.FirstOfMonth(m.selected)
}

func (m *calendarModel) View() (string, *tea.Cursor) {
	width, height := m.contentSize()
	month := grid.Build(m.month)

	chips := make(map[string][]calendar.Chip)
	for day, events := range m.cal.EventsIn(month) {
		for _, e := range events {
			chips[day] = append(chips[day], calendar.Chip{ID: e.ID, Title: e.Title, Color: m.cal.ColorFor(e)})
		}
	}

	title := m.theme.Grid.Title.Render(month.Title())
	opts := calendar.Fit(width, height-1, len(month.Weeks()), m.theme.Grid)
	body := calendar.Render(month, chips, grid.Midnight(m.cal.Now()), m.selected, opts)
	return m.composeView(title+"\n"+body, nil)
}
