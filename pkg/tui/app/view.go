package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/evcal/pkg/grid"
	"tableflip.dev/evcal/pkg/group"
	"tableflip.dev/evcal/pkg/tui/components/calendar"
)

var modeHints = map[mode]string{
	modeNormal:     "←→↑↓ move · [ ] month · t today · enter day · i quick-create · g groups · ? help · q quit",
	modeInsert:     "enter add · esc done",
	modeDay:        "↑↓ select · a add · e edit · d delete · esc back",
	modeDialog:     "tab next field · enter save · esc cancel",
	modeGroups:     "↑↓ select · space show/hide · a add · c color · d delete · esc back",
	modeGroupInput: "enter confirm · esc cancel",
	modeConfirm:    "y confirm · n cancel",
	modeHelp:       "↑↓ scroll · esc close",
}

func (m *Model) View() string {
	w, h := m.size()

	header := m.renderHeader(w)
	footer := m.renderFooter(w)
	bodyHeight := max(h-lipgloss.Height(header)-lipgloss.Height(footer), 4)

	sideWidth := m.sidebar.Width()
	side := m.sidebar.View(sideWidth, bodyHeight)
	mainWidth := max(w-lipgloss.Width(side)-1, 7*4+6)

	main := m.renderGrid(mainWidth, bodyHeight)
	if overlay := m.renderOverlay(mainWidth); overlay != "" {
		main = lipgloss.Place(mainWidth, bodyHeight, lipgloss.Center, lipgloss.Center, overlay)
	}
	if m.mode == modeHelp && m.help != nil {
		main = m.help.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, side, " ", main)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) renderHeader(width int) string {
	title := m.theme.Grid.Title.Render("◀ " + m.month.Format("January 2006") + " ▶")
	today := m.theme.Footer.Status.Render("today " + m.today.Format("Mon 2 Jan 2006"))
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(today), 1)
	return title + strings.Repeat(" ", gap) + today
}

func (m *Model) renderGrid(width, height int) string {
	month := grid.Build(m.month)
	byDay := m.cal.EventsIn(month)

	chips := make(map[string][]calendar.Chip, len(byDay))
	for day, events := range byDay {
		for _, e := range events {
			chips[day] = append(chips[day], calendar.Chip{
				ID:    e.ID,
				Title: e.Title,
				Color: m.cal.ColorFor(e),
			})
		}
	}

	opts := calendar.Fit(width, height, len(month.Weeks()), m.theme.Grid)
	return calendar.Render(month, chips, m.today, m.selected, opts)
}

func (m *Model) renderOverlay(width int) string {
	boxWidth := min(width-2, 56)
	switch m.mode {
	case modeDay:
		return m.renderDay(boxWidth)
	case modeDialog:
		if m.dialog != nil {
			return m.dialog.View(boxWidth)
		}
	case modeGroupInput:
		label := "New group name"
		switch m.groupInput {
		case groupInputNewColor:
			label = fmt.Sprintf("Color for %q", m.pendingGroup)
		case groupInputColor:
			label = fmt.Sprintf("New color for %q", m.pendingGroup)
		}
		return m.modal(boxWidth, label, m.groupField.View())
	case modeConfirm:
		return m.modal(boxWidth, m.confirm.prompt, m.theme.Modal.Label.Render("y / n"))
	}
	return ""
}

func (m *Model) modal(width int, title, body string) string {
	th := m.theme.Modal
	return th.Frame.Width(width).Render(th.Title.Render(title) + "\n\n" + th.Body.Render(body))
}

func (m *Model) renderDay(width int) string {
	th := m.theme.Modal
	events := m.cal.EventsOn(m.selected)

	lines := []string{th.Title.Render(m.selected.Format("Monday 2 January 2006")), ""}
	if len(events) == 0 {
		lines = append(lines, th.Label.Render("no events · press a to add one"))
	}
	inner := max(width-th.Frame.GetHorizontalFrameSize(), 8)
	for i, e := range events {
		hex, err := group.NormalizeColor(m.cal.ColorFor(e))
		if err != nil {
			hex, _ = group.NormalizeColor(group.FallbackColor)
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
		cursor := "  "
		if i == m.dayCursor {
			cursor = "› "
		}
		text := truncate.StringWithTail(e.Title+"  #"+e.GroupName, uint(max(inner-4, 1)), "…")
		lines = append(lines, cursor+swatch+" "+text)
	}
	return th.Frame.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter(width int) string {
	prompt := m.theme.Footer.Prompt.Render("› ")
	line := prompt + m.input.View()

	status := m.theme.Footer.Status.Render(m.status)
	if m.statusErr {
		status = m.theme.Footer.Error.Render("✗ " + m.status)
	}
	hint := m.theme.Footer.Help.Render(truncate.StringWithTail(modeHints[m.mode], uint(max(width, 1)), "…"))
	return strings.Join([]string{line, status, hint}, "\n")
}
