// Package calendar renders the month grid with event chips.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/evcal/pkg/grid"
	"tableflip.dev/evcal/pkg/group"
	"tableflip.dev/evcal/pkg/tui/theme"
)

// Chip is one event line inside a day cell.
type Chip struct {
	ID    string
	Title string
	Color string
}

// Options controls cell geometry and styling.
type Options struct {
	Theme      theme.GridTheme
	CellWidth  int
	CellHeight int
}

const (
	minCellWidth  = 4
	maxCellHeight = 6
)

// Fit sizes cells so that a grid with the given number of weeks fills a
// width x height area, leaving one line for the weekday header.
func Fit(width, height, weeks int, th theme.GridTheme) Options {
	w := (width - 6) / 7
	if w < minCellWidth {
		w = minCellWidth
	}
	h := 1
	if weeks > 0 {
		h = (height - 1) / weeks
	}
	if h < 1 {
		h = 1
	}
	if h > maxCellHeight {
		h = maxCellHeight
	}
	return Options{Theme: th, CellWidth: w, CellHeight: h}
}

// Render draws the weekday header and every week of m. chips is keyed by
// ISO date, as returned by app.Calendar.EventsIn.
func Render(m grid.Month, chips map[string][]Chip, today, selected time.Time, opts Options) string {
	if opts.CellWidth < minCellWidth {
		opts.CellWidth = minCellWidth
	}
	if opts.CellHeight < 1 {
		opts.CellHeight = 1
	}

	heads := make([]string, 0, len(grid.Weekdays))
	for _, wd := range grid.Weekdays {
		name := truncate.String(wd, uint(opts.CellWidth))
		heads = append(heads, opts.Theme.Weekday.Render(padRight(name, opts.CellWidth)))
	}
	rows := []string{strings.Join(heads, " ")}

	for _, week := range m.Weeks() {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			key := c.Date.Format("2006-01-02")
			cells = append(cells, renderCell(c, chips[key],
				grid.SameDay(c.Date, today), grid.SameDay(c.Date, selected), opts))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, interleave(cells, " ")...))
	}
	return strings.Join(rows, "\n")
}

func renderCell(c grid.Cell, chips []Chip, today, selected bool, opts Options) string {
	th := opts.Theme
	w := opts.CellWidth

	style := th.Day
	switch {
	case c.Placeholder:
		style = th.Placeholder
	case today:
		style = th.Today
	}
	if selected {
		style = th.Selected.Inherit(style)
	}
	lines := []string{style.Render(fmt.Sprintf("%2d", c.Day())) + strings.Repeat(" ", w-2)}

	room := opts.CellHeight - 1
	for i, chip := range chips {
		if i == room-1 && len(chips) > room {
			more := fmt.Sprintf("+%d more", len(chips)-i)
			lines = append(lines, th.More.Render(padRight(truncate.String(more, uint(w)), w)))
			break
		}
		if i >= room {
			break
		}
		lines = append(lines, renderChip(chip, w, th.Chip))
	}
	for len(lines) < opts.CellHeight {
		lines = append(lines, strings.Repeat(" ", w))
	}
	return strings.Join(lines, "\n")
}

func renderChip(chip Chip, width int, base lipgloss.Style) string {
	bg, err := group.NormalizeColor(chip.Color)
	if err != nil {
		bg, _ = group.NormalizeColor(group.FallbackColor)
	}
	text := truncate.StringWithTail(chip.Title, uint(width-1), "…")
	return base.
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(group.Foreground(bg))).
		Render(padRight(" "+text, width))
}

func padRight(s string, width int) string {
	if n := ansi.PrintableRuneWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func interleave(cells []string, sep string) []string {
	out := make([]string, 0, len(cells)*2)
	for i, c := range cells {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, c)
	}
	return out
}
