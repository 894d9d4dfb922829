// Package grid prints a month grid with its events.
package grid

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/event"
	calgrid "tableflip.dev/evcal/pkg/grid"
	"tableflip.dev/evcal/pkg/printers"
)

// Grid renders Month, seeding the calendar with Lines first.
type Grid struct {
	Calendar *app.Calendar
	Month    time.Time
	// Lines are quick-create commands applied before rendering.
	Lines  []string
	Format string
	ShowID bool
	Out    io.Writer
}

// Cell is the structured form of one grid cell.
type Cell struct {
	Date        string         `json:"date" yaml:"date"`
	Placeholder bool           `json:"placeholder" yaml:"placeholder"`
	Events      []*event.Event `json:"events,omitempty" yaml:"events,omitempty"`
}

// Month is the structured form of a month grid.
type Month struct {
	Title    string   `json:"title" yaml:"title"`
	Leading  int      `json:"leading" yaml:"leading"`
	Trailing int      `json:"trailing" yaml:"trailing"`
	Weeks    [][]Cell `json:"weeks" yaml:"weeks"`
}

// Structured converts m and its events into cells.
func Structured(m calgrid.Month, byDay map[string][]*event.Event) Month {
	out := Month{
		Title:    m.Title(),
		Leading:  len(m.Leading),
		Trailing: len(m.Trailing),
	}
	for _, week := range m.Weeks() {
		row := make([]Cell, 0, len(week))
		for _, c := range week {
			key := event.Date{Time: c.Date}.String()
			row = append(row, Cell{Date: key, Placeholder: c.Placeholder, Events: byDay[key]})
		}
		out.Weeks = append(out.Weeks, row)
	}
	return out
}

func (g *Grid) Do(ctx context.Context) error {
	if g.Calendar == nil {
		return errors.New("can not render grid, no calendar")
	}
	for _, line := range g.Lines {
		if _, err := g.Calendar.QuickCreate(line); err != nil {
			return err
		}
	}

	month := g.Month
	if month.IsZero() {
		month = g.Calendar.Now()
	}
	m := calgrid.Build(month)
	byDay := g.Calendar.EventsIn(m)

	pp := printers.PrettyPrint{Out: g.Out, ShowID: g.ShowID}
	if g.Format != "" {
		return pp.Encode(g.Format, Structured(m, byDay))
	}
	pp.NewLine()
	pp.Month(m, g.Calendar.Now(), byDay)
	return nil
}
