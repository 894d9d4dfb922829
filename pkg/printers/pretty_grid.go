package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/evcal/pkg/event"
	"tableflip.dev/evcal/pkg/grid"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a Monday-first month grid. Placeholder days from the
// neighbouring months are faint, days with events are bold and today is
// underlined. Events are listed below the grid.
func (pp *PrettyPrint) Month(m grid.Month, today time.Time, events map[string][]*event.Event) {
	out := pp.out()

	tf := color.New(color.FgWhite, color.Italic)
	title := m.Title()
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), title)

	hdr := color.New(color.Faint)
	heads := make([]string, 0, len(grid.Weekdays))
	for _, wd := range grid.Weekdays {
		heads = append(heads, wd[:2])
	}
	_, _ = hdr.Fprintln(out, strings.Join(heads, " "))

	placeholder := color.New(color.Faint, color.FgWhite)
	plain := color.New()
	busy := color.New(color.Bold, color.FgHiWhite)

	for _, week := range m.Weeks() {
		for i, c := range week {
			if i > 0 {
				_, _ = fmt.Fprint(out, " ")
			}
			p := plain
			switch {
			case c.Placeholder:
				p = placeholder
			case len(events[event.Date{Time: c.Date}.String()]) > 0:
				p = busy
			}
			if !c.Placeholder && grid.SameDay(c.Date, today) {
				p = color.New(color.Underline, color.Bold)
			}
			_, _ = p.Fprintf(out, "%2d", c.Day())
		}
		_, _ = fmt.Fprintln(out)
	}
	_, _ = fmt.Fprintln(out)

	var listed []*event.Event
	for _, c := range m.Cells() {
		listed = append(listed, events[event.Date{Time: c.Date}.String()]...)
	}
	if len(listed) > 0 {
		pp.Events(listed...)
	}
}
