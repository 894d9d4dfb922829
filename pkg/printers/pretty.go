package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/evcal/pkg/event"
	"tableflip.dev/evcal/pkg/group"
)

// PrettyPrint writes human readable output to Out (color.Output by default).
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " event")
	default:
		_, _ = c.Fprintln(pp.out(), " events")
	}
}

// Events prints one row per event: date, group tag, title.
func (pp *PrettyPrint) Events(events ...*event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	for _, e := range events {
		date, tag, title := e.Row()
		if pp.ShowID {
			tbl.AddRow(e.ID, date, tag, title)
		} else {
			tbl.AddRow(date, tag, title)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Groups prints the group list with visibility and color.
func (pp *PrettyPrint) Groups(groups ...group.Group) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "NAME", "COLOR")
	for _, g := range groups {
		mark := "[ ]"
		if g.Visible {
			mark = "[x]"
		}
		tbl.AddRow(mark, g.Name, g.Color)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Failure prints a rejected input line and the reason.
func (pp *PrettyPrint) Failure(line, reason string) {
	r := color.New(color.FgRed)
	f := color.New(color.Faint)
	_, _ = r.Fprint(pp.out(), "  ✗ ")
	_, _ = fmt.Fprint(pp.out(), line)
	_, _ = f.Fprintf(pp.out(), "  (%s)\n", reason)
}
