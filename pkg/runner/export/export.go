// Package export writes quick-created events as an iCalendar document.
package export

import (
	"context"
	"errors"
	"io"
	"os"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/event"
	"tableflip.dev/evcal/pkg/ics"
	"tableflip.dev/evcal/pkg/log"
	"tableflip.dev/evcal/pkg/runner/parse"
)

// Export parses the input lines and writes the visible events as ICS.
type Export struct {
	parse.Input
	Calendar *app.Calendar
	// Hidden also exports events whose group is hidden or missing.
	Hidden bool
	Out    io.Writer
}

func (x *Export) Do(ctx context.Context) error {
	if x.Calendar == nil {
		return errors.New("can not export, no calendar")
	}
	lines, err := x.Lines()
	if err != nil {
		return err
	}

	res := parse.Run(x.Calendar, lines)
	for _, f := range res.Failures {
		log.Error("skipping line", errors.New(f.Error), "line", f.Line)
	}

	var events []*event.Event
	for _, e := range x.Calendar.Events() {
		if x.Hidden || x.Calendar.Visible(e) {
			events = append(events, e)
		}
	}

	out := x.Out
	if out == nil {
		out = os.Stdout
	}
	return ics.Write(out, events, x.Calendar.ColorFor, x.Calendar.Now())
}
