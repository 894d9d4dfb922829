// Package parse runs quick-create commands against a calendar and prints
// the resulting events.
package parse

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/event"
	"tableflip.dev/evcal/pkg/log"
	"tableflip.dev/evcal/pkg/printers"
	"tableflip.dev/evcal/pkg/quick"
)

// Parse turns quick-create lines into events.
type Parse struct {
	Input
	Calendar *app.Calendar
	Format   string
	ShowID   bool
	Out      io.Writer
}

// Failure pairs a rejected line with its reason.
type Failure struct {
	Line  string `json:"line" yaml:"line"`
	Error string `json:"error" yaml:"error"`
}

// Result is the structured output of a parse run.
type Result struct {
	Events   []*event.Event `json:"events" yaml:"events"`
	Failures []Failure      `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Run creates one event per line. Rejected lines are collected, not fatal.
func Run(cal *app.Calendar, lines []string) Result {
	var res Result
	for _, line := range lines {
		e, err := cal.QuickCreate(line)
		if err != nil {
			log.Debug("quick create rejected", "line", line, "err", err)
			res.Failures = append(res.Failures, Failure{Line: line, Error: err.Error()})
			continue
		}
		res.Events = append(res.Events, e)
	}
	return res
}

func (p *Parse) Do(ctx context.Context) error {
	if p.Calendar == nil {
		return errors.New("can not parse, no calendar")
	}
	if p.Validate == nil {
		p.Validate = func(line string) error {
			_, err := quick.Parse(line, p.Calendar.Now())
			return err
		}
	}

	lines, err := p.Lines()
	if err != nil {
		return err
	}
	res := Run(p.Calendar, lines)

	pp := printers.PrettyPrint{Out: p.Out, ShowID: p.ShowID}
	if p.Format != "" {
		if err := pp.Encode(p.Format, res); err != nil {
			return err
		}
	} else {
		pp.NewLine()
		pp.TitleWithCount("Parsed", len(res.Events))
		pp.Events(res.Events...)
		for _, f := range res.Failures {
			pp.Failure(f.Line, f.Error)
		}
	}

	if n := len(res.Failures); n > 0 {
		return fmt.Errorf("%d of %d commands could not be parsed", n, len(lines))
	}
	return nil
}
