package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/group"
	"tableflip.dev/evcal/pkg/runner/parse"
)

func TestExportSkipsHiddenGroups(t *testing.T) {
	cal := app.New(app.Options{
		Groups: []group.Group{{Name: "work", Color: "#ff0000", Visible: false}},
		Now:    func() time.Time { return time.Date(2026, time.October, 16, 9, 0, 0, 0, time.Local) },
	})

	var buf bytes.Buffer
	x := &Export{
		Input:    parse.Input{In: strings.NewReader("tom party\nwed standup #work\nbad\n")},
		Calendar: cal,
		Out:      &buf,
	}
	if err := x.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	doc, err := ical.ParseCalendar(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	events := doc.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 visible event, got %d", len(events))
	}
	if got := events[0].GetProperty(ical.ComponentPropertySummary).Value; got != "party" {
		t.Fatalf("unexpected summary %q", got)
	}

	buf.Reset()
	x.Input = parse.Input{In: strings.NewReader("")}
	x.Hidden = true
	if err := x.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	doc, err = ical.ParseCalendar(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := len(doc.Events()); got != 2 {
		t.Fatalf("expected 2 events with hidden, got %d", got)
	}
}
