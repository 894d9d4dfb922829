package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"tableflip.dev/evcal/pkg/event"
)

func TestWriteRoundTrip(t *testing.T) {
	day := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.Local)
	events := []*event.Event{
		event.New("birthday party", day, "personal"),
		event.New("deadline", day.AddDate(0, 0, 3), "default"),
	}

	var buf bytes.Buffer
	stamp := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	colorOf := func(e *event.Event) string {
		if e.GroupName == "personal" {
			return "#ff0000"
		}
		return ""
	}
	if err := Write(&buf, events, colorOf, stamp); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "DTSTART;VALUE=DATE:20261017") {
		t.Fatalf("expected all-day start:\n%s", out)
	}
	if !strings.Contains(out, "CATEGORIES:personal") {
		t.Fatalf("expected group category:\n%s", out)
	}

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := cal.Events()
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if s := got[0].GetProperty(ical.ComponentPropertySummary); s == nil || s.Value != "birthday party" {
		t.Fatalf("unexpected summary %+v", s)
	}
	if c := got[1].GetProperty(ical.ComponentPropertyColor); c != nil {
		t.Fatalf("unexpected color on default event: %+v", c)
	}
}
