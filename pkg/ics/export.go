// Package ics renders calendar events as an iCalendar document.
package ics

import (
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"tableflip.dev/evcal/pkg/event"
)

const productID = "-//tableflip.dev//evcal//EN"

// ColorFunc resolves the display color of an event; it may return "".
type ColorFunc func(*event.Event) string

// Build converts events into all-day VEVENTs. The group name is written as
// the event category.
func Build(events []*event.Event, colorOf ColorFunc, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range events {
		ve := cal.AddEvent(e.ID + "@evcal")
		ve.SetDtStampTime(stamp)
		ve.SetSummary(e.Title)
		ve.SetAllDayStartAt(e.Date.Time)
		ve.SetAllDayEndAt(e.Date.AddDate(0, 0, 1))
		if e.GroupName != "" {
			ve.AddProperty(ical.ComponentPropertyCategories, e.GroupName)
		}
		if colorOf != nil {
			if c := colorOf(e); c != "" {
				ve.AddProperty(ical.ComponentPropertyColor, c)
			}
		}
	}
	return cal
}

// Write serializes events to w.
func Write(w io.Writer, events []*event.Event, colorOf ColorFunc, stamp time.Time) error {
	_, err := io.WriteString(w, Build(events, colorOf, stamp).Serialize())
	return err
}
