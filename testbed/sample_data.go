package main

import (
	"time"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/event"
	"tableflip.dev/evcal/pkg/group"
)

// sampleCalendar seeds a calendar with a few groups and, unless empty is
// set, events spread around the current month.
func sampleCalendar(empty bool) *app.Calendar {
	cal := app.New(app.Options{
		Groups: []group.Group{
			{Name: "work", Color: "#4F86F7", Visible: true},
			{Name: "home", Color: "#50C878", Visible: true},
			{Name: "travel", Color: "#FF8C42", Visible: false},
		},
	})
	if empty {
		return cal
	}

	first := time.Date(cal.Now().Year(), cal.Now().Month(), 1, 0, 0, 0, 0, time.Local)
	samples := []struct {
		offset int
		title  string
		group  string
	}{
		{0, "Month planning", "work"},
		{2, "Dentist", "home"},
		{4, "Release train", "work"},
		{4, "Write an extra long title so truncation inside a narrow cell can be checked", group.Default},
		{4, "Standup", "work"},
		{4, "Groceries", "home"},
		{9, "Flight to Lisbon", "travel"},
		{14, "Quarterly review", "work"},
		{20, "Birthday dinner", "home"},
		{27, "Offsite", "work"},
	}
	for _, s := range samples {
		_, _ = cal.AddEvent(event.New(s.title, first.AddDate(0, 0, s.offset), s.group))
	}
	return cal
}
