// Package grid computes the cells of a Monday-first month calendar.
package grid

import (
	"time"
)

// Weekdays are the column headers of the grid, Monday first.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Cell is a single grid position.
type Cell struct {
	Date time.Time
	// Placeholder marks days that belong to the previous or next month and
	// only pad the grid to full weeks.
	Placeholder bool
}

// Day returns the day of month shown in the cell.
func (c Cell) Day() int { return c.Date.Day() }

// Month is the computed layout for one reference month.
type Month struct {
	// First is midnight of the first day of the month.
	First time.Time

	Leading  []time.Time
	Days     []time.Time
	Trailing []time.Time
}

// Build computes the grid for the month containing now.
func Build(now time.Time) Month {
	first := FirstOfMonth(now)
	last := LastOfMonth(now)

	m := Month{
		First: first,
		Days:  eachDay(first, last),
	}

	lead := LeadingCount(first)
	prevLast := first.AddDate(0, 0, -1)
	m.Leading = make([]time.Time, 0, lead)
	for i := lead - 1; i >= 0; i-- {
		m.Leading = append(m.Leading, prevLast.AddDate(0, 0, -i))
	}

	trail := TrailingCount(last)
	nextFirst := last.AddDate(0, 0, 1)
	m.Trailing = make([]time.Time, 0, trail)
	for i := 0; i < trail; i++ {
		m.Trailing = append(m.Trailing, nextFirst.AddDate(0, 0, i))
	}
	return m
}

// Cells returns the leading placeholders, the month days and the trailing
// placeholders in display order.
func (m Month) Cells() []Cell {
	cells := make([]Cell, 0, len(m.Leading)+len(m.Days)+len(m.Trailing))
	for _, d := range m.Leading {
		cells = append(cells, Cell{Date: d, Placeholder: true})
	}
	for _, d := range m.Days {
		cells = append(cells, Cell{Date: d})
	}
	for _, d := range m.Trailing {
		cells = append(cells, Cell{Date: d, Placeholder: true})
	}
	return cells
}

// Weeks groups Cells into rows of seven.
func (m Month) Weeks() [][]Cell {
	cells := m.Cells()
	weeks := make([][]Cell, 0, len(cells)/7)
	for i := 0; i+7 <= len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

// Title renders the month heading, e.g. "October 2026".
func (m Month) Title() string {
	return m.First.Format("January 2006")
}

// WeekdayIndex maps a weekday to its Monday-first column (Monday=0, Sunday=6).
func WeekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// LeadingCount is the number of previous-month cells before first.
func LeadingCount(first time.Time) int {
	return WeekdayIndex(first.Weekday())
}

// TrailingCount is the number of next-month cells after last.
func TrailingCount(last time.Time) int {
	return 7 - WeekdayIndex(last.Weekday()) - 1
}

// FirstOfMonth returns midnight of the first day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// LastOfMonth returns midnight of the last day of t's month.
func LastOfMonth(t time.Time) time.Time {
	return FirstOfMonth(t).AddDate(0, 1, -1)
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	return LastOfMonth(month).Day()
}

// AddMonths steps n months from the first of t's month, so stepping from the
// 31st never skips a shorter month.
func AddMonths(t time.Time, n int) time.Time {
	return FirstOfMonth(t).AddDate(0, n, 0)
}

// Midnight truncates t to the start of its local calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay compares two times by (year, month, day).
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseMonth accepts "2006-01" or "January 2006".
func ParseMonth(name string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{"2006-01", "January 2006", "Jan 2006"} {
		if t, err := time.ParseInLocation(layout, name, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func eachDay(first, last time.Time) []time.Time {
	days := make([]time.Time, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
