package event

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const layoutISO = "2006-01-02"

// New creates an event on the calendar day of date with a fresh ID.
func New(title string, date time.Time, groupName string) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Title:     title,
		Date:      Date{Time: date},
		GroupName: groupName,
	}
}

// Event is a single titled entry on a calendar day. GroupName is a soft
// reference to group.Group.Name and may dangle.
type Event struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Date      Date   `json:"date" yaml:"date"`
	GroupName string `json:"group" yaml:"group"`
}

// Clone returns a copy that can be handed out without sharing state.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}

func (e *Event) Row() (string, string, string) {
	return e.Date.String(), "#" + e.GroupName, e.Title
}

func (e *Event) String() string {
	return fmt.Sprintf("%s  %s  #%s", e.Date.String(), e.Title, e.GroupName)
}

// ParseDate parses a YYYY-MM-DD string in the local time zone.
func ParseDate(v string) (time.Time, error) {
	return time.ParseInLocation(layoutISO, v, time.Local)
}

// Date is a day-precision calendar date.
type Date struct {
	time.Time
}

// SameDay compares by (year, month, day), ignoring time of day.
func (d Date) SameDay(then time.Time) bool {
	y, m, day := d.Date()
	ty, tm, tday := then.Date()
	return y == ty && m == tm && day == tday
}

func (d Date) SameMonth(then time.Time) bool {
	return d.Month() == then.Month() && d.Year() == then.Year()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(layoutISO)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalJSON shadows time.Time's RFC 3339 encoding.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		d.Time = time.Time{}
		return nil
	}
	t, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
