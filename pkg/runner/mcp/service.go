package mcp

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/event"
	"tableflip.dev/evcal/pkg/grid"
	"tableflip.dev/evcal/pkg/group"
)

// EventDTO is the wire shape of an event.
type EventDTO struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Group   string `json:"group"`
	Color   string `json:"color"`
	Visible bool   `json:"visible"`
}

// CellDTO is one grid cell with its visible events.
type CellDTO struct {
	Date        string     `json:"date"`
	Day         int        `json:"day"`
	Placeholder bool       `json:"placeholder"`
	Events      []EventDTO `json:"events,omitempty"`
}

// MonthDTO is a rendered month grid.
type MonthDTO struct {
	Month    string      `json:"month"`
	Weekdays []string    `json:"weekdays"`
	Leading  int         `json:"leading"`
	Trailing int         `json:"trailing"`
	Weeks    [][]CellDTO `json:"weeks"`
}

// Service adapts the calendar state to MCP payloads.
type Service struct {
	cal *app.Calendar
}

// NewService wraps cal.
func NewService(cal *app.Calendar) *Service {
	return &Service{cal: cal}
}

func (s *Service) toDTO(e *event.Event) EventDTO {
	return EventDTO{
		ID:      e.ID,
		Title:   e.Title,
		Date:    e.Date.String(),
		Group:   e.GroupName,
		Color:   s.cal.ColorFor(e),
		Visible: s.cal.Visible(e),
	}
}

// QuickCreate runs a quick-create command.
func (s *Service) QuickCreate(command string) (EventDTO, error) {
	e, err := s.cal.QuickCreate(command)
	if err != nil {
		return EventDTO{}, err
	}
	return s.toDTO(e), nil
}

// ListEvents returns events, optionally limited to one day (YYYY-MM-DD).
// Hidden events are only included when includeHidden is set.
func (s *Service) ListEvents(date string, includeHidden bool) ([]EventDTO, error) {
	var events []*event.Event
	if strings.TrimSpace(date) != "" {
		day, err := event.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", date, err)
		}
		for _, e := range s.cal.Events() {
			if e.Date.SameDay(day) {
				events = append(events, e)
			}
		}
	} else {
		events = s.cal.Events()
	}

	out := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dto := s.toDTO(e)
		if !dto.Visible && !includeHidden {
			continue
		}
		out = append(out, dto)
	}
	return out, nil
}

// DeleteEvent removes an event by id.
func (s *Service) DeleteEvent(id string) error {
	return s.cal.DeleteEvent(id)
}

// UpdateEvent changes any of title, date and group of an event.
func (s *Service) UpdateEvent(id, title, date, groupName string) (EventDTO, error) {
	e, ok := s.cal.Event(id)
	if !ok {
		return EventDTO{}, app.ErrEventNotFound
	}
	if title != "" {
		e.Title = title
	}
	if date != "" {
		day, err := event.ParseDate(date)
		if err != nil {
			return EventDTO{}, fmt.Errorf("invalid date %q: %w", date, err)
		}
		e.Date.Time = day
	}
	if groupName != "" {
		e.GroupName = groupName
	}
	updated, err := s.cal.UpdateEvent(e)
	if err != nil {
		return EventDTO{}, err
	}
	return s.toDTO(updated), nil
}

// Month builds the grid for month ("YYYY-MM"); empty means the current month.
func (s *Service) Month(month string) (MonthDTO, error) {
	ref := s.cal.Now()
	if strings.TrimSpace(month) != "" {
		t, ok := grid.ParseMonth(month, ref.Location())
		if !ok {
			return MonthDTO{}, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
		}
		ref = t
	}

	m := grid.Build(ref)
	byDay := s.cal.EventsIn(m)
	dto := MonthDTO{
		Month:    m.Title(),
		Weekdays: grid.Weekdays,
		Leading:  len(m.Leading),
		Trailing: len(m.Trailing),
	}
	for _, week := range m.Weeks() {
		row := make([]CellDTO, 0, len(week))
		for _, c := range week {
			key := event.Date{Time: c.Date}.String()
			cell := CellDTO{Date: key, Day: c.Day(), Placeholder: c.Placeholder}
			for _, e := range byDay[key] {
				cell.Events = append(cell.Events, s.toDTO(e))
			}
			row = append(row, cell)
		}
		dto.Weeks = append(dto.Weeks, row)
	}
	return dto, nil
}

// Groups lists all groups.
func (s *Service) Groups() []group.Group {
	return s.cal.Groups()
}

// AddGroup creates a group.
func (s *Service) AddGroup(name, color string) (group.Group, error) {
	return s.cal.AddGroup(name, color)
}

// DeleteGroup removes a group.
func (s *Service) DeleteGroup(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("group name is required")
	}
	return s.cal.DeleteGroup(name)
}

// ToggleGroup flips a group's visibility.
func (s *Service) ToggleGroup(name string) (group.Group, error) {
	if _, err := s.cal.ToggleGroup(name); err != nil {
		return group.Group{}, err
	}
	g, _ := s.cal.Group(name)
	return g, nil
}

// SetGroupColor changes a group's color.
func (s *Service) SetGroupColor(name, color string) (group.Group, error) {
	if err := s.cal.SetGroupColor(name, color); err != nil {
		return group.Group{}, err
	}
	g, _ := s.cal.Group(name)
	return g, nil
}
