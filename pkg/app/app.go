package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/evcal/pkg/event"
	"tableflip.dev/evcal/pkg/grid"
	"tableflip.dev/evcal/pkg/group"
	"tableflip.dev/evcal/pkg/log"
	"tableflip.dev/evcal/pkg/quick"
)

var (
	ErrEventNotFound  = errors.New("app: event not found")
	ErrGroupNotFound  = errors.New("app: group not found")
	ErrGroupExists    = errors.New("app: group already exists")
	ErrGroupNameEmpty = errors.New("app: group name is empty")
	ErrDefaultGroup   = errors.New("app: the default group cannot be deleted")
)

// OrphanPolicy decides what happens to events whose group is deleted.
type OrphanPolicy string

const (
	// OrphanHide keeps the events; they are hidden because their group
	// cannot be found.
	OrphanHide OrphanPolicy = "hide"
	// OrphanReassign moves the events to the default group.
	OrphanReassign OrphanPolicy = "reassign"
	// OrphanDelete removes the events together with the group.
	OrphanDelete OrphanPolicy = "delete"
)

// ParseOrphanPolicy validates a configured policy name.
func ParseOrphanPolicy(s string) (OrphanPolicy, error) {
	switch p := OrphanPolicy(s); p {
	case OrphanHide, OrphanReassign, OrphanDelete:
		return p, nil
	case "":
		return OrphanHide, nil
	}
	return OrphanHide, fmt.Errorf("app: unknown orphan policy %q", s)
}

// Options configures a Calendar.
type Options struct {
	// Groups seeds the group list. The default group is added when missing.
	Groups        []group.Group
	Orphans       OrphanPolicy
	FallbackColor string
	// Now is the clock used for quick-create; time.Now when nil.
	Now func() time.Time
}

// Calendar is the in-memory application state: an ordered list of events and
// an ordered list of groups. Every mutation notifies subscribers once the
// state is consistent again.
type Calendar struct {
	mu       sync.RWMutex
	events   []*event.Event
	groups   []group.Group
	orphans  OrphanPolicy
	fallback string
	now      func() time.Time

	obsMu     sync.Mutex
	observers map[int]func(Change)
	nextObs   int
}

// New creates a calendar holding only the seeded groups.
func New(opts Options) *Calendar {
	c := &Calendar{
		orphans:   opts.Orphans,
		fallback:  opts.FallbackColor,
		now:       opts.Now,
		observers: make(map[int]func(Change)),
	}
	if c.orphans == "" {
		c.orphans = OrphanHide
	}
	if c.fallback == "" {
		c.fallback = group.FallbackColor
	}
	if c.now == nil {
		c.now = time.Now
	}

	seen := make(map[string]bool)
	for _, g := range opts.Groups {
		g.Name = group.Normalize(g.Name)
		if g.Name == "" || seen[g.Name] {
			continue
		}
		seen[g.Name] = true
		c.groups = append(c.groups, g)
	}
	if !seen[group.Default] {
		def := group.Group{Name: group.Default, Color: group.DefaultColor, Visible: true}
		c.groups = append([]group.Group{def}, c.groups...)
	}
	return c
}

// Now returns the calendar's clock reading.
func (c *Calendar) Now() time.Time { return c.now() }

// FallbackColor is the color used for events without a group.
func (c *Calendar) FallbackColor() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fallback
}

// SetFallbackColor changes the color of events whose group is missing.
func (c *Calendar) SetFallbackColor(color string) {
	c.mu.Lock()
	c.fallback = color
	c.mu.Unlock()

	c.notify(Change{Kind: KindGroup, Action: ActionUpdate})
}

// Subscribe registers fn for change notifications and returns a function
// that removes it again.
func (c *Calendar) Subscribe(fn func(Change)) func() {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	return func() {
		c.obsMu.Lock()
		defer c.obsMu.Unlock()
		delete(c.observers, id)
	}
}

func (c *Calendar) notify(ch Change) {
	c.obsMu.Lock()
	fns := make([]func(Change), 0, len(c.observers))
	for i := 0; i < c.nextObs; i++ {
		if fn, ok := c.observers[i]; ok {
			fns = append(fns, fn)
		}
	}
	c.obsMu.Unlock()

	log.Debug("calendar changed", "change", ch.Describe())
	for _, fn := range fns {
		fn(ch)
	}
}

// --- events

// Events returns copies of all events in insertion order.
func (c *Calendar) Events() []*event.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*event.Event, 0, len(c.events))
	for _, e := range c.events {
		out = append(out, e.Clone())
	}
	return out
}

// Event looks up a single event by ID.
func (c *Calendar) Event(id string) (*event.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.eventIndex(id); i >= 0 {
		return c.events[i].Clone(), true
	}
	return nil, false
}

// EventsOn returns the visible events on day, in insertion order.
func (c *Calendar) EventsOn(day time.Time) []*event.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []*event.Event
	for _, e := range c.events {
		if e.Date.SameDay(day) && c.visibleLocked(e) {
			out = append(out, e.Clone())
		}
	}
	return out
}

// EventsIn returns the visible events that fall in the grid of month,
// placeholder days included, keyed by ISO date.
func (c *Calendar) EventsIn(month grid.Month) map[string][]*event.Event {
	out := make(map[string][]*event.Event)
	cells := month.Cells()
	if len(cells) == 0 {
		return out
	}
	from, to := cells[0].Date, cells[len(cells)-1].Date

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.events {
		d := grid.Midnight(e.Date.Time)
		if d.Before(from) || d.After(to) || !c.visibleLocked(e) {
			continue
		}
		key := e.Date.String()
		out[key] = append(out[key], e.Clone())
	}
	return out
}

// AddEvent appends e. An empty group name files it under the default group.
func (c *Calendar) AddEvent(e *event.Event) (*event.Event, error) {
	if e == nil {
		return nil, errors.New("app: nil event")
	}
	cp := e.Clone()
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	if cp.GroupName == "" {
		cp.GroupName = group.Default
	}
	cp.Date.Time = grid.Midnight(cp.Date.Time)

	c.mu.Lock()
	c.events = append(c.events, cp)
	c.mu.Unlock()

	c.notify(Change{Kind: KindEvent, Action: ActionCreate, ID: cp.ID})
	return cp.Clone(), nil
}

// QuickCreate parses line against the calendar clock and appends the event.
// On error the state is unchanged.
func (c *Calendar) QuickCreate(line string) (*event.Event, error) {
	cmd, err := quick.Parse(line, c.now())
	if err != nil {
		log.Debug("quick create rejected", "input", line, "reason", err)
		return nil, err
	}
	if _, ok := c.Group(cmd.Group); !ok {
		log.Debug("quick create references unknown group", "group", cmd.Group)
	}
	return c.AddEvent(cmd.Event())
}

// UpdateEvent replaces the title, date and group of the event with e.ID.
func (c *Calendar) UpdateEvent(e *event.Event) (*event.Event, error) {
	if e == nil {
		return nil, errors.New("app: nil event")
	}
	c.mu.Lock()
	i := c.eventIndex(e.ID)
	if i < 0 {
		c.mu.Unlock()
		return nil, ErrEventNotFound
	}
	cp := e.Clone()
	if cp.GroupName == "" {
		cp.GroupName = group.Default
	}
	cp.Date.Time = grid.Midnight(cp.Date.Time)
	c.events[i] = cp
	c.mu.Unlock()

	c.notify(Change{Kind: KindEvent, Action: ActionUpdate, ID: cp.ID})
	return cp.Clone(), nil
}

// DeleteEvent removes the event with id.
func (c *Calendar) DeleteEvent(id string) error {
	c.mu.Lock()
	i := c.eventIndex(id)
	if i < 0 {
		c.mu.Unlock()
		return ErrEventNotFound
	}
	c.events = append(c.events[:i], c.events[i+1:]...)
	c.mu.Unlock()

	c.notify(Change{Kind: KindEvent, Action: ActionDelete, ID: id})
	return nil
}

// Visible reports whether e is shown: its group must exist and be visible.
func (c *Calendar) Visible(e *event.Event) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.visibleLocked(e)
}

// ColorFor returns the color of e's group, or the fallback color when the
// group no longer exists.
func (c *Calendar) ColorFor(e *event.Event) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.groupIndex(e.GroupName); i >= 0 {
		return c.groups[i].Color
	}
	return c.fallback
}

func (c *Calendar) visibleLocked(e *event.Event) bool {
	i := c.groupIndex(e.GroupName)
	return i >= 0 && c.groups[i].Visible
}

func (c *Calendar) eventIndex(id string) int {
	for i, e := range c.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}
