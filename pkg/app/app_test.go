package app

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/evcal/pkg/event"
	"tableflip.dev/evcal/pkg/grid"
	"tableflip.dev/evcal/pkg/group"
	"tableflip.dev/evcal/pkg/quick"
)

var testNow = time.Date(2026, time.October, 16, 10, 0, 0, 0, time.Local)

func newTestCalendar(opts Options) *Calendar {
	if opts.Now == nil {
		opts.Now = func() time.Time { return testNow }
	}
	return New(opts)
}

func TestNewSeedsDefaultGroup(t *testing.T) {
	c := newTestCalendar(Options{})
	gs := c.Groups()
	if len(gs) != 1 || gs[0].Name != group.Default || !gs[0].Visible {
		t.Fatalf("expected only a visible default group, got %+v", gs)
	}

	c = newTestCalendar(Options{Groups: []group.Group{
		{Name: "work", Color: "#ff0000", Visible: true},
		{Name: "wo rk", Color: "#00ff00", Visible: true},
	}})
	gs = c.Groups()
	if len(gs) != 2 || gs[0].Name != group.Default || gs[1].Name != "work" {
		t.Fatalf("unexpected seeded groups %+v", gs)
	}
}

func TestQuickCreate(t *testing.T) {
	c := newTestCalendar(Options{})
	var changes []Change
	c.Subscribe(func(ch Change) { changes = append(changes, ch) })

	e, err := c.QuickCreate("tom birthday party #personal")
	if err != nil {
		t.Fatalf("quick create: %v", err)
	}
	if e.Title != "birthday party" || e.GroupName != "personal" {
		t.Fatalf("unexpected event %+v", e)
	}
	if !e.Date.SameDay(testNow.AddDate(0, 0, 1)) {
		t.Fatalf("expected tomorrow, got %s", e.Date)
	}
	if len(changes) != 1 || changes[0].Kind != KindEvent || changes[0].Action != ActionCreate {
		t.Fatalf("expected one create notification, got %+v", changes)
	}

	if _, err := c.QuickCreate("onlyone"); !errors.Is(err, quick.ErrTooFewTokens) {
		t.Fatalf("expected ErrTooFewTokens, got %v", err)
	}
	if _, err := c.QuickCreate("whenever party"); !errors.Is(err, quick.ErrDateNotSpecified) {
		t.Fatalf("expected ErrDateNotSpecified, got %v", err)
	}
	if got := len(c.Events()); got != 1 {
		t.Fatalf("failed commands must not add events, have %d", got)
	}
	if len(changes) != 1 {
		t.Fatalf("failed commands must not notify, got %+v", changes)
	}
}

func TestDuplicateEventsAllowed(t *testing.T) {
	c := newTestCalendar(Options{})
	for i := 0; i < 2; i++ {
		if _, err := c.QuickCreate("tod same thing"); err != nil {
			t.Fatalf("quick create: %v", err)
		}
	}
	evs := c.EventsOn(testNow)
	if len(evs) != 2 {
		t.Fatalf("expected duplicates, got %d", len(evs))
	}
	if evs[0].ID == evs[1].ID {
		t.Fatalf("duplicates should still have distinct ids")
	}
}

func TestUpdateAndDeleteEvent(t *testing.T) {
	c := newTestCalendar(Options{})
	e, err := c.AddEvent(event.New("draft", testNow, ""))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.GroupName != group.Default {
		t.Fatalf("empty group should become default, got %q", e.GroupName)
	}

	e.Title = "final"
	e.Date.Time = testNow.AddDate(0, 0, 3)
	if _, err := c.UpdateEvent(e); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, ok := c.Event(e.ID)
	if !ok || got.Title != "final" || !got.Date.SameDay(testNow.AddDate(0, 0, 3)) {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := c.DeleteEvent(e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := c.DeleteEvent(e.ID); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
	if _, err := c.UpdateEvent(e); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventsAreCopies(t *testing.T) {
	c := newTestCalendar(Options{})
	e, _ := c.AddEvent(event.New("a", testNow, ""))
	e.Title = "mutated"
	if got, _ := c.Event(e.ID); got.Title != "a" {
		t.Fatalf("caller mutation leaked into state")
	}
}

func TestAddGroup(t *testing.T) {
	c := newTestCalendar(Options{})

	g, err := c.AddGroup("  my work ", "")
	if err != nil {
		t.Fatalf("add group: %v", err)
	}
	if g.Name != "mywork" || g.Color != group.NewGroupColor || !g.Visible {
		t.Fatalf("unexpected group %+v", g)
	}
	if _, err := c.AddGroup("my work", "#000000"); !errors.Is(err, ErrGroupExists) {
		t.Fatalf("expected ErrGroupExists, got %v", err)
	}
	if _, err := c.AddGroup("default", ""); !errors.Is(err, ErrGroupExists) {
		t.Fatalf("expected ErrGroupExists for default, got %v", err)
	}
	if _, err := c.AddGroup(" \t ", ""); !errors.Is(err, ErrGroupNameEmpty) {
		t.Fatalf("expected ErrGroupNameEmpty, got %v", err)
	}
	if _, err := c.AddGroup("x", "nope"); !errors.Is(err, group.ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
	if got := len(c.Groups()); got != 2 {
		t.Fatalf("expected 2 groups, got %d", got)
	}
}

func TestDeleteDefaultGroupRejected(t *testing.T) {
	c := newTestCalendar(Options{})
	if err := c.DeleteGroup(group.Default); !errors.Is(err, ErrDefaultGroup) {
		t.Fatalf("expected ErrDefaultGroup, got %v", err)
	}
	if _, ok := c.Group(group.Default); !ok {
		t.Fatalf("default group must survive")
	}
	if err := c.DeleteGroup("missing"); !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestDeleteGroupOrphanPolicies(t *testing.T) {
	tests := []struct {
		policy      OrphanPolicy
		wantEvents  int
		wantVisible int
		wantGroup   string
	}{
		{policy: OrphanHide, wantEvents: 2, wantVisible: 1, wantGroup: "work"},
		{policy: OrphanReassign, wantEvents: 2, wantVisible: 2, wantGroup: group.Default},
		{policy: OrphanDelete, wantEvents: 1, wantVisible: 1, wantGroup: ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			c := newTestCalendar(Options{Orphans: tt.policy})
			if _, err := c.AddGroup("work", "#ff0000"); err != nil {
				t.Fatalf("add group: %v", err)
			}
			w, _ := c.QuickCreate("tod standup #work")
			if _, err := c.QuickCreate("tod lunch"); err != nil {
				t.Fatalf("quick create: %v", err)
			}

			if err := c.DeleteGroup("work"); err != nil {
				t.Fatalf("delete group: %v", err)
			}
			if got := len(c.Events()); got != tt.wantEvents {
				t.Fatalf("events = %d, want %d", got, tt.wantEvents)
			}
			if got := len(c.EventsOn(testNow)); got != tt.wantVisible {
				t.Fatalf("visible = %d, want %d", got, tt.wantVisible)
			}
			got, ok := c.Event(w.ID)
			if tt.wantGroup == "" {
				if ok {
					t.Fatalf("expected orphan to be deleted")
				}
				return
			}
			if !ok || got.GroupName != tt.wantGroup {
				t.Fatalf("orphan group = %+v, want %q", got, tt.wantGroup)
			}
		})
	}
}

func TestOrphanColorFallsBack(t *testing.T) {
	c := newTestCalendar(Options{})
	e, _ := c.QuickCreate("tod thing #gone")
	if c.Visible(e) {
		t.Fatalf("event with unknown group should be hidden")
	}
	if got := c.ColorFor(e); got != group.FallbackColor {
		t.Fatalf("expected fallback color, got %q", got)
	}
	if _, err := c.AddGroup("gone", "#123456"); err != nil {
		t.Fatalf("add group: %v", err)
	}
	if !c.Visible(e) || c.ColorFor(e) != "#123456" {
		t.Fatalf("event should reattach once the group exists")
	}

	orphan, _ := c.QuickCreate("tod other #elsewhere")
	c.SetFallbackColor("#999999")
	if got := c.ColorFor(orphan); got != "#999999" {
		t.Fatalf("expected changed fallback color, got %q", got)
	}
}

func TestToggleGroupHidesEvents(t *testing.T) {
	c := newTestCalendar(Options{})
	if _, err := c.QuickCreate("tod a"); err != nil {
		t.Fatalf("quick create: %v", err)
	}
	visible, err := c.ToggleGroup(group.Default)
	if err != nil || visible {
		t.Fatalf("toggle: visible=%v err=%v", visible, err)
	}
	if got := len(c.EventsOn(testNow)); got != 0 {
		t.Fatalf("hidden group leaked %d events", got)
	}
	if _, err := c.ToggleGroup(group.Default); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := len(c.EventsOn(testNow)); got != 1 {
		t.Fatalf("expected event back, got %d", got)
	}
	if _, err := c.ToggleGroup("nope"); !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestSetGroupColor(t *testing.T) {
	c := newTestCalendar(Options{})
	if err := c.SetGroupColor(group.Default, "#ABCDEF"); err != nil {
		t.Fatalf("set color: %v", err)
	}
	g, _ := c.Group(group.Default)
	if g.Color != "#abcdef" {
		t.Fatalf("color = %q", g.Color)
	}
	if err := c.SetGroupColor(group.Default, "??"); !errors.Is(err, group.ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
}

func TestEventsInIncludesPlaceholderDays(t *testing.T) {
	c := newTestCalendar(Options{})
	month := grid.Build(testNow)
	// September 28th is a leading placeholder of October 2026.
	if _, err := c.AddEvent(event.New("early", time.Date(2026, time.September, 28, 0, 0, 0, 0, time.Local), "")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := c.AddEvent(event.New("far", time.Date(2026, time.December, 1, 0, 0, 0, 0, time.Local), "")); err != nil {
		t.Fatalf("add: %v", err)
	}
	got := c.EventsIn(month)
	if len(got["2026-09-28"]) != 1 {
		t.Fatalf("expected placeholder event, got %v", got)
	}
	if len(got) != 1 {
		t.Fatalf("events outside the grid leaked: %v", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	c := newTestCalendar(Options{})
	calls := 0
	stop := c.Subscribe(func(Change) { calls++ })
	_, _ = c.AddGroup("a", "")
	stop()
	_, _ = c.AddGroup("b", "")
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestParseOrphanPolicy(t *testing.T) {
	if p, err := ParseOrphanPolicy(""); err != nil || p != OrphanHide {
		t.Fatalf("empty policy: %v %v", p, err)
	}
	if _, err := ParseOrphanPolicy("archive"); err == nil {
		t.Fatalf("expected error")
	}
}
