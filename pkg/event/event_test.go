package event

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestDateSameDayIgnoresTimeOfDay(t *testing.T) {
	d := Date{Time: time.Date(2026, time.October, 16, 23, 59, 0, 0, time.Local)}
	if !d.SameDay(time.Date(2026, time.October, 16, 0, 0, 1, 0, time.Local)) {
		t.Fatalf("expected same day")
	}
	if d.SameDay(time.Date(2026, time.October, 17, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("expected different day")
	}
	if d.SameDay(time.Date(2025, time.October, 16, 12, 0, 0, 0, time.Local)) {
		t.Fatalf("expected different year to differ")
	}
}

func TestDateJSON(t *testing.T) {
	e := New("deadline", time.Date(2026, time.October, 14, 9, 30, 0, 0, time.Local), "default")
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"date":"2026-10-14"`) {
		t.Fatalf("expected a YYYY-MM-DD date, got %s", b)
	}
	var got Event
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Date.String() != "2026-10-14" {
		t.Fatalf("expected day precision date, got %q", got.Date.String())
	}
	if got.ID != e.ID || got.Title != "deadline" || got.GroupName != "default" {
		t.Fatalf("unexpected event %+v", got)
	}
}

func TestDateDecodesISODay(t *testing.T) {
	var got Event
	if err := json.Unmarshal([]byte(`{"id":"a","title":"x","date":"2026-10-14","group":"work"}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Date.Equal(time.Date(2026, time.October, 14, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("unexpected date %s", got.Date.Time)
	}
	if err := json.Unmarshal([]byte(`{"date":"2026-10-14T00:00:00Z"}`), &got); err == nil {
		t.Fatalf("expected an error for a timestamp")
	}
	var empty Event
	if err := json.Unmarshal([]byte(`{"date":""}`), &empty); err != nil || !empty.Date.IsZero() {
		t.Fatalf("expected zero date, got %v %v", empty.Date, err)
	}
}

func TestNewAssignsDistinctIDs(t *testing.T) {
	a := New("x", time.Now(), "default")
	b := New("x", time.Now(), "default")
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct ids, got %q and %q", a.ID, b.ID)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := New("x", time.Now(), "default")
	b := a.Clone()
	b.Title = "y"
	if a.Title != "x" {
		t.Fatalf("clone shares state")
	}
}
