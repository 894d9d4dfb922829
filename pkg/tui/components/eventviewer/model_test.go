package eventviewer

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"tableflip.dev/evcal/pkg/app"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string { return ansiPattern.ReplaceAllString(s, "") }

func TestFromChange(t *testing.T) {
	e := FromChange(app.Change{Kind: app.KindGroup, Action: app.ActionDelete, ID: "work"})
	if e.Summary != "group delete" || e.Detail != "work" || e.Level != LevelWarn {
		t.Fatalf("unexpected entry %+v", e)
	}
	e = FromChange(app.Change{Kind: app.KindEvent, Action: app.ActionCreate, ID: "abc"})
	if e.Level != LevelInfo || e.Source != "calendar" {
		t.Fatalf("unexpected entry %+v", e)
	}
}

func TestAppendNewestFirstAndCapped(t *testing.T) {
	m := New(2)
	m.SetSize(60, 8)
	at := time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)
	for _, s := range []string{"one", "two", "three"} {
		m.Append(Entry{Timestamp: at, Summary: s})
	}
	got := m.Entries()
	if len(got) != 2 || got[0].Summary != "three" || got[1].Summary != "two" {
		t.Fatalf("unexpected entries %+v", got)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "Activity") || !strings.Contains(view, "09:00:00 [tea] three") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestEmptyView(t *testing.T) {
	m := New(0)
	if m.View() != "" {
		t.Fatalf("expected empty view before sizing")
	}
	m.SetSize(40, 5)
	if !strings.Contains(stripANSI(m.View()), "Nothing yet") {
		t.Fatalf("expected placeholder, got:\n%s", m.View())
	}
	m.Append(Entry{Summary: "x"})
	m.Clear()
	if len(m.Entries()) != 0 {
		t.Fatalf("expected cleared log")
	}
}
