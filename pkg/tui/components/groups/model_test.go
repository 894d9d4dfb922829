package groups

import (
	"regexp"
	"strings"
	"testing"

	"tableflip.dev/evcal/pkg/group"
	"tableflip.dev/evcal/pkg/tui/theme"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func sample() []group.Group {
	return []group.Group{
		{Name: "default", Color: group.DefaultColor, Visible: true},
		{Name: "work", Color: "#ff0000", Visible: false},
		{Name: "personal", Color: "#00ff00", Visible: true},
	}
}

func TestCursorFollowsName(t *testing.T) {
	m := New(theme.Default().Sidebar)
	m.SetGroups(sample())
	m.Down()
	m.Down()
	m.Down()
	if got := m.Selected().Name; got != "personal" {
		t.Fatalf("expected cursor clamped on personal, got %q", got)
	}

	m.SetGroups(sample()[1:])
	if got := m.Selected().Name; got != "personal" {
		t.Fatalf("expected cursor to stay on personal, got %q", got)
	}

	m.SetGroups(sample()[:1])
	if got := m.Selected().Name; got != "default" {
		t.Fatalf("expected cursor reset to first group, got %q", got)
	}
	m.Up()
	if got := m.Selected().Name; got != "default" {
		t.Fatalf("expected cursor to stay at top, got %q", got)
	}
}

func TestViewMarksVisibility(t *testing.T) {
	m := New(theme.Default().Sidebar)
	m.SetGroups(sample())
	view := stripANSI(m.View(m.Width(), 10))
	for _, want := range []string{"Groups", "[x] ● default", "[ ] ● work", "[x] ● personal"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in:\n%s", want, view)
		}
	}
}
