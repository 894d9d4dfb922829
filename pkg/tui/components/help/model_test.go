package help

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/evcal/pkg/group"
)

func TestHelpRendersGuide(t *testing.T) {
	m := New(80, 60)
	if m.Err() != nil {
		t.Fatalf("unexpected render error: %v", m.Err())
	}
	view := ansiPattern.ReplaceAllString(m.View(), "")
	for _, want := range []string{"Quick create", "birthday party", "next month"} {
		if !strings.Contains(view, want) {
			t.Fatalf("help view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Your groups") {
		t.Fatalf("legend should be absent without groups")
	}
}

func TestHelpGroupLegend(t *testing.T) {
	m := New(80, 200)
	m.SetGroups([]group.Group{
		{Name: "default", Color: "#ffffff", Visible: true},
		{Name: "travel", Color: "#ff8c42", Visible: false},
	})
	view := ansiPattern.ReplaceAllString(m.View(), "")
	for _, want := range []string{"Your groups", "travel", "#ff8c42"} {
		if !strings.Contains(view, want) {
			t.Fatalf("legend missing %q:\n%s", want, view)
		}
	}
}

func TestHelpMinimumSize(t *testing.T) {
	m := New(1, 1)
	if m.width != minWidth || m.height != minHeight {
		t.Fatalf("expected minimum size, got %dx%d", m.width, m.height)
	}
}

func TestHelpJumpKeys(t *testing.T) {
	m := New(40, 10)
	m, _ = m.Update(tea.KeyPressMsg{Text: "G", Code: 'G'})
	if !m.viewport.AtBottom() || m.viewport.AtTop() {
		t.Fatalf("expected G to scroll to the bottom")
	}
	m, _ = m.Update(tea.KeyPressMsg{Text: "g", Code: 'g'})
	if !m.viewport.AtTop() {
		t.Fatalf("expected g to return to the top")
	}
}
