// Package groups renders the group sidebar.
package groups

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/evcal/pkg/group"
	"tableflip.dev/evcal/pkg/tui/theme"
)

// Model is a cursor over the group list.
type Model struct {
	groups  []group.Group
	cursor  int
	focused bool
	theme   theme.SidebarTheme
}

func New(th theme.SidebarTheme) *Model {
	return &Model{theme: th}
}

// SetGroups replaces the list, keeping the cursor on the same name when
// possible.
func (m *Model) SetGroups(gs []group.Group) {
	prev := m.Selected()
	m.groups = gs
	m.cursor = 0
	for i, g := range gs {
		if g.Name == prev.Name {
			m.cursor = i
			break
		}
	}
}

// Selected returns the group under the cursor.
func (m *Model) Selected() group.Group {
	if m.cursor < 0 || m.cursor >= len(m.groups) {
		return group.Group{}
	}
	return m.groups[m.cursor]
}

func (m *Model) Focus()        { m.focused = true }
func (m *Model) Blur()         { m.focused = false }
func (m *Model) Focused() bool { return m.focused }

func (m *Model) Up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) Down() {
	if m.cursor < len(m.groups)-1 {
		m.cursor++
	}
}

// Width is the outer width the sidebar wants for the current groups.
func (m *Model) Width() int {
	w := len("Groups")
	for _, g := range m.groups {
		if n := len(g.Name) + 6; n > w {
			w = n
		}
	}
	if w > 24 {
		w = 24
	}
	return w + m.theme.Frame.GetHorizontalFrameSize()
}

// View renders the framed list at the given outer size.
func (m *Model) View(width, height int) string {
	frame := m.theme.Frame
	if m.focused {
		frame = m.theme.Focused
	}
	inner := width - frame.GetHorizontalFrameSize()
	if inner < 4 {
		inner = 4
	}

	lines := []string{m.theme.Title.Render("Groups")}
	for i, g := range m.groups {
		mark := "[x]"
		if !g.Visible {
			mark = "[ ]"
		}
		swatch := m.theme.Swatch.Foreground(swatchColor(g.Color)).Render("●")
		name := truncate.StringWithTail(g.Name, uint(max(inner-6, 1)), "…")

		style := m.theme.Item
		if !g.Visible {
			style = m.theme.Hidden
		}
		if m.focused && i == m.cursor {
			style = m.theme.Active
		}
		lines = append(lines, mark+" "+swatch+" "+style.Render(name))
	}

	body := strings.Join(lines, "\n")
	h := height - frame.GetVerticalFrameSize()
	if h < len(lines) {
		h = len(lines)
	}
	return frame.Width(width).Height(h).Render(body)
}

func swatchColor(c string) color.Color {
	hex, err := group.NormalizeColor(c)
	if err != nil {
		hex, _ = group.NormalizeColor(group.FallbackColor)
	}
	return lipgloss.Color(hex)
}
