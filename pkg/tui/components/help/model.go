// Package help renders the keyboard guide overlay.
package help

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/evcal/pkg/group"
)

//go:embed help.md
var guide string

const (
	minWidth  = 32
	minHeight = 8
)

// Model is the key guide in a scrollable, bordered viewport. When groups
// are set, a legend of them is appended to the guide.
type Model struct {
	viewport viewport.Model
	frame    lipgloss.Style

	width  int
	height int
	wrap   int

	groups []group.Group
	err    error
}

// New sizes the overlay to width x height, never below 32x8.
func New(width, height int) *Model {
	vp := viewport.New(viewport.WithWidth(1), viewport.WithHeight(1))
	vp.MouseWheelEnabled = true
	m := &Model{
		viewport: vp,
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	}
	m.SetSize(width, height)
	return m
}

// SetGroups replaces the legend.
func (m *Model) SetGroups(gs []group.Group) {
	m.groups = append([]group.Group(nil), gs...)
	m.render()
}

// Update scrolls; g and G jump to the top and bottom.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	return m.frame.Width(m.width).Height(m.height).Render(m.viewport.View())
}

// Err reports why the guide could not be rendered, if it could not.
func (m *Model) Err() error { return m.err }

// SetSize resizes the overlay and re-wraps the guide when the width changed.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, minWidth)
	m.height = max(height, minHeight)

	wrap := max(m.width-m.frame.GetHorizontalFrameSize(), 1)
	m.viewport.SetWidth(wrap)
	m.viewport.SetHeight(max(m.height-m.frame.GetVerticalFrameSize(), 1))
	if wrap != m.wrap {
		m.wrap = wrap
		m.render()
	}
}

func (m *Model) render() {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(m.wrap, 10)),
	)
	if err == nil {
		var out string
		if out, err = r.Render(m.markdown()); err == nil {
			m.err = nil
			m.viewport.SetContent(ansiPattern.ReplaceAllString(out, ""))
			m.viewport.GotoTop()
			return
		}
	}
	m.err = err
	m.viewport.SetContent("help unavailable: " + err.Error())
}

func (m *Model) markdown() string {
	if len(m.groups) == 0 {
		return strings.TrimSpace(guide)
	}
	var b strings.Builder
	b.WriteString(strings.TrimSpace(guide))
	b.WriteString("\n\n## Your groups\n\n| Group | Color | Shown |\n|---|---|---|\n")
	for _, g := range m.groups {
		shown := "yes"
		if !g.Visible {
			shown = "no"
		}
		fmt.Fprintf(&b, "| %s | `%s` | %s |\n", g.Name, g.Color, shown)
	}
	return b.String()
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)
