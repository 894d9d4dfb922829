// Command testbed renders single TUI components inside a frame so they can be
// iterated on without the full application.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/tui/components/eventviewer"
)

type options struct {
	full   bool
	width  int
	height int
	empty  bool
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Run the TUI testbed harness",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := newTestbedModel(opts, nil)
			return run(&base)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.full, "full", false, "use the full terminal window")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", 80, "window width when not fullscreen")
	rootCmd.PersistentFlags().IntVar(&opts.height, "height", 20, "window height when not fullscreen")
	rootCmd.PersistentFlags().BoolVar(&opts.empty, "empty", false, "start without sample events")

	rootCmd.AddCommand(newCalendarCmd(&opts))
	rootCmd.AddCommand(newGroupsCmd(&opts))
	rootCmd.AddCommand(newDialogCmd(&opts))
	rootCmd.AddCommand(newHelpCmd(&opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// changeMsg carries a calendar notification into the program.
type changeMsg app.Change

// testbedModel draws a bordered frame with an activity log underneath.
// Component harnesses embed it and pass their content to composeView.
type testbedModel struct {
	fullscreen bool
	maxWidth   int
	maxHeight  int

	termWidth  int
	termHeight int

	focused bool
	events  *eventviewer.Model
	changes chan app.Change

	frameWidth  int
	frameHeight int
	innerWidth  int
	innerHeight int
	eventHeight int
	layoutDirty bool
}

func newTestbedModel(opts options, cal *app.Calendar) testbedModel {
	m := testbedModel{
		fullscreen:  opts.full,
		maxWidth:    opts.width,
		maxHeight:   opts.height,
		events:      eventviewer.New(400),
		layoutDirty: true,
	}
	if cal != nil {
		changes := make(chan app.Change, 32)
		cal.Subscribe(func(ch app.Change) {
			select {
			case changes <- ch:
			default:
			}
		})
		m.changes = changes
	}
	return m
}

func (m *testbedModel) Init() tea.Cmd { return m.waitForChange() }

func (m *testbedModel) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg { return changeMsg(<-ch) }
}

func (m *testbedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case changeMsg:
		m.events.Append(eventviewer.FromChange(app.Change(msg)))
		return m, m.waitForChange()
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.layoutDirty = true
		m.events.Append(eventviewer.Entry{Summary: "resize", Detail: fmt.Sprintf("%dx%d", msg.Width, msg.Height)})
	case tea.KeyPressMsg:
		m.events.Append(eventviewer.Entry{Summary: "key", Detail: msg.String()})
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *testbedModel) SetFocus(f bool) { m.focused = f }

func (m *testbedModel) View() (string, *tea.Cursor) {
	content := lipgloss.NewStyle().
		Padding(1, 2).
		Render(
			"Testbed UI\n\n" +
				"Run a subcommand to preview a component:\n" +
				"calendar, groups, dialog, help-overlay.\n\n" +
				"Press ctrl+c to quit.",
		)
	return m.composeView(content, nil)
}

func (m *testbedModel) composeView(content string, cursor *tea.Cursor) (string, *tea.Cursor) {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "Resizing…", nil
	}
	m.ensureLayout()

	borderStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	if m.focused {
		borderStyle = borderStyle.BorderForeground(lipgloss.Color("#39FF14"))
	} else {
		borderStyle = borderStyle.BorderForeground(lipgloss.Color("240"))
	}
	inner := lipgloss.NewStyle().
		Width(m.innerWidth).
		Height(m.innerHeight).
		MaxHeight(m.innerHeight).
		Align(lipgloss.Left, lipgloss.Top).
		Render(content)
	frame := borderStyle.Render(inner)

	offsetX := max(0, (m.termWidth-lipgloss.Width(frame))/2)
	placed := lipgloss.Place(
		m.termWidth,
		max(1, m.termHeight-m.eventHeight-frameGap),
		lipgloss.Center,
		lipgloss.Top,
		frame,
	)

	if log := m.events.View(); log != "" && m.eventHeight > 0 {
		placed = lipgloss.JoinVertical(lipgloss.Left, placed, "", log)
	}
	return placed, offsetCursor(cursor, offsetX+1, 1)
}

func (m *testbedModel) ensureLayout() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	if !m.layoutDirty {
		return
	}

	eventHeight := m.computeEventHeight()
	frameSpace := max(minFrameHeight, m.termHeight-eventHeight-frameGap)

	width := clamp(m.maxWidth, 20, m.termWidth-4)
	height := clamp(m.maxHeight, minFrameHeight, frameSpace)
	if m.fullscreen {
		width = clamp(m.termWidth, 20, m.termWidth)
		height = clamp(frameSpace, minFrameHeight, frameSpace)
	}

	m.frameWidth = width
	m.frameHeight = height
	m.innerWidth = max(1, width-2)
	m.innerHeight = max(1, height-2)
	m.eventHeight = eventHeight
	m.layoutDirty = false

	if eventHeight > 0 {
		m.events.SetSize(m.termWidth, eventHeight)
	}
}

// contentSize reports the frame interior, falling back to 72x18 before the
// first resize.
func (m *testbedModel) contentSize() (int, int) {
	m.ensureLayout()
	if m.innerWidth <= 0 || m.innerHeight <= 0 {
		return 72, 18
	}
	return m.innerWidth, m.innerHeight
}

func (m *testbedModel) computeEventHeight() int {
	maxAvailable := m.termHeight - minFrameHeight - frameGap
	if maxAvailable < minEventHeight {
		return 0
	}
	return min(clamp(m.termHeight/4, minEventHeight, maxEventHeight), maxAvailable)
}

func clamp(value, lo, hi int) int {
	if hi <= 0 {
		return lo
	}
	return max(lo, min(value, hi))
}

func offsetCursor(cursor *tea.Cursor, dx, dy int) *tea.Cursor {
	if cursor == nil {
		return nil
	}
	clone := *cursor
	clone.Position.X += dx
	clone.Position.Y += dy
	return &clone
}

const (
	minFrameHeight = 12
	minEventHeight = 5
	maxEventHeight = 12
	frameGap       = 1
)
