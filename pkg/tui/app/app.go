// Package teaui hosts the Bubble Tea program for the evcal month view.
package teaui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/robfig/cron/v3"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/grid"
	"tableflip.dev/evcal/pkg/log"
	"tableflip.dev/evcal/pkg/tui/components/dialog"
	"tableflip.dev/evcal/pkg/tui/components/groups"
	"tableflip.dev/evcal/pkg/tui/components/help"
	"tableflip.dev/evcal/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeDay
	modeDialog
	modeGroups
	modeGroupInput
	modeConfirm
	modeHelp
)

type groupInput int

const (
	groupInputName groupInput = iota
	groupInputNewColor
	groupInputColor
)

const (
	defaultWidth  = 100
	defaultHeight = 32
)

type (
	errMsg     struct{ err error }
	changeMsg  struct{ change app.Change }
	refreshMsg struct{ at time.Time }
)

type confirmState struct {
	prompt string
	run    func() error
	back   mode
}

// Options configures the UI.
type Options struct {
	// Refresh is a cron schedule at which "today" is re-read from the
	// calendar clock. Empty disables the rollover.
	Refresh string
}

// Model contains UI state.
type Model struct {
	cal   *app.Calendar
	theme theme.Theme
	mode  mode

	width  int
	height int

	today    time.Time
	month    time.Time
	selected time.Time

	input   textinput.Model
	sidebar *groups.Model
	dialog  *dialog.Model
	help    *help.Model

	dayCursor int

	groupField   textinput.Model
	groupInput   groupInput
	pendingGroup string

	confirm confirmState

	status    string
	statusErr bool

	schedule    cron.Schedule
	changes     chan app.Change
	unsubscribe func()
}

// New builds the model for cal. The model subscribes to cal; call Close when
// done with it.
func New(cal *app.Calendar, opts Options) (*Model, error) {
	th := theme.Default()

	ti := textinput.New()
	ti.Placeholder = "wed work meeting #work"
	ti.CharLimit = 256
	ti.Prompt = ""

	gi := textinput.New()
	gi.CharLimit = 64
	gi.Prompt = ""

	today := grid.Midnight(cal.Now())
	m := &Model{
		cal:        cal,
		theme:      th,
		today:      today,
		month:      grid.FirstOfMonth(today),
		selected:   today,
		input:      ti,
		sidebar:    groups.New(th.Sidebar),
		groupField: gi,
		changes:    make(chan app.Change, 64),
	}

	if opts.Refresh != "" {
		sched, err := cron.ParseStandard(opts.Refresh)
		if err != nil {
			return nil, fmt.Errorf("refresh schedule %q: %w", opts.Refresh, err)
		}
		m.schedule = sched
	}

	m.unsubscribe = cal.Subscribe(func(c app.Change) {
		select {
		case m.changes <- c:
		default:
			log.Debug("ui change dropped", "change", c.Describe())
		}
	})
	m.sidebar.SetGroups(cal.Groups())
	m.setStatus("press ? for help")
	return m, nil
}

// Close detaches the model from the calendar.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForChange(), m.scheduleRefresh())
}

func (m *Model) waitForChange() tea.Cmd {
	ch := m.changes
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return changeMsg{change: c}
	}
}

func (m *Model) scheduleRefresh() tea.Cmd {
	if m.schedule == nil {
		return nil
	}
	now := m.cal.Now()
	next := m.schedule.Next(now)
	if next.IsZero() {
		return nil
	}
	return tea.Tick(next.Sub(now), func(t time.Time) tea.Msg {
		return refreshMsg{at: t}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.help != nil {
			m.help.SetSize(m.overlaySize())
		}
	case errMsg:
		m.setError(msg.err)
	case changeMsg:
		m.sync()
		cmds = append(cmds, m.waitForChange())
	case refreshMsg:
		m.rollover()
		cmds = append(cmds, m.scheduleRefresh())
	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKeyPress(msg))
	default:
		cmds = append(cmds, m.forward(msg))
	}

	return m, tea.Batch(cmds...)
}

// forward passes non-key messages (cursor blinks) to the active input.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeInsert:
		m.input, cmd = m.input.Update(msg)
	case modeGroupInput:
		m.groupField, cmd = m.groupField.Update(msg)
	case modeDialog:
		if m.dialog != nil {
			m.dialog, cmd = m.dialog.Update(msg)
		}
	case modeHelp:
		if m.help != nil {
			m.help, cmd = m.help.Update(msg)
		}
	}
	return cmd
}

// sync refreshes cached calendar state after a change.
func (m *Model) sync() {
	m.sidebar.SetGroups(m.cal.Groups())
	if n := len(m.cal.EventsOn(m.selected)); m.dayCursor >= n {
		m.dayCursor = max(n-1, 0)
	}
}

// rollover re-reads today. A selection sitting on the old today follows it.
func (m *Model) rollover() {
	now := grid.Midnight(m.cal.Now())
	if grid.SameDay(now, m.today) {
		return
	}
	log.Info("day rolled over", "today", now.Format("2006-01-02"))
	if grid.SameDay(m.selected, m.today) {
		m.selectDate(now)
	}
	m.today = now
}

func (m *Model) selectDate(d time.Time) {
	m.selected = grid.Midnight(d)
	m.month = grid.FirstOfMonth(m.selected)
	m.dayCursor = 0
}

// shiftMonth moves the view by n months keeping the day of month where the
// target month has it.
func (m *Model) shiftMonth(n int) {
	target := grid.AddMonths(m.month, n)
	day := min(m.selected.Day(), grid.DaysIn(target))
	m.selectDate(target.AddDate(0, 0, day-1))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m *Model) overlaySize() (int, int) {
	w, h := m.size()
	return min(w-4, 84), h - 4
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(cal *app.Calendar, opts Options) error {
	m, err := New(cal, opts)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
