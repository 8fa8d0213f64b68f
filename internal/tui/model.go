// Package tui implements the interactive watch view for a relay bank.
package tui

import (
	"fmt"
	"sort"
	"time"

	lcus "github.com/bmrzycki/lcus-relay"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evertras/bubble-table/table"
)

const (
	columnKeyRelay = "relay"
	columnKeyState = "state"

	// rowDataKeyID carries the relay number through the table row without
	// rendering it as a column.
	rowDataKeyID = "id"
)

// Device is the slice of the relay controller the view drives.
// *lcus.Controller satisfies it; tests use a fake.
type Device interface {
	Relays() int
	Set(t lcus.Target, on bool) (bool, error)
	Status(t lcus.Target) (lcus.StatusMap, error)
	Toggle(t lcus.Target, pause time.Duration) (bool, error)
}

// statusMsg carries a fresh status poll result into Update.
type statusMsg struct {
	states lcus.StatusMap
	err    error
}

type tickMsg time.Time

// Model is the bubbletea model for the watch view.
type Model struct {
	device   Device
	interval time.Duration
	table    table.Model
	states   lcus.StatusMap
	keys     keyMap
	help     help.Model
	err      error
	polls    int
}

func NewModel(device Device, interval time.Duration) Model {
	columns := []table.Column{
		table.NewColumn(columnKeyRelay, "Relay", 8),
		table.NewColumn(columnKeyState, "State", 8),
	}

	return Model{
		device:   device,
		interval: interval,
		table: table.New(columns).
			Focused(true).
			WithBaseStyle(tableStyle),
		keys: newKeyMap(),
		help: help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.poll(), m.tick())
}

// poll reads the full status off the device in the background.
func (m Model) poll() tea.Cmd {
	device := m.device
	return func() tea.Msg {
		states, err := device.Status(lcus.All())
		return statusMsg{states: states, err: err}
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// setTarget switches the target and follows up with an immediate poll so
// the table reflects the change without waiting for the next tick.
func (m Model) setTarget(t lcus.Target, on bool) tea.Cmd {
	device := m.device
	return func() tea.Msg {
		if _, err := device.Set(t, on); err != nil {
			return statusMsg{err: err}
		}
		states, err := device.Status(lcus.All())
		return statusMsg{states: states, err: err}
	}
}

// pulseTarget runs a full toggle; it blocks its own goroutine for the
// pause, never the UI loop.
func (m Model) pulseTarget(t lcus.Target) tea.Cmd {
	device := m.device
	return func() tea.Msg {
		if _, err := device.Toggle(t, lcus.DefaultPause); err != nil {
			return statusMsg{err: err}
		}
		states, err := device.Status(lcus.All())
		return statusMsg{states: states, err: err}
	}
}

// selected returns the relay number of the highlighted row.
func (m Model) selected() (int, bool) {
	if len(m.table.GetVisibleRows()) == 0 {
		return 0, false
	}
	id, ok := m.table.HighlightedRow().Data[rowDataKeyID].(int)
	return id, ok
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.poll(), m.tick())

	case statusMsg:
		m.err = msg.err
		if msg.err == nil {
			m.states = msg.states
			m.polls++
			m.table = m.table.WithRows(m.rows())
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Flip):
			relay, ok := m.selected()
			if !ok {
				return m, nil
			}
			return m, m.setTarget(lcus.Relay(relay), !m.states[relay])

		case key.Matches(msg, m.keys.Pulse):
			relay, ok := m.selected()
			if !ok {
				return m, nil
			}
			return m, m.pulseTarget(lcus.Relay(relay))

		case key.Matches(msg, m.keys.AllOn):
			return m, m.setTarget(lcus.All(), true)

		case key.Matches(msg, m.keys.AllOff):
			return m, m.setTarget(lcus.All(), false)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// rows rebuilds the table rows from the last polled states, ascending by
// relay number.
func (m Model) rows() []table.Row {
	relays := make([]int, 0, len(m.states))
	for relay := range m.states {
		relays = append(relays, relay)
	}
	sort.Ints(relays)

	rows := make([]table.Row, 0, len(relays))
	for _, relay := range relays {
		state := table.NewStyledCell("OFF", stateOffStyle)
		if m.states[relay] {
			state = table.NewStyledCell("ON", stateOnStyle)
		}
		rows = append(rows, table.NewRow(table.RowData{
			columnKeyRelay: fmt.Sprintf("%d", relay),
			columnKeyState: state,
			rowDataKeyID:   relay,
		}))
	}
	return rows
}

func (m Model) View() string {
	view := titleStyle.Render("LCUS Relay Watch") + "\n\n"
	view += m.table.View() + "\n"

	if m.err != nil {
		view += errStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	} else {
		view += statusLineStyle.Render(
			fmt.Sprintf("%d relays, polled %d times", m.device.Relays(), m.polls)) + "\n"
	}

	view += m.help.View(m.keys)
	return view
}
