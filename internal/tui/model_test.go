package tui

import (
	"testing"
	"time"

	lcus "github.com/bmrzycki/lcus-relay"
	tea "github.com/charmbracelet/bubbletea"
)

// fakeDevice implements Device against an in-memory state table.
type fakeDevice struct {
	states  lcus.StatusMap
	sets    int
	toggles int
}

func newFakeDevice(relays int) *fakeDevice {
	states := make(lcus.StatusMap, relays)
	for r := 1; r <= relays; r++ {
		states[r] = false
	}
	return &fakeDevice{states: states}
}

func (f *fakeDevice) Relays() int { return len(f.states) }

func (f *fakeDevice) Set(t lcus.Target, on bool) (bool, error) {
	f.sets++
	for r := range f.states {
		f.states[r] = on
	}
	return true, nil
}

func (f *fakeDevice) Status(t lcus.Target) (lcus.StatusMap, error) {
	out := make(lcus.StatusMap, len(f.states))
	for r, on := range f.states {
		out[r] = on
	}
	return out, nil
}

func (f *fakeDevice) Toggle(t lcus.Target, pause time.Duration) (bool, error) {
	f.toggles++
	return true, nil
}

// drive applies a message and any command results it produces until the
// model settles, mimicking the bubbletea loop synchronously.
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	for msg != nil {
		updated, cmd := m.Update(msg)
		m = updated.(Model)
		msg = nil
		if cmd != nil {
			if next := cmd(); next != nil {
				if _, isTick := next.(tickMsg); !isTick {
					msg = next
				}
			}
		}
	}
	return m
}

func TestStatusMsgPopulatesRows(t *testing.T) {
	device := newFakeDevice(4)
	m := NewModel(device, time.Second)

	m = drive(t, m, statusMsg{states: lcus.StatusMap{1: true, 2: false, 3: false, 4: true}})

	rows := m.table.GetVisibleRows()
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if id, ok := rows[0].Data[rowDataKeyID].(int); !ok || id != 1 {
		t.Errorf("first row id = %v, want 1", rows[0].Data[rowDataKeyID])
	}
}

func TestFlipKeySetsSelectedRelay(t *testing.T) {
	device := newFakeDevice(2)
	m := NewModel(device, time.Second)
	m = drive(t, m, statusMsg{states: lcus.StatusMap{1: false, 2: false}})

	m = drive(t, m, tea.KeyMsg{Type: tea.KeySpace})

	if device.sets != 1 {
		t.Errorf("expected 1 Set call, got %d", device.sets)
	}
	if !m.states[1] {
		t.Error("selected relay did not flip on after repoll")
	}
}

func TestPulseKeyTogglesSelectedRelay(t *testing.T) {
	device := newFakeDevice(2)
	m := NewModel(device, time.Second)
	m = drive(t, m, statusMsg{states: lcus.StatusMap{1: false, 2: false}})

	drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})

	if device.toggles != 1 {
		t.Errorf("expected 1 Toggle call, got %d", device.toggles)
	}
}

func TestKeysIgnoredBeforeFirstPoll(t *testing.T) {
	device := newFakeDevice(2)
	m := NewModel(device, time.Second)

	drive(t, m, tea.KeyMsg{Type: tea.KeySpace})

	if device.sets != 0 {
		t.Errorf("expected no Set calls with an empty table, got %d", device.sets)
	}
}

func TestQuitKey(t *testing.T) {
	device := newFakeDevice(2)
	m := NewModel(device, time.Second)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not produce tea.Quit")
	}
}
