// internal/view/view_test.go
package view

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NathanMoore4472/modscan-tool/internal/decode"
	"github.com/NathanMoore4472/modscan-tool/internal/poller"
)

func snapshot() []decode.Row {
	return decode.BuildRows(
		[]decode.Reading{
			decode.RegisterReading(0x1234),
			decode.ErrorReading(errors.New("timeout")),
		},
		100,
		decode.Options{ZeroBasedAddressing: true},
		nil,
	)
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(snapshot(), false, Styles{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Address") || !strings.Contains(lines[0], "Float32") {
		t.Errorf("header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "0x1234") {
		t.Errorf("register row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "ERROR") {
		t.Errorf("error row: %q", lines[2])
	}
}

func TestRenderTable_ExpandBits(t *testing.T) {
	out := RenderTable(snapshot(), true, Styles{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// header + register + 16 bits + error row (errors never expand)
	if len(lines) != 19 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.Contains(lines[2], "100.0") {
		t.Errorf("first bit row: %q", lines[2])
	}
}

func TestWatchModel_RendersNewestResult(t *testing.T) {
	m := NewWatch(nil, decode.Options{ZeroBasedAddressing: true}, nil, false)
	m.styles = Styles{}

	next, _ := m.Update(resultMsg(poller.Result{
		At:       time.Now(),
		Start:    0,
		Seq:      2,
		Readings: []decode.Reading{decode.RegisterReading(0xBEEF)},
	}))
	m = next.(WatchModel)

	if len(m.rows) != 1 || m.rows[0].Word.Unsigned != 0xBEEF {
		t.Fatalf("rows after result: %+v", m.rows)
	}

	// A stale result (lower sequence) must be discarded.
	next, _ = m.Update(resultMsg(poller.Result{
		At:       time.Now(),
		Start:    0,
		Seq:      1,
		Readings: []decode.Reading{decode.RegisterReading(0x0000)},
	}))
	m = next.(WatchModel)

	if m.rows[0].Word.Unsigned != 0xBEEF {
		t.Errorf("stale result overwrote newer snapshot")
	}

	if !strings.Contains(m.View(), "0xBEEF") {
		t.Errorf("view missing register value:\n%s", m.View())
	}
}

func TestWatchModel_FailedCycleKeepsSnapshot(t *testing.T) {
	m := NewWatch(nil, decode.Options{ZeroBasedAddressing: true}, nil, false)
	m.styles = Styles{}

	next, _ := m.Update(resultMsg(poller.Result{
		Seq:      1,
		Readings: []decode.Reading{decode.RegisterReading(1)},
	}))
	m = next.(WatchModel)

	next, _ = m.Update(resultMsg(poller.Result{
		Seq: 2,
		Err: errors.New("connection reset"),
	}))
	m = next.(WatchModel)

	if len(m.rows) != 1 {
		t.Errorf("failed cycle dropped the last good snapshot")
	}
	if !strings.Contains(m.lastStatus, "failed") {
		t.Errorf("status: %q", m.lastStatus)
	}
}

func TestWatchModel_Keys(t *testing.T) {
	m := NewWatch(nil, decode.Options{}, nil, false)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	m = next.(WatchModel)
	if !m.expandBits {
		t.Error("b did not toggle bit expansion")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("q did not quit")
	}
}
