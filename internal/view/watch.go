// internal/view/watch.go
package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NathanMoore4472/modscan-tool/internal/decode"
	"github.com/NathanMoore4472/modscan-tool/internal/poller"
)

// WatchModel is the live view for continuous reads. It consumes poll
// results from a channel, decodes each one and re-renders; whatever
// snapshot it holds is replaced wholesale by the newest result, never
// mutated in place.
type WatchModel struct {
	results <-chan poller.Result
	opts    decode.Options
	tags    decode.TagSource
	styles  Styles

	rows       []decode.Row
	lastSeq    int
	lastStatus string
	expandBits bool
	quitting   bool
}

// NewWatch builds the model. opts and tags are held for the lifetime
// of the view and applied identically to every cycle; expandBits sets
// the initial state of the bit sub-row toggle.
func NewWatch(results <-chan poller.Result, opts decode.Options, tags decode.TagSource, expandBits bool) WatchModel {
	return WatchModel{
		results:    results,
		opts:       opts,
		tags:       tags,
		styles:     DefaultStyles(),
		expandBits: expandBits,
		lastStatus: "waiting for first read...",
	}
}

type resultMsg poller.Result

func (m WatchModel) waitForResult() tea.Cmd {
	return func() tea.Msg {
		res, ok := <-m.results
		if !ok {
			return tea.Quit()
		}
		return resultMsg(res)
	}
}

func (m WatchModel) Init() tea.Cmd {
	return m.waitForResult()
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "b":
			m.expandBits = !m.expandBits
		}
		return m, nil

	case resultMsg:
		res := poller.Result(msg)

		// A stale cycle (emitted before one we already rendered)
		// is discarded in favor of the most recent.
		if res.Seq > m.lastSeq {
			m.lastSeq = res.Seq
			if res.Failed() {
				m.lastStatus = fmt.Sprintf("read #%d failed: %v", res.Seq, res.Err)
			} else {
				m.rows = decode.BuildRows(res.Readings, res.Start, m.opts, m.tags)
				if n := res.Errors(); n > 0 {
					m.lastStatus = fmt.Sprintf("read #%d at %s: %d OK, %d errors",
						res.Seq, res.At.Format("15:04:05"), len(res.Readings)-n, n)
				} else {
					m.lastStatus = fmt.Sprintf("read #%d at %s: %d OK",
						res.Seq, res.At.Format("15:04:05"), len(res.Readings))
				}
			}
		}
		return m, m.waitForResult()
	}

	return m, nil
}

func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	out := ""
	if len(m.rows) > 0 {
		out += RenderTable(m.rows, m.expandBits, m.styles)
	}
	out += m.styles.Status.Render(m.lastStatus)
	out += m.styles.Status.Render("  ·  b: toggle bits  ·  q: quit")
	out += "\n"
	return out
}
