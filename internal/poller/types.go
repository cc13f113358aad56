// internal/poller/types.go
package poller

import (
	"time"

	"github.com/NathanMoore4472/modscan-tool/internal/decode"
)

// Result is the snapshot produced by one poll cycle.
// Readings carry per-element success/error when the cycle ran in
// individual mode; Err marks a whole-cycle failure in batch mode.
type Result struct {
	At    time.Time
	Start uint16 // protocol address of Readings[0]
	Seq   int    // poll cycle counter, 1-based

	Readings []decode.Reading
	Err      error
}

// Failed reports whether the cycle produced nothing usable.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Errors counts the per-element read errors in the snapshot.
func (r Result) Errors() int {
	n := 0
	for _, rd := range r.Readings {
		if rd.Err != nil {
			n++
		}
	}
	return n
}
