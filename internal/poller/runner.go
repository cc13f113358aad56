// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run polls immediately, then on every interval tick, emitting each
// Result on the provided channel. One goroutine per table; at most
// one cycle in flight. Each Result is an immutable snapshot: the
// consumer must never mutate it, only replace it with a newer one.
func (p *Poller) Run(ctx context.Context, out chan<- Result) {
	send := func(res Result) bool {
		select {
		case <-ctx.Done():
			return false
		case out <- res:
			return true
		}
	}

	if !send(p.PollOnce()) {
		return
	}

	interval := p.cfg.Interval
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !send(p.PollOnce()) {
				return
			}
		}
	}
}
