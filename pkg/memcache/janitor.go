package mem

import (
	"context"
	"time"
)

// Sweeper is implemented by stores that can drop expired entries.
type Sweeper interface {
	Sweep() int
}

// RunJanitor sweeps every store on each tick until ctx is cancelled. onSweep runs after
// every tick, including ticks that removed nothing.
func RunJanitor(ctx context.Context, every time.Duration, onSweep func(removed int), stores ...Sweeper) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := 0
			for _, s := range stores {
				removed += s.Sweep()
			}
			if onSweep != nil {
				onSweep(removed)
			}
		}
	}
}
