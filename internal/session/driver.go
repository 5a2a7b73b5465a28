package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Driver is an explicit frame scheduler: it invokes a tick callback at a
// fixed rate until stopped. The terminal platform uses Bubble Tea's own tick
// messages instead; the driver serves headless hosts and tests, which have
// no UI loop to piggyback frame requests on.
type Driver struct {
	interval time.Duration
	tick     func()

	started  atomic.Bool
	stopped  atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewDriver creates a driver that calls tick at the given rate (ticks per
// second). Rates below 1 fall back to 60.
func NewDriver(tickRate int, tick func()) *Driver {
	if tickRate < 1 {
		tickRate = 60
	}
	return &Driver{
		interval: time.Second / time.Duration(tickRate),
		tick:     tick,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the tick loop in its own goroutine. Calling Start more than
// once is a no-op.
func (d *Driver) Start(ctx context.Context) {
	if !d.started.CompareAndSwap(false, true) {
		return
	}
	go d.run(ctx)
}

// Run executes the tick loop on the calling goroutine until Stop is called
// or the context is cancelled. Either Start or Run may be used, not both.
func (d *Driver) Run(ctx context.Context) {
	if !d.started.CompareAndSwap(false, true) {
		return
	}
	d.run(ctx)
}

func (d *Driver) run(ctx context.Context) {
	defer close(d.done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-d.stop:
			return
		case <-ticker.C:
			// A tick that fired concurrently with Stop must not run.
			if d.stopped.Load() {
				return
			}
			d.tick()
		}
	}
}

// Stop halts the loop. It is idempotent and safe from any goroutine; once
// Stop returns, no tick callback is running or will run again.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		d.stopped.Store(true)
		close(d.stop)
	})
	if d.started.Load() {
		<-d.done
	}
}
