package gui

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Clock times generation passes.
type Clock struct {
	Elapsed time.Duration
	Running bool

	started time.Time
	now     func() time.Time
	sync.Mutex
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func (cl *Clock) String() string {
	d := cl.Current()
	return fmt.Sprintf("%d:%02d.%d", int(d.Minutes()), int(d.Seconds())%60, int(d.Milliseconds()/100)%10)
}

func (cl *Clock) Start() {
	cl.Lock()
	defer cl.Unlock()

	cl.started = cl.now()
	cl.Elapsed = 0
	cl.Running = true
}

func (cl *Clock) Stop() {
	cl.Lock()
	defer cl.Unlock()

	if cl.Running {
		cl.Elapsed = cl.now().Sub(cl.started)
	}
	cl.Running = false
}

// Current returns the running time so far, or the last measured time when
// stopped.
func (cl *Clock) Current() time.Duration {
	cl.Lock()
	defer cl.Unlock()

	if cl.Running {
		return cl.now().Sub(cl.started)
	}
	return cl.Elapsed
}

// Run calls tick every interval while the clock is running, until ctx is
// done.
func (cl *Clock) Run(ctx context.Context, interval time.Duration, tick func()) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			cl.Lock()
			running := cl.Running
			cl.Unlock()

			if running {
				tick()
			}
		}
	}
}
