package gui

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_StartStop(t *testing.T) {
	now := time.Date(2021, 3, 1, 12, 0, 0, 0, time.UTC)
	cl := NewClock()
	cl.now = func() time.Time { return now }

	assert.Equal(t, "0:00.0", cl.String())

	cl.Start()
	now = now.Add(1500 * time.Millisecond)
	assert.True(t, cl.Running)
	assert.Equal(t, 1500*time.Millisecond, cl.Current())

	now = now.Add(63 * time.Second)
	cl.Stop()
	assert.False(t, cl.Running)
	assert.Equal(t, "1:04.5", cl.String())

	// Stopped clocks keep their reading.
	now = now.Add(time.Hour)
	assert.Equal(t, 64500*time.Millisecond, cl.Current())
}

func TestClock_RunTicksWhileRunning(t *testing.T) {
	cl := NewClock()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks int32
	go cl.Run(ctx, time.Millisecond, func() { atomic.AddInt32(&ticks, 1) })

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&ticks))

	cl.Start()
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&ticks) > 0 }, time.Second, time.Millisecond)
	cl.Stop()
}
