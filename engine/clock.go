package engine

import "time"

// Clock measures wall-clock time since Start and hands out per-frame deltas.
type Clock struct {
	now     func() time.Time
	started time.Time
	frozen  time.Duration // elapsed at the moment of Stop
	running bool
	last    float64
}

// NewClock returns a stopped clock reading from now. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Start begins timing from zero.
func (c *Clock) Start() {
	c.started = c.now()
	c.frozen = 0
	c.running = true
	c.last = 0
}

// Stop freezes elapsed time. Stopping a stopped clock does nothing.
func (c *Clock) Stop() {
	if !c.running {
		return
	}
	c.frozen = c.now().Sub(c.started)
	c.running = false
}

// Running reports whether the clock is advancing.
func (c *Clock) Running() bool {
	return c.running
}

// Elapsed returns seconds since Start.
func (c *Clock) Elapsed() float64 {
	if !c.running {
		return c.frozen.Seconds()
	}
	return c.now().Sub(c.started).Seconds()
}

// Sample returns the seconds passed since the previous Sample (or Start)
// and moves the sample marker to now.
func (c *Clock) Sample() float64 {
	now := c.Elapsed()
	dt := now - c.last
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}
