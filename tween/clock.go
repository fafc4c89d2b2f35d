package tween

import (
	"sync"
	"time"
)

// A Clock supplies the current time in seconds since an arbitrary epoch.
// Readings must never decrease.
type Clock interface {
	Now() float64
}

// SystemClock reads the monotonic system clock. Its epoch is the moment it
// was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates an instance of a SystemClock.
func NewSystemClock() *SystemClock {
	c := new(SystemClock)
	c.start = time.Now()
	return c
}

// Now returns the seconds elapsed since the clock was created.
func (c *SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// PausableClock freezes another Clock while paused. Time spent paused is
// excluded from later readings.
type PausableClock struct {
	mu      sync.RWMutex
	source  Clock
	paused  bool
	pauseAt float64
	offset  float64
}

// NewPausableClock wraps source in a PausableClock.
func NewPausableClock(source Clock) *PausableClock {
	c := new(PausableClock)
	c.source = source
	return c
}

// Now returns the source time minus the total time spent paused.
func (c *PausableClock) Now() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.paused {
		return c.pauseAt - c.offset
	}
	return c.source.Now() - c.offset
}

// Pause stops the clock. Pausing a paused clock does nothing.
func (c *PausableClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.paused {
		c.paused = true
		c.pauseAt = c.source.Now()
	}
}

// Resume restarts the clock from where it was paused.
func (c *PausableClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		c.paused = false
		c.offset += c.source.Now() - c.pauseAt
	}
}

// Paused reports whether the clock is paused.
func (c *PausableClock) Paused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	mu  sync.RWMutex
	now float64
}

// NewManualClock creates a ManualClock reading start.
func NewManualClock(start float64) *ManualClock {
	c := new(ManualClock)
	c.now = start
	return c
}

// Now returns the current manual time.
func (c *ManualClock) Now() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set moves the clock to t. Earlier values are ignored to keep it monotonic.
func (c *ManualClock) Set(t float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t > c.now {
		c.now = t
	}
}

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += dt
}
