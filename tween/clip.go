package tween

// EasingFunc maps linear progress in [0,1] to eased progress. It should be
// pure; the engine does not clamp its input or output.
type EasingFunc func(progress float64) float64

// ApplyFunc writes an eased progress value into a property of target.
type ApplyFunc[T any] func(target T, eased float64)

// Callback is notified with the animated target.
type Callback[T any] func(target T)

// Linear is the identity easing curve.
func Linear(progress float64) float64 {
	return progress
}

// A Clip tweens one named property channel of a target over a fixed
// duration. Clips are created by a Registry, which owns them while active.
type Clip[T any] struct {
	target   T
	handle   Handle
	name     string
	duration float64
	easing   EasingFunc
	apply    ApplyFunc[T]
	onEnd    Callback[T]
	onStop   Callback[T]
	next     *Clip[T]

	startTime float64
	deferred  bool
	playing   bool
	repeat    bool
	completed bool
}

func noopCallback[T any](T) {}

func newClip[T any](target T, h Handle, name string, duration float64, easing EasingFunc, apply ApplyFunc[T]) *Clip[T] {
	c := new(Clip[T])
	c.target = target
	c.handle = h
	c.name = name
	if !(duration > 0) {
		duration = 0
	}
	c.duration = duration
	if easing == nil {
		easing = Linear
	}
	c.easing = easing
	if apply == nil {
		apply = func(T, float64) {}
	}
	c.apply = apply
	c.onEnd = noopCallback[T]
	c.onStop = noopCallback[T]
	return c
}

// arm (re)starts the clip at now.
func (c *Clip[T]) arm(now float64) {
	c.startTime = now
	c.deferred = false
	c.playing = true
	c.completed = false
}

// armDeferred starts the clip at the time of the first step it receives.
func (c *Clip[T]) armDeferred() {
	c.deferred = true
	c.playing = true
	c.completed = false
}

// step advances the clip to now, applying the eased value and finishing the
// clip when its duration has elapsed.
func (c *Clip[T]) step(now float64) {
	if !c.playing {
		return
	}
	if c.deferred {
		c.startTime = now
		c.deferred = false
	}

	// Compare absolute times: now-start can round below duration.
	done := c.duration == 0 || now >= c.startTime+c.duration

	progress := 1.0
	if !done {
		elapsed := now - c.startTime
		if elapsed < 0 {
			elapsed = 0
		}
		progress = elapsed / c.duration
	}
	c.apply(c.target, c.easing(progress))

	if done {
		if c.repeat {
			c.startTime = now
			return
		}
		c.playing = false
		c.completed = true
		c.onEnd(c.target)
		c.onStop(c.target)
	}
}

// cancel stops a playing clip and fires the stop callback. The successor is
// never started.
func (c *Clip[T]) cancel() {
	if !c.playing {
		return
	}
	c.playing = false
	c.deferred = false
	c.onStop(c.target)
}

// SetEnd sets the callback fired when the clip runs to completion.
func (c *Clip[T]) SetEnd(cb Callback[T]) *Clip[T] {
	if cb == nil {
		cb = noopCallback[T]
	}
	c.onEnd = cb
	return c
}

// SetStop sets the callback fired when the clip completes or is cancelled.
func (c *Clip[T]) SetStop(cb Callback[T]) *Clip[T] {
	if cb == nil {
		cb = noopCallback[T]
	}
	c.onStop = cb
	return c
}

// SetRepeat makes the clip loop forever. A repeating clip never completes
// and never fires its callbacks unless it is stopped.
func (c *Clip[T]) SetRepeat(repeat bool) *Clip[T] {
	c.repeat = repeat
	return c
}

// PlayAfter chains next to start when c completes naturally. It returns next
// so chains read left to right.
func (c *Clip[T]) PlayAfter(next *Clip[T]) *Clip[T] {
	c.next = next
	return next
}

// Progress returns the linear progress of the clip at now.
func (c *Clip[T]) Progress(now float64) float64 {
	if c.completed {
		return 1
	}
	if !c.playing || c.deferred {
		return 0
	}
	if c.duration == 0 || now >= c.startTime+c.duration {
		return 1
	}
	elapsed := now - c.startTime
	if elapsed < 0 {
		return 0
	}
	return elapsed / c.duration
}

func (c *Clip[T]) Name() string      { return c.name }
func (c *Clip[T]) Handle() Handle    { return c.handle }
func (c *Clip[T]) Target() T         { return c.target }
func (c *Clip[T]) Duration() float64 { return c.duration }
func (c *Clip[T]) Playing() bool     { return c.playing }
func (c *Clip[T]) Completed() bool   { return c.completed }
func (c *Clip[T]) Repeating() bool   { return c.repeat }
func (c *Clip[T]) Next() *Clip[T]    { return c.next }
