package tween

// Registry owns the live clips of one object type, at most one per
// (object, clip name). Objects are identified by the Handle returned from
// Track rather than by address.
//
// A Registry is not safe for concurrent use. Calls made from clip callbacks
// while the registry is busy are queued and applied once it is idle; clips
// started that way during Process begin on the following frame.
type Registry[T any] struct {
	clock   Clock
	handles handleStore
	targets map[Handle]T
	clips   map[Handle]map[string]*Clip[T]

	depth    int
	sweeping bool
	pending  []func()
}

// NewRegistry creates an empty Registry that arms clips using clock.
func NewRegistry[T any](clock Clock) *Registry[T] {
	r := new(Registry[T])
	r.clock = clock
	r.targets = make(map[Handle]T)
	r.clips = make(map[Handle]map[string]*Clip[T])
	return r
}

// Track starts tracking target and returns its handle.
func (r *Registry[T]) Track(target T) Handle {
	h := r.handles.create()
	r.targets[h] = target
	return h
}

// Untrack stops every clip on the object and invalidates its handle. It must
// be called before the object is discarded.
func (r *Registry[T]) Untrack(h Handle) {
	if r.busy() {
		r.queue(func() { r.untrack(h) })
		return
	}

	r.enter()
	r.untrack(h)
	r.leave()
}

// Alive reports whether h still names a tracked object.
func (r *Registry[T]) Alive(h Handle) bool {
	return r.handles.alive(h)
}

// Target returns the object named by h.
func (r *Registry[T]) Target(h Handle) (T, bool) {
	t, ok := r.targets[h]
	return t, ok
}

// NewClip builds a clip for the object without starting it, for use as a
// successor with PlayAfter or with PlayClip. It returns nil if h is stale.
func (r *Registry[T]) NewClip(h Handle, name string, duration float64, easing EasingFunc, apply ApplyFunc[T]) *Clip[T] {
	target, ok := r.targets[h]
	if !ok || !r.handles.alive(h) {
		return nil
	}
	return newClip(target, h, name, duration, easing, apply)
}

// Play starts a new clip on the object under name, cancelling any clip
// already playing under that name. The returned clip may be configured
// further before the next frame. It returns nil if h is stale.
func (r *Registry[T]) Play(h Handle, name string, duration float64, easing EasingFunc, apply ApplyFunc[T]) *Clip[T] {
	c := r.NewClip(h, name, duration, easing, apply)
	if c == nil {
		return nil
	}
	r.PlayClip(c)
	return c
}

// PlayClip (re)starts an existing clip on its object, replacing any other
// clip under the same name.
func (r *Registry[T]) PlayClip(c *Clip[T]) {
	if c == nil {
		return
	}
	if r.busy() {
		deferred := r.sweeping
		r.queue(func() { r.activate(c, deferred) })
		return
	}

	r.enter()
	r.activate(c, false)
	r.leave()
}

// Stop cancels and removes the clip under name. The clip's stop callback
// fires. Unknown names are ignored.
func (r *Registry[T]) Stop(h Handle, name string) {
	if r.busy() {
		r.queue(func() { r.stop(h, name) })
		return
	}

	r.enter()
	r.stop(h, name)
	r.leave()
}

// StopAll cancels and removes every clip on the object.
func (r *Registry[T]) StopAll(h Handle) {
	if r.busy() {
		r.queue(func() { r.stopAll(h) })
		return
	}

	r.enter()
	r.stopAll(h)
	r.leave()
}

// HasAnimation reports whether the object has at least one active clip.
func (r *Registry[T]) HasAnimation(h Handle) bool {
	return len(r.clips[h]) > 0
}

// Clip returns the active clip under name.
func (r *Registry[T]) Clip(h Handle, name string) (*Clip[T], bool) {
	c, ok := r.clips[h][name]
	return c, ok
}

// Len returns the number of active clips across all objects.
func (r *Registry[T]) Len() int {
	n := 0
	for _, clips := range r.clips {
		n += len(clips)
	}
	return n
}

// Tracked returns the number of tracked objects.
func (r *Registry[T]) Tracked() int {
	return len(r.targets)
}

// Process steps every active clip to now. Completed clips are removed after
// the sweep and their successors are started; a successor takes its start
// time from the next call to Process.
func (r *Registry[T]) Process(now float64) {
	if r.busy() {
		return
	}

	r.enter()
	r.sweeping = true

	var completed []*Clip[T]
	for _, clips := range r.clips {
		for _, c := range clips {
			c.step(now)
			if c.completed {
				completed = append(completed, c)
			}
		}
	}

	for _, c := range completed {
		r.release(c)
	}
	for _, c := range completed {
		if c.next != nil {
			r.activate(c.next, true)
		}
	}

	r.leave()
	r.sweeping = false
}

func (r *Registry[T]) activate(c *Clip[T], deferred bool) {
	if !r.handles.alive(c.handle) {
		return
	}

	clips, ok := r.clips[c.handle]
	if !ok {
		clips = make(map[string]*Clip[T])
		r.clips[c.handle] = clips
	}
	if prev, ok := clips[c.name]; ok && prev != c {
		delete(clips, c.name)
		prev.cancel()
	}

	clips[c.name] = c
	if deferred {
		c.armDeferred()
	} else {
		c.arm(r.clock.Now())
	}
}

func (r *Registry[T]) untrack(h Handle) {
	if !r.handles.alive(h) {
		return
	}
	r.stopAll(h)
	delete(r.targets, h)
	r.handles.destroy(h)
}

func (r *Registry[T]) stop(h Handle, name string) {
	clips, ok := r.clips[h]
	if !ok {
		return
	}
	c, ok := clips[name]
	if !ok {
		return
	}
	delete(clips, name)
	if len(clips) == 0 {
		delete(r.clips, h)
	}
	c.cancel()
}

func (r *Registry[T]) stopAll(h Handle) {
	clips, ok := r.clips[h]
	if !ok {
		return
	}
	delete(r.clips, h)
	for _, c := range clips {
		c.cancel()
	}
}

// release drops a finished clip unless it was already replaced.
func (r *Registry[T]) release(c *Clip[T]) {
	clips, ok := r.clips[c.handle]
	if !ok || clips[c.name] != c {
		return
	}
	delete(clips, c.name)
	if len(clips) == 0 {
		delete(r.clips, c.handle)
	}
}

func (r *Registry[T]) busy() bool {
	return r.depth > 0
}

func (r *Registry[T]) enter() {
	r.depth++
}

// leave runs the calls queued while the registry was busy once the outermost
// operation finishes. Calls queued by those calls run in the same pass.
func (r *Registry[T]) leave() {
	if r.depth == 1 {
		for len(r.pending) > 0 {
			ops := r.pending
			r.pending = nil
			for _, op := range ops {
				op()
			}
		}
	}
	r.depth--
}

func (r *Registry[T]) queue(op func()) {
	r.pending = append(r.pending, op)
}
