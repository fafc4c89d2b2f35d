package tween

import "reflect"

// Steppable is anything the Scheduler can advance once per frame.
type Steppable interface {
	Process(now float64)
}

// Scheduler advances every registered registry once per frame. The host
// owns the Scheduler and calls Step (or Tick) exactly once per frame from a
// single goroutine.
type Scheduler struct {
	clock      Clock
	registries []Steppable
	byType     map[reflect.Type]Steppable
}

// NewScheduler creates a Scheduler reading time from clock.
func NewScheduler(clock Clock) *Scheduler {
	s := new(Scheduler)
	s.clock = clock
	s.byType = make(map[reflect.Type]Steppable)
	return s
}

// Register adds a registry to the frame loop. Registries are processed in
// the order they were registered and are never removed.
func (s *Scheduler) Register(r Steppable) {
	if r == nil {
		return
	}
	s.registries = append(s.registries, r)
}

// Tick processes every registry at now.
func (s *Scheduler) Tick(now float64) {
	for _, r := range s.registries {
		r.Process(now)
	}
}

// Step reads the clock and ticks every registry, returning the time used.
func (s *Scheduler) Step() float64 {
	now := s.clock.Now()
	s.Tick(now)
	return now
}

// Clock returns the scheduler's clock.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// Len returns the number of registered registries.
func (s *Scheduler) Len() int {
	return len(s.registries)
}

// RegistryFor returns the scheduler's registry for T, creating and
// registering it on first use.
func RegistryFor[T any](s *Scheduler) *Registry[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if r, ok := s.byType[key]; ok {
		return r.(*Registry[T])
	}

	r := NewRegistry[T](s.clock)
	s.byType[key] = r
	s.Register(r)
	return r
}
