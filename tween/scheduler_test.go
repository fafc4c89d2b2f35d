package tween

import "testing"

type countingStep struct {
	calls []float64
}

func (c *countingStep) Process(now float64) {
	c.calls = append(c.calls, now)
}

type light struct {
	level float64
}

func TestRegistryForReturnsSameInstance(t *testing.T) {
	s := NewScheduler(NewManualClock(0))

	sprites := RegistryFor[*sprite](s)
	if again := RegistryFor[*sprite](s); again != sprites {
		t.Fatal("expected the same registry for the same type")
	}
	RegistryFor[*light](s)

	if s.Len() != 2 {
		t.Errorf("expected one registry per type, got %d", s.Len())
	}
}

func TestTickProcessesEachRegistryOnce(t *testing.T) {
	s := NewScheduler(NewManualClock(0))
	a := new(countingStep)
	b := new(countingStep)
	s.Register(a)
	s.Register(b)
	s.Register(nil)

	s.Tick(0.25)
	s.Tick(0.5)

	for name, c := range map[string]*countingStep{"a": a, "b": b} {
		if len(c.calls) != 2 || c.calls[0] != 0.25 || c.calls[1] != 0.5 {
			t.Errorf("%s: expected one call per tick, got %v", name, c.calls)
		}
	}
}

func TestStepDrivesRegistriesFromClock(t *testing.T) {
	clock := NewManualClock(0)
	s := NewScheduler(clock)
	lights := RegistryFor[*light](s)
	sprites := RegistryFor[*sprite](s)

	lamp := &light{}
	obj := new(sprite)
	lights.Play(lights.Track(lamp), "dim", 2, Linear, func(l *light, v float64) { l.level = 1 - v })
	sprites.Play(sprites.Track(obj), "fade", 1, Linear, setAlpha)

	clock.Advance(1)
	if now := s.Step(); now != 1 {
		t.Fatalf("expected step at clock time 1, got %v", now)
	}

	if !approx(lamp.level, 0.5) {
		t.Errorf("expected lamp at 0.5, got %v", lamp.level)
	}
	if !approx(obj.alpha, 1) {
		t.Errorf("expected sprite at 1, got %v", obj.alpha)
	}
	if s.Clock() != Clock(clock) {
		t.Error("scheduler clock mismatch")
	}
}
