package tween

import "fmt"

// Handle identifies an object tracked by a Registry. A handle outlives the
// object it names: once the object is untracked the handle goes stale and
// every operation using it is a no-op, even if the slot is reused.
type Handle struct {
	ID  int
	Gen int
}

// String implements fmt.Stringer.
func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.ID, h.Gen)
}

// IsZero reports whether h was never issued.
func (h Handle) IsZero() bool {
	return h.ID == 0
}

// handleStore issues handles and recycles freed slots with a bumped generation.
type handleStore struct {
	gen  []int
	free []int
}

func (s *handleStore) create() Handle {
	var id int
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.gen = append(s.gen, 0)
		id = len(s.gen)
	}
	return Handle{ID: id, Gen: s.gen[id-1]}
}

func (s *handleStore) destroy(h Handle) bool {
	if !s.alive(h) {
		return false
	}
	s.gen[h.ID-1]++
	s.free = append(s.free, h.ID)
	return true
}

func (s *handleStore) alive(h Handle) bool {
	if h.ID <= 0 || h.ID > len(s.gen) {
		return false
	}
	return s.gen[h.ID-1] == h.Gen
}
