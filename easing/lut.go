package easing

import (
	"math"
	"sync"

	"github.com/fogleman/ease"
)

// LutLength is the size of the tables built for "lut:" curves.
const LutLength = 64

var (
	lutMu    sync.Mutex
	memoized = make(map[string]*Memoizer)
)

// sampledLut returns a curve sampling the shared table for the named curve.
func sampledLut(name string, f Func) Func {
	lutMu.Lock()
	m, ok := memoized[name]
	if !ok {
		m = NewMemoizer(f)
		memoized[name] = m
	}
	lutMu.Unlock()

	return Sampled(GenerateLutMemoized(LutLength, m))
}

// GenerateLut builds a symmetric look-up table that rises through f over the
// first half and falls back over the second. A nil f uses ease.InOutQuad.
func GenerateLut(length int, f Func) []float64 {
	if length <= 0 {
		return nil
	}
	if f == nil {
		f = ease.InOutQuad
	}

	lut := make([]float64, length)
	half := length / 2
	if half == 0 {
		lut[0] = f(0)
		return lut
	}

	increment := 1.0 / float64(half)
	for i, j := 0, length-1; i < half; i, j = i+1, j-1 {
		value := f(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	if length%2 == 1 {
		lut[half] = f(1)
	}
	return lut
}

// Memoizer caches look-up tables by length.
type Memoizer struct {
	mu    sync.Mutex
	f     Func
	cache map[int][]float64
}

// NewMemoizer creates a Memoizer producing tables with f.
func NewMemoizer(f Func) *Memoizer {
	m := new(Memoizer)
	m.f = f
	m.cache = make(map[int][]float64)
	return m
}

// GenerateLutMemoized returns a cached table of the given length, building it
// on first use. The returned slice is shared and must not be modified.
func GenerateLutMemoized(length int, m *Memoizer) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if lut, ok := m.cache[length]; ok {
		return lut
	}
	lut := GenerateLut(length, m.f)
	m.cache[length] = lut
	return lut
}

// Sampled turns a look-up table into a curve by nearest-index sampling.
// Progress outside [0,1] is clamped.
func Sampled(lut []float64) Func {
	if len(lut) == 0 {
		return ease.Linear
	}
	last := len(lut) - 1
	return func(t float64) float64 {
		if t <= 0 {
			return lut[0]
		}
		if t >= 1 {
			return lut[last]
		}
		return lut[int(math.Round(t*float64(last)))]
	}
}
