// Package easing provides named easing curves and look-up tables built from
// them.
package easing

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/fogleman/ease"
)

// Func maps linear progress to eased progress.
type Func func(t float64) float64

// ErrUnknown is returned when a curve name is not recognised.
var ErrUnknown = errors.New("unknown easing")

var curves = map[string]Func{
	"linear":       ease.Linear,
	"inquad":       ease.InQuad,
	"outquad":      ease.OutQuad,
	"inoutquad":    ease.InOutQuad,
	"incubic":      ease.InCubic,
	"outcubic":     ease.OutCubic,
	"inoutcubic":   ease.InOutCubic,
	"inquart":      ease.InQuart,
	"outquart":     ease.OutQuart,
	"inoutquart":   ease.InOutQuart,
	"inquint":      ease.InQuint,
	"outquint":     ease.OutQuint,
	"inoutquint":   ease.InOutQuint,
	"insine":       ease.InSine,
	"outsine":      ease.OutSine,
	"inoutsine":    ease.InOutSine,
	"inexpo":       ease.InExpo,
	"outexpo":      ease.OutExpo,
	"inoutexpo":    ease.InOutExpo,
	"incirc":       ease.InCirc,
	"outcirc":      ease.OutCirc,
	"inoutcirc":    ease.InOutCirc,
	"inelastic":    ease.InElastic,
	"outelastic":   ease.OutElastic,
	"inoutelastic": ease.InOutElastic,
	"inback":       ease.InBack,
	"outback":      ease.OutBack,
	"inoutback":    ease.InOutBack,
	"inbounce":     ease.InBounce,
	"outbounce":    ease.OutBounce,
	"inoutbounce":  ease.InOutBounce,
}

func normalise(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "")
	return strings.ReplaceAll(name, "_", "")
}

// Lookup finds a curve by name, e.g. "InOutQuad", "in-out-quad" or
// "outbounce". An empty name selects Linear. The prefixes "reverse:" and
// "pingpong:" wrap the named curve with Reverse and PingPong, and "lut:"
// samples a memoized rise-and-fall table of it.
func Lookup(name string) (Func, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ease.Linear, nil
	}
	if prefix, rest, ok := strings.Cut(trimmed, ":"); ok {
		inner, err := Lookup(rest)
		if err != nil {
			return nil, err
		}
		switch normalise(prefix) {
		case "reverse":
			return Reverse(inner), nil
		case "pingpong":
			return PingPong(inner), nil
		case "lut":
			return sampledLut(normalise(rest), inner), nil
		}
		return nil, fmt.Errorf("%w: modifier %q", ErrUnknown, prefix)
	}

	f, ok := curves[normalise(trimmed)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return f, nil
}

// MustLookup is like Lookup but panics on an unknown name.
func MustLookup(name string) Func {
	f, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return f
}

// Names returns the normalised names of every known curve, sorted.
func Names() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reverse mirrors f so that an "in" curve becomes the matching "out" curve.
// Endpoints are preserved.
func Reverse(f Func) Func {
	return func(t float64) float64 {
		return 1 - f(1-t)
	}
}

// PingPong runs f forwards over the first half of the progress range and
// backwards over the second half.
func PingPong(f Func) Func {
	return func(t float64) float64 {
		if t < 0.5 {
			return f(t * 2)
		}
		return f((1 - t) * 2)
	}
}
