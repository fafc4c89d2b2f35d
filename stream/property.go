package stream

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/tween"
)

// ErrUnknownProperty is returned for a tween property no Segment supports.
var ErrUnknownProperty = errors.New("unknown property")

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// PropertyApply builds the function that writes a tween's property into a
// Segment. Supported properties are brightness, fill, offset, hue and colour.
func PropertyApply(t TweenConfig) (tween.ApplyFunc[*Segment], error) {
	from, to := t.From, t.To

	switch strings.ToLower(t.Property) {
	case "brightness":
		return func(s *Segment, v float64) {
			s.Brightness = lerp(from, to, v)
		}, nil
	case "fill":
		return func(s *Segment, v float64) {
			s.Fill = lerp(from, to, v)
		}, nil
	case "offset":
		return func(s *Segment, v float64) {
			s.Offset = lerp(from, to, v)
		}, nil
	case "hue":
		return func(s *Segment, v float64) {
			_, c, l := s.Colour.Hcl()
			s.Colour = colorful.Hcl(lerp(from, to, v), c, l)
		}, nil
	case "colour", "color":
		start, err := colorful.Hex(t.FromColour)
		if err != nil {
			return nil, fmt.Errorf("fromColour: %w", err)
		}
		end, err := colorful.Hex(t.ToColour)
		if err != nil {
			return nil, fmt.Errorf("toColour: %w", err)
		}
		return func(s *Segment, v float64) {
			s.Colour = start.BlendHcl(end, v).Clamped()
		}, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownProperty, t.Property)
}
