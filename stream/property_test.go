package stream

import (
	"errors"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestPropertyApply(t *testing.T) {
	cases := []struct {
		property string
		get      func(*Segment) float64
	}{
		{"brightness", func(s *Segment) float64 { return s.Brightness }},
		{"fill", func(s *Segment) float64 { return s.Fill }},
		{"Offset", func(s *Segment) float64 { return s.Offset }},
	}

	for _, c := range cases {
		t.Run(c.property, func(t *testing.T) {
			apply, err := PropertyApply(TweenConfig{Property: c.property, From: 0.2, To: 0.6})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			s := NewSegment(SegmentConfig{Name: "s", Length: 4})
			apply(s, 0.5)
			if got := c.get(s); !approx(got, 0.4) {
				t.Errorf("expected 0.4, got %v", got)
			}
		})
	}
}

func TestColourProperty(t *testing.T) {
	apply, err := PropertyApply(TweenConfig{Property: "colour", FromColour: "#000000", ToColour: "#ffffff"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := NewSegment(SegmentConfig{Name: "s", Length: 4})
	apply(s, 0)
	if r, g, b := s.Colour.RGB255(); r != 0 || g != 0 || b != 0 {
		t.Errorf("expected black at start, got %d,%d,%d", r, g, b)
	}
	apply(s, 1)
	if r, g, b := s.Colour.RGB255(); r != 255 || g != 255 || b != 255 {
		t.Errorf("expected white at end, got %d,%d,%d", r, g, b)
	}

	if _, err := PropertyApply(TweenConfig{Property: "colour", FromColour: "nope", ToColour: "#ffffff"}); err == nil {
		t.Error("expected error for bad colour")
	}
}

func TestHueProperty(t *testing.T) {
	apply, err := PropertyApply(TweenConfig{Property: "hue", From: 0, To: 240})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := NewSegment(SegmentConfig{Name: "s", Length: 4})
	s.Colour = colorful.Hcl(0, 0.5, 0.5)
	apply(s, 0.5)
	if h, _, _ := s.Colour.Hcl(); h < 110 || h > 130 {
		t.Errorf("expected hue near 120, got %v", h)
	}
}

func TestUnknownProperty(t *testing.T) {
	_, err := PropertyApply(TweenConfig{Property: "wobble"})
	if !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("expected ErrUnknownProperty, got %v", err)
	}
}
