package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// A Segment is a run of pixels whose properties are animated together.
type Segment struct {
	Name       string
	Start      int
	Length     int
	Colour     colorful.Color
	Gradient   GradientTable
	Brightness float64
	Fill       float64
	Offset     float64
}

// NewSegment creates a Segment from its config. Brightness defaults to full.
func NewSegment(config SegmentConfig) *Segment {
	s := new(Segment)
	s.Name = config.Name
	s.Start = config.Start
	s.Length = config.Length
	s.Colour, _ = colorful.Hex("#404040")
	if config.Colour != "" {
		s.Colour, _ = colorful.Hex(config.Colour)
	}
	s.Gradient = gradients[config.Gradient]
	s.Brightness = 1.0
	if config.Brightness > 0 {
		s.Brightness = config.Brightness
	}
	s.Fill = 1.0
	return s
}

// Render draws the segment into f. Pixels past the fill point are left
// untouched.
func (s *Segment) Render(f *Frame) {
	lit := int(math.Round(clamp01(s.Fill) * float64(s.Length)))
	brightness := clamp01(s.Brightness)
	black := colorful.Color{}

	for i := 0; i < lit; i++ {
		p := s.Start + i
		if p < 0 || p >= len(f.pixels) {
			continue
		}

		c := s.Colour
		if s.Gradient != nil {
			t := float64(i)/float64(s.Length) + s.Offset
			c = s.Gradient.GetColor(t, 1.0, 0.05)
		}
		f.pixels[p] = black.BlendRgb(c, brightness)
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
