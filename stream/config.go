package stream

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/easing"
	"gopkg.in/yaml.v2"
)

var (
	// ErrUnknownSegment is returned when a tween names a segment that is not configured.
	ErrUnknownSegment = errors.New("unknown segment")
	// ErrUnknownScene is returned when a scene name is not configured.
	ErrUnknownScene = errors.New("unknown scene")
)

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientID"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Api struct {
		Addr   string `yaml:"addr"`
		Static string `yaml:"static"`
	} `yaml:"api"`
	FrameRate      float64         `yaml:"frameRate"`
	Pixels         int             `yaml:"pixels"`
	AnimationTime  float64         `yaml:"animationTime"`
	TransitionTime float64         `yaml:"transitionTime"`
	Segments       []SegmentConfig `yaml:"segments"`
	Scenes         []SceneConfig   `yaml:"scenes"`
}

// SegmentConfig describes a run of pixels animated as one object.
type SegmentConfig struct {
	Name       string  `yaml:"name"`
	Start      int     `yaml:"start"`
	Length     int     `yaml:"length"`
	Colour     string  `yaml:"colour"`
	Gradient   string  `yaml:"gradient"`
	Brightness float64 `yaml:"brightness"`
}

// SceneConfig is a named set of tweens started together.
type SceneConfig struct {
	Name   string        `yaml:"name"`
	Tweens []TweenConfig `yaml:"tweens"`
}

// TweenConfig describes one clip on a segment. Next is started when the
// clip finishes.
type TweenConfig struct {
	Segment    string       `yaml:"segment"`
	Name       string       `yaml:"name"`
	Property   string       `yaml:"property"`
	From       float64      `yaml:"from"`
	To         float64      `yaml:"to"`
	FromColour string       `yaml:"fromColour"`
	ToColour   string       `yaml:"toColour"`
	Duration   float64      `yaml:"duration"`
	Easing     string       `yaml:"easing"`
	Repeat     bool         `yaml:"repeat"`
	Next       *TweenConfig `yaml:"next"`
}

// ClipName returns the clip name, defaulting to the property.
func (t TweenConfig) ClipName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Property
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	var config Config

	f, err := os.Open(path)
	if err != nil {
		return config, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate fills in defaults and checks that segments and scenes are
// consistent.
func (c *Config) Validate() error {
	if c.FrameRate <= 0 {
		c.FrameRate = 30
	}
	if c.Pixels <= 0 {
		c.Pixels = defaultPixels
	}
	if c.Pixels > 0xffff {
		return fmt.Errorf("pixels %d exceeds frame limit", c.Pixels)
	}
	if c.AnimationTime < 0 {
		return fmt.Errorf("animationTime must not be negative")
	}
	if c.TransitionTime < 0 {
		return fmt.Errorf("transitionTime must not be negative")
	}
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "ledtween"
	}
	if c.Api.Addr == "" {
		c.Api.Addr = ":3000"
	}
	if c.Api.Static == "" {
		c.Api.Static = "client/dist"
	}

	segments := make(map[string]bool, len(c.Segments))
	for i := range c.Segments {
		s := &c.Segments[i]
		if s.Name == "" {
			return fmt.Errorf("segment %d has no name", i)
		}
		if segments[s.Name] {
			return fmt.Errorf("duplicate segment %q", s.Name)
		}
		segments[s.Name] = true

		if s.Start < 0 || s.Length <= 0 || s.Start+s.Length > c.Pixels {
			return fmt.Errorf("segment %q: range [%d,%d) outside %d pixels", s.Name, s.Start, s.Start+s.Length, c.Pixels)
		}
		if s.Colour != "" {
			if _, err := colorful.Hex(s.Colour); err != nil {
				return fmt.Errorf("segment %q colour: %w", s.Name, err)
			}
		}
		if s.Gradient != "" {
			if _, ok := gradients[s.Gradient]; !ok {
				return fmt.Errorf("segment %q: unknown gradient %q", s.Name, s.Gradient)
			}
		}
	}

	scenes := make(map[string]bool, len(c.Scenes))
	for _, scene := range c.Scenes {
		if scene.Name == "" {
			return fmt.Errorf("scene has no name")
		}
		if scenes[scene.Name] {
			return fmt.Errorf("duplicate scene %q", scene.Name)
		}
		scenes[scene.Name] = true

		for _, tw := range scene.Tweens {
			for t := &tw; t != nil; t = t.Next {
				if err := t.validate(segments); err != nil {
					return fmt.Errorf("scene %q: %w", scene.Name, err)
				}
			}
		}
	}
	return nil
}

func (t *TweenConfig) validate(segments map[string]bool) error {
	if !segments[t.Segment] {
		return fmt.Errorf("%w %q", ErrUnknownSegment, t.Segment)
	}
	if t.Duration < 0 {
		return fmt.Errorf("tween %q: duration must not be negative", t.ClipName())
	}
	if _, err := easing.Lookup(t.Easing); err != nil {
		return fmt.Errorf("tween %q: %w", t.ClipName(), err)
	}
	if _, err := PropertyApply(*t); err != nil {
		return fmt.Errorf("tween %q: %w", t.ClipName(), err)
	}
	return nil
}
