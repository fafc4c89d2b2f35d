package stream

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
mqtt:
  url: tcp://localhost:1883
  topics:
    stream: home/tree/stream
    control: home/tree/control
frameRate: 25
pixels: 100
segments:
  - name: all
    start: 0
    length: 100
    colour: "#202020"
scenes:
  - name: glow
    tweens:
      - segment: all
        property: brightness
        from: 0
        to: 1
        duration: 2.5
        easing: pingpong:InOutSine
        next:
          segment: all
          property: colour
          fromColour: "#202020"
          toColour: "#ff8000"
          duration: 1
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Mqtt.Topics.Control != "home/tree/control" || config.FrameRate != 25 || config.Pixels != 100 {
		t.Errorf("unexpected config values: %+v", config)
	}
	if config.Mqtt.ClientID != "ledtween" || config.Api.Addr != ":3000" {
		t.Errorf("defaults not applied: clientID=%q addr=%q", config.Mqtt.ClientID, config.Api.Addr)
	}

	tw := config.Scenes[0].Tweens[0]
	if tw.Duration != 2.5 || tw.Next == nil || tw.Next.ToColour != "#ff8000" {
		t.Errorf("tween chain not decoded: %+v", tw)
	}
	if tw.ClipName() != "brightness" {
		t.Errorf("expected clip name to default to property, got %q", tw.ClipName())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"valid", func(*Config) {}, nil},
		{"segment_out_of_range", func(c *Config) { c.Segments[1].Length = 50 }, nil},
		{"duplicate_segment", func(c *Config) { c.Segments[1].Name = "left" }, nil},
		{"bad_colour", func(c *Config) { c.Segments[0].Colour = "red" }, nil},
		{"unknown_gradient", func(c *Config) { c.Segments[1].Gradient = "plaid" }, nil},
		{"unknown_segment", func(c *Config) { c.Scenes[0].Tweens[1].Segment = "middle" }, ErrUnknownSegment},
		{"unknown_segment_in_chain", func(c *Config) { c.Scenes[0].Tweens[0].Next.Segment = "middle" }, ErrUnknownSegment},
		{"unknown_property", func(c *Config) { c.Scenes[1].Tweens[0].Property = "spin" }, ErrUnknownProperty},
		{"negative_duration", func(c *Config) { c.Scenes[1].Tweens[0].Duration = -1 }, nil},
		{"duplicate_scene", func(c *Config) { c.Scenes[1].Name = "fade" }, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			config := testConfig()
			c.mutate(&config)
			err := config.Validate()

			if c.name == "valid" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			if c.target != nil && !errors.Is(err, c.target) {
				t.Errorf("expected %v, got %v", c.target, err)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	var config Config
	if err := config.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.FrameRate != 30 || config.Pixels != defaultPixels {
		t.Errorf("expected defaults, got frameRate=%v pixels=%d", config.FrameRate, config.Pixels)
	}
}
