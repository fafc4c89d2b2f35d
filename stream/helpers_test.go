package stream

import (
	"math"
	"sync"
)

func testConfig() Config {
	var config Config
	config.Mqtt.Topics.Stream = "test/stream"
	config.Pixels = 20
	config.FrameRate = 10
	config.Segments = []SegmentConfig{
		{Name: "left", Start: 0, Length: 10, Colour: "#ff0000"},
		{Name: "right", Start: 10, Length: 10, Gradient: "rainbow"},
	}
	config.Scenes = []SceneConfig{
		{
			Name: "fade",
			Tweens: []TweenConfig{
				{
					Segment: "left", Property: "brightness", From: 0, To: 1, Duration: 1,
					Next: &TweenConfig{Segment: "left", Name: "dim", Property: "brightness", From: 1, To: 0.5, Duration: 1},
				},
				{Segment: "right", Property: "fill", From: 0, To: 1, Duration: 2, Easing: "InQuad"},
			},
		},
		{
			Name: "spin",
			Tweens: []TweenConfig{
				{Segment: "right", Property: "offset", From: 0, To: 1, Duration: 1, Repeat: true},
			},
		},
	}
	return config
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

type fakePublisher struct {
	mu       sync.Mutex
	topics   []string
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}
