package stream

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledtween/tween"
)

// Publisher sends a payload to a topic.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

type mqttPublisher struct {
	client mqtt.Client
}

func (p mqttPublisher) Publish(topic string, payload []byte) error {
	token := p.client.Publish(topic, 0, false, payload)
	token.Wait()
	return token.Error()
}

// ControlMessage is received on the control topic.
type ControlMessage struct {
	Type  string `json:"type"`
	Scene string `json:"scene,omitempty"`
}

// Status is a snapshot of the streamer for reporting.
type Status struct {
	Scene       string `json:"scene"`
	Paused      bool   `json:"paused"`
	ActiveClips int    `json:"activeClips"`
	Frames      uint64 `json:"frames"`
}

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	config     Config
	client     mqtt.Client
	publisher  Publisher
	clock      *tween.PausableClock
	scheduler  *tween.Scheduler
	controller *Controller
	frame      *Frame
	control    chan ControlMessage

	// Cross-fade from the last frame of the previous scene.
	fadeFrom            *Frame
	transition          float64
	transitionIncrement float64

	mu     sync.RWMutex
	status Status
}

// NewStreamer creates an instance of a Streamer publishing through client.
func NewStreamer(config Config, client mqtt.Client) *Streamer {
	s := newStreamer(config, mqttPublisher{client}, tween.NewSystemClock())
	s.client = client
	return s
}

func newStreamer(config Config, publisher Publisher, clock tween.Clock) *Streamer {
	s := new(Streamer)
	s.config = config
	s.publisher = publisher
	s.clock = tween.NewPausableClock(clock)
	s.scheduler = tween.NewScheduler(s.clock)
	s.controller = NewController(config, s.scheduler)
	s.frame = NewFrame(config.Pixels)
	s.control = make(chan ControlMessage, 16)
	if config.TransitionTime > 0 && config.FrameRate > 0 {
		s.transitionIncrement = 1.0 / (config.FrameRate * config.TransitionTime)
	}

	return s
}

// Controller returns the controller animating the streamer's segments.
func (s *Streamer) Controller() *Controller {
	return s.controller
}

// Status returns the latest snapshot. It is safe to call from any goroutine.
func (s *Streamer) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// SendFrame advances every animation by one frame and publishes the result.
func (s *Streamer) SendFrame() error {
	s.scheduler.Step()

	s.frame.Clear()
	s.controller.Render(s.frame)

	f := s.frame
	if s.fadeFrom != nil {
		f = s.fadeFrom.InterpolateFrame(s.frame, s.transition)
		s.transition += s.transitionIncrement
		if s.transition >= 1.0 {
			s.fadeFrom = nil
			s.transition = 0.0
		}
	}

	b, err := f.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal frame: %w", err)
	}
	if err := s.publisher.Publish(s.config.Mqtt.Topics.Stream, b); err != nil {
		return fmt.Errorf("publish frame: %w", err)
	}

	s.mu.Lock()
	s.status.Frames++
	s.status.Scene = s.controller.Scene()
	s.status.Paused = s.clock.Paused()
	s.status.ActiveClips = s.controller.ActiveClips()
	s.mu.Unlock()
	return nil
}

// Subscribe listens for control messages.
func (s *Streamer) Subscribe() {
	topic := s.config.Mqtt.Topics.Control
	if topic == "" || s.client == nil {
		return
	}
	if token := s.client.Subscribe(topic, 0, s.handleControlMessage); token.Wait() && token.Error() != nil {
		log.Printf("Subscribe to %s failed: %v", topic, token.Error())
	}
}

func (s *Streamer) handleControlMessage(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())
	s.Control(msg.Payload())
}

// Control queues a JSON control message for the frame loop. Messages that
// cannot be parsed, or that arrive while the queue is full, are dropped.
func (s *Streamer) Control(payload []byte) {
	var message ControlMessage
	if err := json.Unmarshal(payload, &message); err != nil {
		log.Printf("Bad control message: %v", err)
		return
	}

	select {
	case s.control <- message:
	default:
		log.Printf("Control queue full, dropping %s", message.Type)
	}
}

// apply runs a control message on the frame loop goroutine.
func (s *Streamer) apply(message ControlMessage) {
	var err error
	switch message.Type {
	case "pause":
		s.clock.Pause()
	case "resume":
		s.clock.Resume()
	case "scene":
		err = s.switchScene(func() error { return s.controller.PlayScene(message.Scene) })
	case "next":
		err = s.switchScene(s.controller.NextScene)
	default:
		err = fmt.Errorf("unknown control type %q", message.Type)
	}

	if err != nil {
		log.Printf("Control %s: %v", message.Type, err)
	}
}

// switchScene runs change and, when it succeeds after at least one frame has
// been sent, fades from the last frame into the new scene.
func (s *Streamer) switchScene(change func() error) error {
	if err := change(); err != nil {
		return err
	}
	if s.transitionIncrement > 0 && s.Status().Frames > 0 {
		s.fadeFrom = s.frame.Clone()
		s.transition = 0.0
	}
	return nil
}

// Run sends frames at the configured rate until stop is closed, cycling
// scenes every AnimationTime seconds when that is set.
func (s *Streamer) Run(stop <-chan struct{}) {
	if err := s.controller.NextScene(); err != nil {
		log.Printf("Start scene: %v", err)
	}

	publishTimer := time.NewTicker(time.Duration(float64(time.Second) / s.config.FrameRate))
	defer publishTimer.Stop()

	var cycle <-chan time.Time
	if s.config.AnimationTime > 0 {
		sceneTimer := time.NewTicker(time.Duration(s.config.AnimationTime * float64(time.Second)))
		defer sceneTimer.Stop()
		cycle = sceneTimer.C
	}

	for {
		select {
		case <-stop:
			return
		case <-publishTimer.C:
			if err := s.SendFrame(); err != nil {
				log.Println(err)
			}
		case <-cycle:
			if !s.clock.Paused() {
				if err := s.switchScene(s.controller.NextScene); err != nil {
					log.Printf("Cycle scene: %v", err)
				}
			}
		case message := <-s.control:
			s.apply(message)
		}
	}
}
