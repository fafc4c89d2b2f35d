package stream

import (
	"fmt"
	"log"

	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/tween"
)

// Controller that manages segments and the scenes animating them.
type Controller struct {
	registry *tween.Registry[*Segment]
	segments []*Segment
	handles  map[string]tween.Handle
	scenes   []SceneConfig
	current  int
}

// NewController creates an instance of a Controller with segments from
// config. Its registry is driven by scheduler.
func NewController(config Config, scheduler *tween.Scheduler) *Controller {
	c := new(Controller)
	c.registry = tween.RegistryFor[*Segment](scheduler)
	c.handles = make(map[string]tween.Handle)
	c.scenes = config.Scenes
	c.current = -1

	for _, sc := range config.Segments {
		s := NewSegment(sc)
		c.segments = append(c.segments, s)
		c.handles[s.Name] = c.registry.Track(s)
	}

	return c
}

// PlayScene stops every running clip and starts the tweens of the named
// scene. Each tween starts from its configured From value (or FromColour).
func (c *Controller) PlayScene(name string) error {
	for i, scene := range c.scenes {
		if scene.Name == name {
			return c.playIndex(i)
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownScene, name)
}

// NextScene moves on to the next configured scene, wrapping at the end.
func (c *Controller) NextScene() error {
	if len(c.scenes) == 0 {
		return nil
	}
	return c.playIndex((c.current + 1) % len(c.scenes))
}

// Scene returns the name of the scene playing, or "" before the first.
func (c *Controller) Scene() string {
	if c.current < 0 {
		return ""
	}
	return c.scenes[c.current].Name
}

func (c *Controller) playIndex(i int) error {
	scene := c.scenes[i]
	clips := make([]*tween.Clip[*Segment], 0, len(scene.Tweens))
	for _, tw := range scene.Tweens {
		first, err := c.buildChain(tw)
		if err != nil {
			return fmt.Errorf("scene %q: %w", scene.Name, err)
		}
		clips = append(clips, first)
	}

	for _, h := range c.handles {
		c.registry.StopAll(h)
	}
	for _, clip := range clips {
		c.registry.PlayClip(clip)
	}

	c.current = i
	log.Printf("Playing scene %s (%d tweens)", scene.Name, len(scene.Tweens))
	return nil
}

// buildChain creates the clip for t and every clip chained after it.
func (c *Controller) buildChain(t TweenConfig) (*tween.Clip[*Segment], error) {
	first, err := c.newClip(t)
	if err != nil {
		return nil, err
	}

	prev := first
	for next := t.Next; next != nil; next = next.Next {
		clip, err := c.newClip(*next)
		if err != nil {
			return nil, err
		}
		prev = prev.PlayAfter(clip)
	}
	return first, nil
}

func (c *Controller) newClip(t TweenConfig) (*tween.Clip[*Segment], error) {
	h, ok := c.handles[t.Segment]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSegment, t.Segment)
	}
	curve, err := easing.Lookup(t.Easing)
	if err != nil {
		return nil, err
	}
	apply, err := PropertyApply(t)
	if err != nil {
		return nil, err
	}

	name := t.ClipName()
	clip := c.registry.NewClip(h, name, t.Duration, tween.EasingFunc(curve), apply)
	clip.SetRepeat(t.Repeat).SetEnd(func(s *Segment) {
		log.Printf("Segment %s finished %s", s.Name, name)
	})
	return clip, nil
}

// Render draws every segment into f.
func (c *Controller) Render(f *Frame) {
	for _, s := range c.segments {
		s.Render(f)
	}
}

// Segment looks up a segment by name.
func (c *Controller) Segment(name string) (*Segment, bool) {
	h, ok := c.handles[name]
	if !ok {
		return nil, false
	}
	return c.registry.Target(h)
}

// Animating reports whether the named segment has a clip running.
func (c *Controller) Animating(name string) bool {
	h, ok := c.handles[name]
	return ok && c.registry.HasAnimation(h)
}

// ActiveClips returns the number of clips running across all segments.
func (c *Controller) ActiveClips() int {
	return c.registry.Len()
}
