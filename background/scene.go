package background

import "time"

// Parallax holds the vertical offset of each layer.
type Parallax struct {
	Slow   float64 `json:"slow"`
	Medium float64 `json:"medium"`
	Fast   float64 `json:"fast"`
}

// Frame is everything the browser needs to draw the background at one
// moment.
type Frame struct {
	Hydrated  bool     `json:"hydrated"`
	ScrollY   float64  `json:"scrollY"`
	Velocity  float64  `json:"velocity"`
	Intensity float64  `json:"intensity"`
	Parallax  Parallax `json:"parallax"`

	Rotation         float64 `json:"rotation"`
	Scale            float64 `json:"scale"`
	Opacity          float64 `json:"opacity"`
	VelocityScale    float64 `json:"velocityScale"`
	VelocityRotation float64 `json:"velocityRotation"`
	Overlay          bool    `json:"overlay"`

	Elements []Motion `json:"elements,omitempty"`
}

// Render computes a frame for the given elements. A nil element slice
// yields a frame with the global transforms only.
func Render(elements []Element, velocity, scrollY float64, dark bool) Frame {
	intensity := Intensity(velocity)
	f := Frame{
		Hydrated:  elements != nil,
		ScrollY:   scrollY,
		Velocity:  velocity,
		Intensity: intensity,
		Parallax: Parallax{
			Slow:   ParallaxOffset(LayerSlow, scrollY),
			Medium: ParallaxOffset(LayerMedium, scrollY),
			Fast:   ParallaxOffset(LayerFast, scrollY),
		},
		Rotation:         ScrollRotation(scrollY),
		Scale:            ScrollScale(scrollY),
		Opacity:          ScrollOpacity(scrollY),
		VelocityScale:    VelocityScale(velocity),
		VelocityRotation: VelocityRotation(velocity),
		Overlay:          OverlayVisible(intensity),
	}
	if len(elements) > 0 {
		f.Elements = make([]Motion, 0, len(elements))
		for _, e := range elements {
			f.Elements = append(f.Elements, Animate(e, intensity, dark))
		}
	}
	return f
}

// Scene tracks one browser session. It produces no elements until Hydrate
// is called, so the first server render and the first client render agree.
// A Scene is owned by a single goroutine.
type Scene struct {
	gen      *Generator
	tracker  VelocityTracker
	elements []Element
	velocity float64
}

// NewScene creates an unhydrated scene backed by gen.
func NewScene(gen *Generator) *Scene {
	return &Scene{gen: gen}
}

// Hydrate marks the client as ready and loads the layout. Calling it again
// has no effect.
func (s *Scene) Hydrate() {
	if s.elements == nil {
		s.elements = s.gen.Elements()
	}
}

// Hydrated reports whether Hydrate has been called.
func (s *Scene) Hydrated() bool {
	return s.elements != nil
}

// Scroll records a scroll offset and returns the new intensity.
func (s *Scene) Scroll(offset float64, at time.Time) float64 {
	s.velocity = s.tracker.Sample(offset, at)
	return Intensity(s.velocity)
}

// Settle lets the velocity fall back to zero when scrolling has stopped.
// It returns the intensity after settling.
func (s *Scene) Settle(now time.Time) float64 {
	s.velocity = s.tracker.Velocity(now)
	return Intensity(s.velocity)
}

// Intensity returns the current intensity factor.
func (s *Scene) Intensity() float64 {
	return Intensity(s.velocity)
}

// ScrollY returns the last known scroll offset.
func (s *Scene) ScrollY() float64 {
	return s.tracker.Offset()
}

// Frame renders the scene for the given theme.
func (s *Scene) Frame(dark bool) Frame {
	return Render(s.elements, s.velocity, s.tracker.Offset(), dark)
}

// Transforms renders the global transforms only, without the per-element
// animation, for frames where the intensity has not visibly changed.
func (s *Scene) Transforms(dark bool) Frame {
	f := Render(nil, s.velocity, s.tracker.Offset(), dark)
	f.Hydrated = s.Hydrated()
	return f
}
