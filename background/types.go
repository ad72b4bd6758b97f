package background

import "fmt"

// Kind identifies a family of decorative elements.
type Kind int

const (
	KindParticle Kind = iota
	KindShape
	KindLine
	KindOrb
	KindStar
	KindVelocityParticle
)

var kindNames = [...]string{"particle", "shape", "line", "orb", "star", "velocity-particle"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText lets kinds appear by name in JSON.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown element kind %q", text)
}

// Layer is the parallax depth tier of an element.
type Layer int

const (
	LayerSlow Layer = iota
	LayerMedium
	LayerFast
)

// Valid reports whether l is one of the three known tiers.
func (l Layer) Valid() bool {
	return l >= LayerSlow && l <= LayerFast
}

// depth is the offset (px) reached at the end of the parallax range.
func (l Layer) depth() float64 {
	switch l {
	case LayerMedium:
		return -200
	case LayerFast:
		return -300
	default:
		return -100
	}
}

// Variant selects the rendering style of particles and lines.
type Variant string

const (
	VariantNormal Variant = "normal"
	VariantGlow   Variant = "glow"
)

// Corner is the border radius style of a geometric shape.
type Corner string

const (
	CornerCircle  Corner = "50%"
	CornerSquare  Corner = "0%"
	CornerRounded Corner = "25%"
)

// Element holds the static attributes of one decorative element. Positions
// are percentages of the container, sizes are pixels, times are seconds.
type Element struct {
	Kind  Kind    `json:"kind"`
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	// X2 and Y2 are the far end of a line.
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	Size     float64 `json:"size,omitempty"`
	Duration float64 `json:"duration"`
	Delay    float64 `json:"delay"`
	Layer    Layer   `json:"layer"`
	Variant  Variant `json:"variant"`

	VelocityMultiplier float64 `json:"velocityMultiplier"`

	Corner Corner `json:"corner,omitempty"`
	// Drift is the horizontal travel (px at full intensity) of overlay
	// particles and the base sway of regular particles.
	Drift float64 `json:"drift,omitempty"`
	// GlowDuration and GlowDelay time the glow twin of a line.
	GlowDuration float64 `json:"glowDuration,omitempty"`
	GlowDelay    float64 `json:"glowDelay,omitempty"`
}

// Counts is the number of elements generated per kind.
type Counts struct {
	Particles         int `json:"particles" yaml:"particles"`
	Shapes            int `json:"shapes" yaml:"shapes"`
	Lines             int `json:"lines" yaml:"lines"`
	Orbs              int `json:"orbs" yaml:"orbs"`
	Stars             int `json:"stars" yaml:"stars"`
	VelocityParticles int `json:"velocityParticles" yaml:"velocity_particles"`
}

// DefaultCounts matches the hero section layout.
func DefaultCounts() Counts {
	return Counts{
		Particles:         70,
		Shapes:            15,
		Lines:             25,
		Orbs:              8,
		Stars:             6,
		VelocityParticles: 20,
	}
}

func (c Counts) of(k Kind) int {
	switch k {
	case KindParticle:
		return c.Particles
	case KindShape:
		return c.Shapes
	case KindLine:
		return c.Lines
	case KindOrb:
		return c.Orbs
	case KindStar:
		return c.Stars
	case KindVelocityParticle:
		return c.VelocityParticles
	}
	return 0
}

// Total is the number of elements across all kinds.
func (c Counts) Total() int {
	return c.Particles + c.Shapes + c.Lines + c.Orbs + c.Stars + c.VelocityParticles
}
