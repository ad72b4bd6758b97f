package background

import (
	"math/rand/v2"
	"slices"
	"sync"
)

// DefaultSeed keeps the arrangement identical across restarts unless
// configured otherwise.
const DefaultSeed uint64 = 9301

// Generate derives the static attributes of element index of kind k. The
// result depends only on (seed, k, index): every call with the same inputs
// returns the same element, whatever the total count is.
func Generate(seed uint64, k Kind, index int) Element {
	rng := rand.New(rand.NewPCG(seed, uint64(k)<<32|uint64(uint32(index))))
	e := Element{Kind: k, Index: index, Variant: VariantNormal, VelocityMultiplier: 1}

	switch k {
	case KindParticle:
		e.X = between(rng, 0, 100)
		e.Y = between(rng, 0, 100)
		e.Size = between(rng, 1, 7)
		e.Duration = between(rng, 15, 40)
		e.Delay = between(rng, 0, 8)
		e.Layer = Layer(rng.IntN(3))
		if rng.Float64() < 0.3 {
			e.Variant = VariantGlow
		}
		e.VelocityMultiplier = between(rng, 0.5, 1)
		e.Drift = between(rng, -30, 30)

	case KindShape:
		e.X = between(rng, 5, 90)
		e.Y = between(rng, 5, 90)
		e.Size = between(rng, 25, 75)
		e.Duration = between(rng, 15, 35)
		e.Layer = Layer(rng.IntN(3))
		e.VelocityMultiplier = between(rng, 0.2, 1)
		e.Corner = [...]Corner{CornerCircle, CornerSquare, CornerRounded}[slot(index, 3)]

	case KindLine:
		e.X = between(rng, 0, 100)
		e.Y = between(rng, 0, 100)
		e.X2 = between(rng, 0, 100)
		e.Y2 = between(rng, 0, 100)
		e.Duration = between(rng, 6, 16)
		e.Delay = between(rng, 0, 4)
		e.Layer = Layer(rng.IntN(3))
		e.VelocityMultiplier = between(rng, 0.4, 1)
		if rng.Float64() < 0.4 {
			e.Variant = VariantGlow
		}
		e.GlowDuration = between(rng, 4, 12)
		e.GlowDelay = between(rng, 0, 3)

	case KindOrb:
		e.X = between(rng, 10, 90)
		e.Y = between(rng, 10, 90)
		e.Size = between(rng, 100, 300)
		e.Duration = between(rng, 10, 25)
		e.Layer = Layer(slot(index, 2))

	case KindStar:
		e.X = between(rng, 0, 100)
		e.Y = between(rng, 0, 100)
		e.Duration = 3
		e.Delay = float64(slot(index, 16))*2 + between(rng, 0, 5)
		e.Layer = LayerFast

	case KindVelocityParticle:
		e.X = between(rng, 0, 100)
		e.Y = between(rng, 0, 100)
		e.Drift = between(rng, -100, 100)
		e.Delay = between(rng, 0, 2)
		e.Duration = 1
	}
	return e
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// slot folds any index, negative ones included, into [0, n).
func slot(index, n int) int {
	return ((index % n) + n) % n
}

// Config controls layout generation.
type Config struct {
	Seed   uint64 `json:"seed" yaml:"seed"`
	Counts Counts `json:"counts" yaml:"counts"`
}

// DefaultConfig returns the default seed and counts.
func DefaultConfig() Config {
	return Config{Seed: DefaultSeed, Counts: DefaultCounts()}
}

// Generator builds the layout once and hands out copies of it.
type Generator struct {
	cfg      Config
	once     sync.Once
	elements []Element
}

// NewGenerator creates a generator. Nothing is computed until the layout is
// first requested.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Config returns the generator configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Elements returns the full layout in kind order.
func (g *Generator) Elements() []Element {
	g.once.Do(g.build)
	return slices.Clone(g.elements)
}

// ByKind returns the elements of a single kind.
func (g *Generator) ByKind(k Kind) []Element {
	g.once.Do(g.build)
	var out []Element
	for _, e := range g.elements {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

func (g *Generator) build() {
	kinds := []Kind{KindParticle, KindShape, KindLine, KindOrb, KindStar, KindVelocityParticle}
	g.elements = make([]Element, 0, max(g.cfg.Counts.Total(), 0))
	for _, k := range kinds {
		for i := 0; i < g.cfg.Counts.of(k); i++ {
			g.elements = append(g.elements, Generate(g.cfg.Seed, k, i))
		}
	}
}
