package background

import "math"

// Easing curve names understood by the browser animation runtime.
const (
	EaseInOut  = "easeInOut"
	EaseOut    = "easeOut"
	EaseLinear = "linear"
)

// Intensity above which the overlay particles appear.
const overlayThreshold = 0.3

// Intensity above which colors switch to their bright variant.
const hotThreshold = 0.5

// Motion is the animation of one element at a given intensity. Peaks are
// the middle keyframe of a rest → peak → rest loop.
type Motion struct {
	Kind    Kind `json:"kind"`
	Index   int  `json:"index"`
	Visible bool `json:"visible"`

	Bob         float64 `json:"bob"`
	Drift       float64 `json:"drift"`
	OpacityBase float64 `json:"opacityBase"`
	OpacityPeak float64 `json:"opacityPeak"`
	ScalePeak   float64 `json:"scalePeak"`
	Rotate      float64 `json:"rotate"`
	Blur        float64 `json:"blur"`
	Duration    float64 `json:"duration"`
	Delay       float64 `json:"delay"`
	Ease        string  `json:"ease"`
	Color       string  `json:"color"`

	PathLength  float64 `json:"pathLength,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
	Trail       float64 `json:"trail,omitempty"`

	// Glow is the brighter twin drawn over a line.
	Glow *Motion `json:"glow,omitempty"`
}

// Animate scales the base animation of e by intensity. Intensity is clamped
// to [0, 1] so durations stay positive whatever the caller passes.
func Animate(e Element, intensity float64, dark bool) Motion {
	v := clamp01(intensity)
	m := e.VelocityMultiplier
	hot := v > hotThreshold

	mo := Motion{
		Kind:    e.Kind,
		Index:   e.Index,
		Visible: true,
		Delay:   e.Delay,
		Ease:    easeAbove(v, 0.3, EaseInOut),
	}

	switch e.Kind {
	case KindParticle:
		mo.Bob = -40 * (1 + v*m)
		mo.Drift = e.Drift * (1 + v*m)
		mo.OpacityBase = 0.2
		mo.OpacityPeak = capOpacity(0.8 * (1 + v*0.5))
		mo.ScalePeak = 1.3 * (1 + v*m*0.5)
		mo.Rotate = 360 * v * m
		mo.Blur = v * 2
		mo.Duration = e.Duration * (1 - v*0.3)
		mo.Color = particleColor(e.Variant, dark)

	case KindShape:
		mo.Rotate = 360 * (1 + v*m)
		mo.Bob = -25 * (1 + v*m)
		mo.OpacityBase = 0.1
		mo.OpacityPeak = capOpacity(0.4 * (1 + v*0.5))
		mo.ScalePeak = 1.1 * (1 + v*m*0.3)
		mo.Blur = v * m * 1.5
		mo.Duration = e.Duration * (1 - v*0.4)
		mo.Ease = easeAbove(v, 0.2, EaseLinear)
		mo.Color = borderColor(dark, hot)

	case KindLine:
		mo.PathLength = 1 + v*m
		mo.OpacityPeak = capOpacity(0.4 * (1 + v*0.8))
		mo.ScalePeak = 1
		mo.StrokeWidth = 1 + v*2
		mo.Blur = v * 1.5
		mo.Duration = e.Duration * (1 - v*0.5)
		mo.Color = lineColor(dark)
		if e.Variant == VariantGlow || v > 0.4 {
			mo.Glow = &Motion{
				Kind:        e.Kind,
				Index:       e.Index,
				Visible:     true,
				PathLength:  1 + v*m*1.5,
				OpacityPeak: capOpacity(0.6 * (1 + v)),
				ScalePeak:   1,
				StrokeWidth: 2 + v*3,
				Blur:        1 + v*2,
				Duration:    e.GlowDuration * (1 - v*0.6),
				Delay:       e.GlowDelay,
				Ease:        easeAbove(v, 0.4, EaseInOut),
				Color:       glowLineColor(dark, hot),
			}
		}

	case KindOrb:
		mo.ScalePeak = 1.2 * (1 + v*0.5)
		mo.OpacityBase = 0.1
		mo.OpacityPeak = capOpacity(0.3 * (1 + v*0.7))
		mo.Rotate = 180 * v
		mo.Blur = 10 + v*5
		mo.Duration = e.Duration * (1 - v*0.3)
		mo.Color = orbGradient(dark, hot)

	case KindStar:
		mo.Drift = 200 * (1 + v*2)
		mo.Bob = 100 * (1 + v*1.5)
		mo.OpacityPeak = capOpacity(1 + v*0.5)
		mo.ScalePeak = 1 + v
		mo.Trail = 20 + v*40
		mo.Duration = e.Duration * (1 - v*0.5)
		mo.Ease = EaseOut
		mo.Color = starColor(dark, hot)

	case KindVelocityParticle:
		mo.Visible = v > overlayThreshold
		mo.ScalePeak = v * 2
		mo.OpacityPeak = v
		mo.Bob = -50 * v
		mo.Drift = e.Drift * v
		mo.Duration = e.Duration
		mo.Ease = EaseOut
		mo.Color = overlayColor(dark)
	}
	return mo
}

// OverlayVisible reports whether the velocity overlay group is shown.
func OverlayVisible(intensity float64) bool {
	return intensity > overlayThreshold
}

func easeAbove(v, threshold float64, calm string) string {
	if v > threshold {
		return EaseOut
	}
	return calm
}

func capOpacity(o float64) float64 {
	return math.Min(o, 1)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(v, 1)
}
