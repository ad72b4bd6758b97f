package background

import "math"

// Knots of the scroll-velocity to intensity curve, in px/s.
var (
	velocityKnots   = []float64{-2000, -500, 0, 500, 2000}
	intensityValues = []float64{1, 0.5, 0, 0.5, 1}
)

// Scroll offsets (px) over which the parallax and fade curves run.
const (
	parallaxRange = 1000
	scaleRange    = 500
	fadeRange     = 400
)

// Interpolate maps x through the piecewise-linear curve (xs, ys).
// Inputs outside [xs[0], xs[len-1]] are clamped to the end values.
// xs must be ascending and the same length as ys.
func Interpolate(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return 0
	}
	if math.IsNaN(x) || x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	for i := 1; i < n; i++ {
		if x > xs[i] {
			continue
		}
		span := xs[i] - xs[i-1]
		if span == 0 {
			return ys[i]
		}
		t := (x - xs[i-1]) / span
		return ys[i-1] + t*(ys[i]-ys[i-1])
	}
	return ys[n-1]
}

// Intensity converts a scroll velocity into the [0, 1] factor that scales
// every decorative animation. Fast scrolling in either direction pushes it
// toward 1, rest brings it to 0.
func Intensity(velocity float64) float64 {
	if math.IsNaN(velocity) {
		return 0
	}
	v := math.Abs(Interpolate(velocity, velocityKnots, intensityValues))
	return math.Min(v, 1)
}

// ParallaxOffset returns the vertical offset (px) of an element on the given
// layer for a scroll offset. Unknown layers use the slow curve.
func ParallaxOffset(layer Layer, scrollY float64) float64 {
	return Interpolate(scrollY, []float64{0, parallaxRange}, []float64{0, layer.depth()})
}

// ScrollRotation spins shapes one full turn over the parallax range.
func ScrollRotation(scrollY float64) float64 {
	return Interpolate(scrollY, []float64{0, parallaxRange}, []float64{0, 360})
}

// ScrollScale shrinks shapes and orbs as the hero scrolls away.
func ScrollScale(scrollY float64) float64 {
	return Interpolate(scrollY, []float64{0, scaleRange}, []float64{1, 0.8})
}

// ScrollOpacity fades the whole background as the hero scrolls away.
func ScrollOpacity(scrollY float64) float64 {
	return Interpolate(scrollY, []float64{0, fadeRange}, []float64{1, 0.3})
}

// VelocityScale swells particles while the page is moving.
func VelocityScale(velocity float64) float64 {
	return Interpolate(velocity, []float64{-1000, 0, 1000}, []float64{1.3, 1, 1.3})
}

// VelocityRotation tilts particles in the scroll direction.
func VelocityRotation(velocity float64) float64 {
	return Interpolate(velocity, []float64{-1000, 0, 1000}, []float64{-180, 0, 180})
}
