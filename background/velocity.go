package background

import "time"

// DefaultIdle is how long the page may go without a scroll sample before
// it is considered at rest.
const DefaultIdle = 100 * time.Millisecond

// VelocityTracker derives the scroll velocity (px/s) from successive scroll
// offsets. It is not safe for concurrent use.
type VelocityTracker struct {
	Idle time.Duration

	has      bool
	last     float64
	lastAt   time.Time
	velocity float64
}

// Sample records the scroll offset observed at the given time and returns
// the updated velocity. A sample taken at the same instant as the previous
// one replaces its offset; a sample older than the previous one is ignored.
func (t *VelocityTracker) Sample(offset float64, at time.Time) float64 {
	if !t.has {
		t.has = true
		t.last, t.lastAt = offset, at
		return 0
	}
	dt := at.Sub(t.lastAt).Seconds()
	switch {
	case dt < 0:
		return t.velocity
	case dt > 0:
		t.velocity = (offset - t.last) / dt
	}
	t.last, t.lastAt = offset, at
	return t.velocity
}

// Velocity returns the current velocity, or zero once the idle window since
// the last sample has elapsed.
func (t *VelocityTracker) Velocity(now time.Time) float64 {
	idle := t.Idle
	if idle <= 0 {
		idle = DefaultIdle
	}
	if !t.has || now.Sub(t.lastAt) > idle {
		return 0
	}
	return t.velocity
}

// Offset returns the last sampled scroll offset.
func (t *VelocityTracker) Offset() float64 {
	return t.last
}
