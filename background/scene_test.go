package background

import (
	"math"
	"testing"
	"time"
)

func TestVelocityTracker(t *testing.T) {
	var tr VelocityTracker
	start := time.Unix(0, 0)

	if v := tr.Sample(0, start); v != 0 {
		t.Fatalf("Expected 0 on the first sample, got %v", v)
	}
	if v := tr.Sample(100, start.Add(50*time.Millisecond)); math.Abs(v-2000) > 1e-6 {
		t.Fatalf("Expected 2000 px/s, got %v", v)
	}
	if v := tr.Sample(90, start.Add(60*time.Millisecond)); math.Abs(v+1000) > 1e-6 {
		t.Fatalf("Expected -1000 px/s, got %v", v)
	}
	// Same timestamp: offset moves, velocity holds.
	if v := tr.Sample(80, start.Add(60*time.Millisecond)); math.Abs(v+1000) > 1e-6 {
		t.Fatalf("Expected velocity to hold at -1000 px/s, got %v", v)
	}
	if tr.Offset() != 80 {
		t.Errorf("Expected offset 80, got %v", tr.Offset())
	}
	// Older sample: ignored, offset and velocity both hold.
	if v := tr.Sample(0, start.Add(10*time.Millisecond)); math.Abs(v+1000) > 1e-6 {
		t.Fatalf("Expected an out-of-order sample to be ignored, got %v", v)
	}
	if tr.Offset() != 80 {
		t.Errorf("Expected offset to stay 80, got %v", tr.Offset())
	}
	// Next sample measures from the last accepted one: 20px over 20ms.
	if v := tr.Sample(100, start.Add(80*time.Millisecond)); math.Abs(v-1000) > 1e-6 {
		t.Fatalf("Expected 1000 px/s, got %v", v)
	}
	if v := tr.Velocity(start.Add(150 * time.Millisecond)); math.Abs(v-1000) > 1e-6 {
		t.Errorf("Expected 1000 px/s inside the idle window, got %v", v)
	}
	if v := tr.Velocity(start.Add(time.Second)); v != 0 {
		t.Errorf("Expected velocity to decay to 0 after idling, got %v", v)
	}
}

func TestSceneHydrationGate(t *testing.T) {
	s := NewScene(NewGenerator(DefaultConfig()))

	f := s.Frame(false)
	if f.Hydrated || len(f.Elements) != 0 {
		t.Fatalf("Expected no elements before hydration, got %d", len(f.Elements))
	}

	s.Hydrate()
	s.Hydrate()
	if !s.Hydrated() {
		t.Fatal("Expected scene to be hydrated")
	}
	f = s.Frame(false)
	if len(f.Elements) != DefaultCounts().Total() {
		t.Errorf("Expected %d elements after hydration, got %d", DefaultCounts().Total(), len(f.Elements))
	}
}

func TestSceneScrollDrivesIntensity(t *testing.T) {
	s := NewScene(NewGenerator(DefaultConfig()))
	s.Hydrate()
	start := time.Unix(100, 0)

	s.Scroll(0, start)
	got := s.Scroll(150, start.Add(100*time.Millisecond)) // 1500 px/s
	if math.Abs(got-(0.5+1000.0/1500*0.5)) > 1e-9 {
		t.Errorf("Expected intensity %v, got %v", 0.5+1000.0/1500*0.5, got)
	}

	f := s.Frame(true)
	if !f.Overlay {
		t.Error("Expected overlay while scrolling fast")
	}
	if f.ScrollY != 150 {
		t.Errorf("Expected scrollY 150, got %v", f.ScrollY)
	}
	if math.Abs(f.Parallax.Fast+45) > 1e-9 {
		t.Errorf("Expected fast parallax -45, got %v", f.Parallax.Fast)
	}

	if got := s.Settle(start.Add(2 * time.Second)); got != 0 {
		t.Errorf("Expected intensity 0 once settled, got %v", got)
	}
	if s.Frame(true).Overlay {
		t.Error("Expected overlay hidden at rest")
	}
}

func TestRenderWithoutElements(t *testing.T) {
	f := Render(nil, -2000, 200, false)
	if f.Hydrated {
		t.Error("Expected an unhydrated frame")
	}
	if f.Intensity != 1 {
		t.Errorf("Expected intensity 1, got %v", f.Intensity)
	}
	if math.Abs(f.Parallax.Slow+20) > 1e-9 || math.Abs(f.Parallax.Medium+40) > 1e-9 || math.Abs(f.Parallax.Fast+60) > 1e-9 {
		t.Errorf("Unexpected parallax %+v", f.Parallax)
	}
}
