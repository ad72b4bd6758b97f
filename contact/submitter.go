package contact

import (
	"context"
	"log"
	"time"
)

// DefaultDelay is how long the simulated submission takes.
const DefaultDelay = 2 * time.Second

// Submitter delivers a validated message. There is no real delivery
// backend; Simulated is the only implementation.
type Submitter interface {
	Submit(ctx context.Context, v Values) error
}

// Simulated pretends to send the message by waiting for Delay.
type Simulated struct {
	Delay time.Duration
}

// Submit waits for the configured delay or until ctx is done.
func (s Simulated) Submit(ctx context.Context, v Values) error {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		log.Printf("Contact message accepted (%d chars)", len(v.Message))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
