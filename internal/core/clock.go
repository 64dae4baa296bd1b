package core

import (
	"math"
	"time"
)

// TimeSource supplies the elapsed seconds to apply on the next tick.
// Implementations never return a negative value.
type TimeSource interface {
	Elapsed() float64
}

// FixedStep is a TimeSource that always reports the same step.
// Frontends with a fixed update rate (and tests) use it.
type FixedStep float64

// StepForRate returns the FixedStep for a tick rate, defaulting to 60.
func StepForRate(tickRate int) FixedStep {
	if tickRate <= 0 {
		tickRate = 60
	}
	return FixedStep(1.0 / float64(tickRate))
}

// Elapsed returns the configured step.
func (s FixedStep) Elapsed() float64 {
	return SanitizeDelta(float64(s))
}

// FrameClock derives elapsed time from the timestamps of successive frames.
// The first frame reports the fallback step because there is nothing to
// measure against.
type FrameClock struct {
	fallback float64
	last     time.Time
	delta    float64
}

// NewFrameClock creates a clock whose first delta is one tick at tickRate.
func NewFrameClock(tickRate int) *FrameClock {
	return &FrameClock{fallback: float64(StepForRate(tickRate))}
}

// Mark records a frame timestamp and updates the elapsed value.
func (c *FrameClock) Mark(t time.Time) {
	if c.last.IsZero() {
		c.delta = c.fallback
	} else {
		c.delta = SanitizeDelta(t.Sub(c.last).Seconds())
	}
	c.last = t
}

// Reset forgets the previous timestamp, so the next Mark reports the
// fallback step. Used after pauses and restarts.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
	c.delta = 0
}

// Elapsed returns the seconds between the last two marks.
func (c *FrameClock) Elapsed() float64 {
	return c.delta
}

// SanitizeDelta clamps a time step to a finite, non-negative value.
// Negative, NaN and infinite steps become 0.
func SanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}
