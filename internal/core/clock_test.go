package core

import (
	"math"
	"testing"
	"time"
)

func TestFixedStep(t *testing.T) {
	step := StepForRate(50)
	if got := step.Elapsed(); got != 0.02 {
		t.Errorf("Elapsed() = %v, expected 0.02", got)
	}

	if got := StepForRate(0).Elapsed(); math.Abs(got-1.0/60) > 1e-12 {
		t.Errorf("zero rate should default to 60 ticks, got step %v", got)
	}

	if got := FixedStep(-1).Elapsed(); got != 0 {
		t.Errorf("negative step should clamp to 0, got %v", got)
	}
}

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(60)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	c.Mark(start)
	if got := c.Elapsed(); math.Abs(got-1.0/60) > 1e-12 {
		t.Errorf("first mark should report one tick, got %v", got)
	}

	c.Mark(start.Add(250 * time.Millisecond))
	if got := c.Elapsed(); got != 0.25 {
		t.Errorf("Elapsed() = %v, expected 0.25", got)
	}

	// A stalled frontend still produces a single step
	c.Mark(start.Add(2250 * time.Millisecond))
	if got := c.Elapsed(); got != 2 {
		t.Errorf("Elapsed() = %v, expected 2", got)
	}

	// Time going backwards never yields a negative step
	c.Mark(start)
	if got := c.Elapsed(); got != 0 {
		t.Errorf("backwards clock should report 0, got %v", got)
	}

	c.Reset()
	c.Mark(start.Add(time.Hour))
	if got := c.Elapsed(); math.Abs(got-1.0/60) > 1e-12 {
		t.Errorf("mark after Reset should report one tick, got %v", got)
	}
}

func TestSanitizeDelta(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0.016, 0.016},
		{0, 0},
		{-0.5, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}

	for _, tc := range tests {
		if got := SanitizeDelta(tc.in); got != tc.expected {
			t.Errorf("SanitizeDelta(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}
