package core

import "time"

// Clock reports monotonic elapsed seconds. Consecutive reads are used to
// derive per-frame deltas, so implementations need not tick regularly.
type Clock interface {
	Elapsed() float64
}

// FrameGate is asked before every frame whether the loop should continue.
type FrameGate interface {
	StartFrame() bool
}

// WallClock measures real time since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a wall clock at the current instant.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Elapsed returns seconds since the clock was created.
func (c *WallClock) Elapsed() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock only moves when told to.
type ManualClock struct {
	now float64
}

// Elapsed returns the current manual time.
func (c *ManualClock) Elapsed() float64 {
	return c.now
}

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) {
	c.now += dt
}

// StepClock advances by a fixed dt on every StartFrame and stops after a
// frame budget. It serves as both Clock and FrameGate for headless runs.
type StepClock struct {
	ManualClock
	Step   float64
	Frames int // remaining frames; the gate closes at zero
}

// NewStepClock creates a clock ticking at the given rate for n frames.
func NewStepClock(tickRate, frames int) *StepClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &StepClock{
		Step:   1.0 / float64(tickRate),
		Frames: frames,
	}
}

// StartFrame advances the clock by one step while frames remain.
func (c *StepClock) StartFrame() bool {
	if c.Frames <= 0 {
		return false
	}
	c.Frames--
	c.Advance(c.Step)
	return true
}
