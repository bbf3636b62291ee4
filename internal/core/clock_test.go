package core

import "testing"

func TestManualClock(t *testing.T) {
	var c ManualClock
	if c.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, expected 0", c.Elapsed())
	}
	c.Advance(1.5)
	c.Advance(0.5)
	if c.Elapsed() != 2 {
		t.Errorf("Elapsed() = %v, expected 2", c.Elapsed())
	}
}

func TestStepClockGate(t *testing.T) {
	c := NewStepClock(50, 3)

	frames := 0
	for c.StartFrame() {
		frames++
	}
	if frames != 3 {
		t.Errorf("gate opened %d times, expected 3", frames)
	}
	if got := c.Elapsed(); got < 0.0599 || got > 0.0601 {
		t.Errorf("Elapsed() = %v, expected 0.06", got)
	}
	if c.StartFrame() {
		t.Error("gate should stay closed once the budget is spent")
	}
}

func TestStepClockDefaultRate(t *testing.T) {
	c := NewStepClock(0, 1)
	if c.Step != 1.0/60 {
		t.Errorf("Step = %v, expected 1/60", c.Step)
	}
}

func TestWallClockMonotonic(t *testing.T) {
	c := NewWallClock()
	a := c.Elapsed()
	b := c.Elapsed()
	if b < a {
		t.Errorf("Elapsed() went backwards: %v then %v", a, b)
	}
}
