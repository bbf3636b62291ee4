package core

import "testing"

func TestAutopilotSweeps(t *testing.T) {
	clock := &ManualClock{}
	pilot := Autopilot(clock, 10)

	clock.Advance(0.5)
	if in := pilot.PlayerInput(); !in.Left || in.Right {
		t.Errorf("expected left during the first sweep, got %+v", in)
	}

	clock.Advance(2)
	if in := pilot.PlayerInput(); in.Left || !in.Right {
		t.Errorf("expected right during the second sweep, got %+v", in)
	}
}

func TestAutopilotTapsFire(t *testing.T) {
	clock := NewStepClock(60, 60)
	pilot := Autopilot(clock, 60)

	presses, releases := 0, 0
	prev := false
	for clock.StartFrame() {
		fire := pilot.PlayerInput().Fire
		if fire && !prev {
			presses++
		}
		if !fire && prev {
			releases++
		}
		prev = fire
	}

	if presses < 3 || releases < 3 {
		t.Errorf("expected fire to be tapped repeatedly, got %d presses and %d releases", presses, releases)
	}
}
