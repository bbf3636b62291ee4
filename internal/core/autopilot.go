package core

import "math"

// Autopilot returns a scripted input for headless runs. It sweeps left for
// two seconds, right for two seconds, and taps fire four times a second.
// The input depends only on the clock, so runs are reproducible.
func Autopilot(clock Clock, tickRate int) InputSource {
	if tickRate <= 0 {
		tickRate = 60
	}
	tapEvery := max(tickRate/4, 2)

	return InputFunc(func() Input {
		frame := int(math.Round(clock.Elapsed() * float64(tickRate)))
		phase := frame % (4 * tickRate)
		return Input{
			Left:  phase < 2*tickRate,
			Right: phase >= 2*tickRate,
			Fire:  frame%tapEvery == 0,
		}
	})
}
