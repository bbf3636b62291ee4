package engine

import (
	"testing"

	"github.com/seb-mtl/Space-Invaders/internal/config"
	"github.com/seb-mtl/Space-Invaders/internal/core"
)

func TestFireIsEdgeTriggered(t *testing.T) {
	r := newRig(t, config.Default())
	r.play(t)
	e := r.engine

	r.keys.in = core.Input{Fire: true}
	for range 3 {
		r.frame(0.3)
	}
	if got := e.rockets.CountAlive(); got != 1 {
		t.Fatalf("expected one rocket while holding fire, got %d", got)
	}

	r.keys.in = core.Input{}
	r.frame(0.3)
	r.keys.in = core.Input{Fire: true}
	r.frame(0.3)

	if got := e.rockets.CountAlive(); got != 2 {
		t.Errorf("expected a second rocket after release, got %d", got)
	}
}

func TestFireCooldown(t *testing.T) {
	r := newRig(t, config.Default())
	r.play(t)
	e := r.engine

	tap := func(dt float64) {
		r.keys.in = core.Input{}
		r.frame(dt)
		r.keys.in = core.Input{Fire: true}
		r.frame(dt)
	}

	tap(0.01)
	tap(0.01)
	if got := e.rockets.CountAlive(); got != 1 {
		t.Fatalf("expected the cooldown to swallow the second tap, got %d rockets", got)
	}

	tap(0.15)
	if got := e.rockets.CountAlive(); got != 2 {
		t.Errorf("expected a rocket once the cooldown passed, got %d", got)
	}
}

func TestRocketStartsAtPlayer(t *testing.T) {
	r := newRig(t, config.Default())
	r.play(t)

	r.keys.in = core.Input{Fire: true}
	r.engine.HandleEvents()

	if !r.engine.rockets[0].IsAlive() {
		t.Fatal("expected the first slot to be taken")
	}
	if r.engine.rockets[0].Position() != r.engine.player.Position() {
		t.Errorf("expected rocket at %+v, got %+v", r.engine.player.Position(), r.engine.rockets[0].Position())
	}
}

func TestRocketCapacity(t *testing.T) {
	r := newRig(t, config.Default())
	e := r.engine

	for range 15 {
		e.currentTimestamp++
		e.fire()
	}

	if got := e.rockets.CountAlive(); got != 10 {
		t.Errorf("expected 10 rockets at most, got %d", got)
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name  string
		input core.Input
		dt    float64
		wantX float64
	}{
		{"left", core.Input{Left: true}, 0.125, 270},
		{"right", core.Input{Right: true}, 0.125, 370},
		{"both cancel", core.Input{Left: true, Right: true}, 0.125, 320},
		{"clamped left", core.Input{Left: true}, 2, 0},
		{"clamped right", core.Input{Right: true}, 2, 608},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, config.Default())
			r.clock.Advance(10)
			r.engine.previousTimestamp = 10
			r.keys.in = tt.input

			r.clock.Advance(tt.dt)
			r.engine.HandleEvents()

			if got := r.engine.player.Position().X; !approx(got, tt.wantX) {
				t.Errorf("expected x=%v, got %v", tt.wantX, got)
			}
		})
	}
}

// killPlayer ends the run with a bomb on the player.
func killPlayer(t *testing.T, r *testRig) {
	t.Helper()
	r.engine.player.SetHealth(1)
	r.engine.bombs[0].SetPosition(r.engine.player.Position())
	r.engine.bombs[0].SetHealth(1)
	r.frame(0.01)
	if r.engine.State() != StateGameOver {
		t.Fatalf("expected game over, got %v", r.engine.State())
	}
}

func TestRestartAfterGrace(t *testing.T) {
	r := newRig(t, config.Default())
	r.play(t)
	e := r.engine

	r.keys.in = core.Input{Left: true}
	r.frame(0.1)
	r.keys.in = core.Input{}
	playerX := e.player.Position().X

	killPlayer(t, r)

	r.keys.in = core.Input{Fire: true}
	r.frame(1)
	if e.State() != StateGameOver {
		t.Fatalf("expected restart to wait for the grace period, got %v", e.State())
	}

	r.keys.in = core.Input{}
	r.frame(0.5)
	r.keys.in = core.Input{Fire: true}
	r.frame(0.6)

	if e.State() != StateWelcome {
		t.Fatalf("expected the intro to replay, got %v", e.State())
	}
	if e.player.Health() != 3 || e.level != 1 || e.direction != DirectionRight {
		t.Errorf("expected a fresh run, health %d level %d direction %v", e.player.Health(), e.level, e.direction)
	}
	if e.enemies.CountAlive() != 50 || e.bombs.CountAlive() > 0 || e.rockets.CountAlive() > 0 {
		t.Error("expected all entities reset")
	}
	if got := e.player.Position().X; got != playerX {
		t.Errorf("expected the player to keep x=%v, got %v", playerX, got)
	}

	r.keys.in = core.Input{}
	r.frame(6.1)
	if e.State() != StatePlay {
		t.Errorf("expected play after the countdown, got %v", e.State())
	}
}

func TestHeldFireDoesNotRestart(t *testing.T) {
	r := newRig(t, config.Default())
	r.play(t)

	r.keys.in = core.Input{Fire: true}
	r.frame(0.01)
	killPlayer(t, r)

	r.frame(3)
	if r.engine.State() != StateGameOver {
		t.Fatalf("expected a held key to be ignored, got %v", r.engine.State())
	}

	r.keys.in = core.Input{}
	r.frame(0.01)
	r.keys.in = core.Input{Fire: true}
	r.frame(0.01)
	if r.engine.State() != StateWelcome {
		t.Errorf("expected restart after a fresh press, got %v", r.engine.State())
	}
}

func TestNoMovementWhileGameOver(t *testing.T) {
	r := newRig(t, config.Default())
	r.play(t)
	killPlayer(t, r)

	x := r.engine.player.Position().X
	r.keys.in = core.Input{Left: true}
	r.frame(0.5)

	if got := r.engine.player.Position().X; got != x {
		t.Errorf("expected the player to stay at %v, got %v", x, got)
	}
}
