package engine

import "github.com/seb-mtl/Space-Invaders/internal/core"

// HandleEvents samples the clock and the player input for this frame. It
// fires rockets, moves the player and restarts a finished game.
func (e *Engine) HandleEvents() {
	e.currentTimestamp = e.clock.Elapsed()
	e.msPerFrame = e.currentTimestamp - e.previousTimestamp
	e.previousTimestamp = e.currentTimestamp

	keys := e.input.PlayerInput()

	// Fire is edge triggered: holding the key only counts once.
	if keys.Fire {
		lifted := e.liftedFireKeyBefore
		e.liftedFireKeyBefore = false

		if lifted {
			switch e.state {
			case StateGameOver:
				if e.currentTimestamp-e.timestampOfGameOver >= e.cfg.Timing.RestartGrace {
					e.restart()
				}
				return
			case StatePlay:
				e.fire()
			}
		}
	} else {
		e.liftedFireKeyBefore = true
	}

	if e.state == StateGameOver {
		return
	}

	if keys.Left == keys.Right {
		return
	}

	step := e.cfg.Player.Speed * e.msPerFrame
	x := e.player.Position().X
	if keys.Left {
		x -= step
	} else {
		x += step
	}
	e.player.SetX(core.ClampF(x, 0, e.canvasW-e.spriteSize))
}

// fire launches a rocket from the player when the cooldown has passed and a
// slot is free.
func (e *Engine) fire() {
	if e.currentTimestamp-e.timestampOfLastShot <= e.cfg.Rockets.Cooldown {
		return
	}

	rocket := e.rockets.FirstDead()
	if rocket == nil {
		return
	}

	e.timestampOfLastShot = e.currentTimestamp
	rocket.SetPosition(e.player.Position())
	rocket.SetHealth(1)
}

// restart finishes the run and prepares a new one. The player keeps its
// position; the intro countdown replays from the start.
func (e *Engine) restart() {
	e.resetGame(false)
	e.scores.FinishScore()
	e.persistScores()

	e.level = 1
	e.direction = DirectionRight
	e.startTimestamp = e.currentTimestamp
	e.timestampOfLastBomb = e.currentTimestamp

	e.logger.Debug("run restarted", "highscore", e.scores.Highscore())
	e.setState(StateTryAgain)
}
