package engine

import (
	"math"

	"github.com/seb-mtl/Space-Invaders/internal/core"
)

// Update advances the simulation by the frame delta sampled in
// HandleEvents. Outside of play it only runs the intro countdown.
func (e *Engine) Update() {
	switch e.state {
	case StatePlay:
		e.updateEnemies()
		if e.state != StatePlay {
			return
		}
		e.updateBombs()
		if e.state != StatePlay {
			return
		}
		e.updateRockets()
	case StateGameOver:
		// Frozen until HandleEvents restarts the run.
	default:
		e.setState(introState(e.currentTimestamp - e.startTimestamp))
	}
}

// gameOver ends the run and stores the highscore.
func (e *Engine) gameOver(reason string) {
	e.timestampOfGameOver = e.currentTimestamp
	e.scores.FinishScore()
	e.persistScores()

	e.logger.Debug("game over",
		"reason", reason,
		"score", e.scores.LastScore(),
		"highscore", e.scores.Highscore(),
		"level", e.level,
	)
	e.setState(StateGameOver)
}

func (e *Engine) updateEnemies() {
	if e.enemyBbox.Bottom >= e.canvasH {
		e.gameOver("invaded")
		return
	}

	enemyDied := false

	if e.enemyBbox.Contains(&e.player) {
		for i := range e.enemies {
			enemy := &e.enemies[i]
			if !enemy.IsAlive() || !enemy.IntersectsWith(&e.player, e.halfSprite) {
				continue
			}
			enemy.Destroy()
			e.player.Hit()
			enemyDied = true
			if !e.player.IsAlive() {
				e.gameOver("collision")
				return
			}
			break
		}
	}

	for i := range e.rockets {
		rocket := &e.rockets[i]
		if !rocket.IsAlive() || !e.enemyBbox.Contains(rocket) {
			continue
		}
		col, ok := e.columnOf(rocket.Position().X)
		if !ok {
			continue
		}
		if e.hitColumn(rocket, col) {
			enemyDied = true
		}
	}

	if enemyDied {
		if box := core.BoundingBoxOf(e.enemies, e.halfSprite); !box.IsEmpty() {
			e.enemyBbox = box
		} else {
			e.initEnemies()
			e.level++
			e.logger.Debug("formation cleared", "level", e.level, "score", e.scores.CurrentScore())
		}
	}

	e.moveFormation()
}

// columnOf maps an x coordinate to a formation column using the original
// bounding box, so columns stay put while the formation thins out.
func (e *Engine) columnOf(x float64) (int, bool) {
	cols := e.cfg.Formation.Cols
	col := int(math.Floor((x - e.enemyBboxOriginal.Left) / e.spriteSize))
	if col < 0 || col > cols {
		return 0, false
	}
	if col == cols {
		col = cols - 1
	}
	return col, true
}

// hitColumn tests the rocket against the enemies of one column, bottom row
// first, and destroys both on the first hit.
func (e *Engine) hitColumn(rocket *core.Entity, col int) bool {
	rows := e.cfg.Formation.Rows
	first := col * rows
	for i := first + rows - 1; i >= first; i-- {
		enemy := &e.enemies[i]
		if !enemy.IsAlive() || !enemy.IntersectsWith(rocket, e.halfSprite) {
			continue
		}
		rocket.Destroy()
		enemy.Destroy()
		e.scores.AddScore()
		return true
	}
	return false
}

// moveFormation slides every enemy sideways, or drops the formation one step
// and turns it around when it touches a wall.
func (e *Engine) moveFormation() {
	var delta core.Position

	switch e.direction {
	case DirectionRight:
		if e.enemyBbox.Right < e.canvasW {
			delta.X = e.cfg.Formation.Speed * e.msPerFrame
		} else {
			delta.Y = e.cfg.Formation.DropStep * float64(e.level)
			delta.X = -1
			e.direction = DirectionLeft
		}
	default:
		if e.enemyBbox.Left > 0 {
			delta.X = -e.cfg.Formation.Speed * e.msPerFrame
		} else {
			delta.Y = e.cfg.Formation.DropStep * float64(e.level)
			delta.X = 1
			e.direction = DirectionRight
		}
	}

	for i := range e.enemies {
		e.enemies[i].SetPosition(e.enemies[i].Position().Add(delta))
	}
	e.enemyBbox.MoveBy(delta)
	e.enemyBboxOriginal.MoveBy(delta)
}

func (e *Engine) updateBombs() {
	for i := range e.bombs {
		bomb := &e.bombs[i]

		if bomb.IsAlive() {
			pos := bomb.Position()
			switch {
			case pos.Y > e.canvasH:
				bomb.Destroy()
			case bomb.IntersectsWith(&e.player, e.halfSprite):
				bomb.Destroy()
				e.player.Hit()
				if !e.player.IsAlive() {
					e.gameOver("bombed")
					return
				}
			default:
				bomb.SetY(pos.Y + e.cfg.Bombs.Speed*e.msPerFrame)
			}
			continue
		}

		if e.currentTimestamp-e.timestampOfLastBomb < e.cfg.Bombs.Cooldown {
			continue
		}
		e.dropBomb(bomb)
	}
}

// dropBomb draws a slot of the formation and spawns the bomb there if that
// enemy is alive. A dead slot drops nothing; the draw is not retried.
func (e *Engine) dropBomb(bomb *core.Entity) {
	enemy := &e.enemies[e.rng.Intn(len(e.enemies))]
	if !enemy.IsAlive() {
		return
	}
	e.timestampOfLastBomb = e.currentTimestamp
	bomb.SetPosition(enemy.Position())
	bomb.SetHealth(1)
}

func (e *Engine) updateRockets() {
	for i := range e.rockets {
		rocket := &e.rockets[i]
		if !rocket.IsAlive() {
			continue
		}
		pos := rocket.Position()
		if pos.Y > -e.spriteSize {
			rocket.SetY(pos.Y - e.cfg.Rockets.Step)
		} else {
			rocket.Destroy()
		}
	}
}
