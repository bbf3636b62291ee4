package engine

import (
	"fmt"

	"github.com/seb-mtl/Space-Invaders/internal/core"
)

// HUD texts
const (
	textWelcome  = "Welcome"
	textGo       = "Go!"
	textGameOver = "Game Over :-("
	textTryAgain = "Press space to try again"
)

// Draw emits the frame through the renderer: player, enemies, rockets,
// bombs and then the HUD on top.
func (e *Engine) Draw() {
	e.drawSprite(core.SpritePlayer, &e.player)

	// Enemy sprites alternate per slot, dead slots included.
	alt := false
	for i := range e.enemies {
		kind := core.SpriteEnemy2
		if alt {
			kind = core.SpriteEnemy1
		}
		alt = !alt
		if e.enemies[i].IsAlive() {
			e.drawSprite(kind, &e.enemies[i])
		}
	}

	for i := range e.rockets {
		if e.rockets[i].IsAlive() {
			e.drawSprite(core.SpriteRocket, &e.rockets[i])
		}
	}
	for i := range e.bombs {
		if e.bombs[i].IsAlive() {
			e.drawSprite(core.SpriteBomb, &e.bombs[i])
		}
	}

	e.drawHUD()
}

// drawSprite converts the centred entity position to the sprite's top-left.
func (e *Engine) drawSprite(kind core.Sprite, ent *core.Entity) {
	pos := ent.Position()
	e.renderer.DrawSprite(kind, int(pos.X-e.halfSprite), int(pos.Y-e.halfSprite))
}

func (e *Engine) drawHUD() {
	fontW := e.cfg.Canvas.FontWidth
	rowH := e.cfg.Canvas.FontRowHeight
	w := e.cfg.Canvas.Width
	h := e.cfg.Canvas.Height
	s := e.cfg.Canvas.SpriteSize

	for i := range max(e.player.Health(), 0) {
		e.renderer.DrawSprite(core.SpritePlayer, i*s, 5)
	}

	status := e.Status()
	score := fmt.Sprintf("Current Score: %d", status.Score)
	e.renderer.DrawText(score, (w-len(score)*fontW)/2, s-rowH)

	best := fmt.Sprintf("Highscore: %d", status.Highscore)
	e.renderer.DrawText(best, w-len(best)*fontW, s-rowH)

	e.countFrame()
	e.renderer.DrawText(fmt.Sprintf("%dFPS", e.fps), 0, h-rowH)

	// Banners are centred on their first and last glyph origins.
	msg, sub := e.banner()
	y := (h - rowH) / 2
	if msg != "" {
		e.renderer.DrawText(msg, (w-(len(msg)-1)*fontW)/2, y)
	}
	if sub != "" {
		e.renderer.DrawText(sub, (w-(len(sub)-1)*fontW)/2, y+2*rowH)
	}
}

// countFrame refreshes the FPS figure about once per second.
func (e *Engine) countFrame() {
	if e.currentTimestamp > e.timestampOfLastFpsCalc+1 {
		e.fps = e.framesCount
		e.framesCount = 0
		e.timestampOfLastFpsCalc = e.currentTimestamp
	}
	e.framesCount++
}

// banner returns the centred message for the current state and an optional
// second line below it.
func (e *Engine) banner() (string, string) {
	switch e.state {
	case StateWelcome:
		return textWelcome, ""
	case StateWelcome3:
		return "3", ""
	case StateWelcome2:
		return "2", ""
	case StateWelcome1:
		return "1", ""
	case StateGo:
		return textGo, ""
	case StateGameOver:
		if e.currentTimestamp-e.timestampOfGameOver >= e.cfg.Timing.RestartGrace {
			return textGameOver, textTryAgain
		}
		return textGameOver, ""
	case StateTryAgain:
		return textTryAgain, ""
	default:
		return "", ""
	}
}

// FPS returns the most recent frames-per-second figure.
func (e *Engine) FPS() int {
	return e.fps
}
