package tui

import (
	"github.com/seb-mtl/Space-Invaders/internal/config"
	"github.com/seb-mtl/Space-Invaders/internal/core"
)

// spriteGlyph is the terminal image of a sprite.
type spriteGlyph struct {
	text  string
	color core.Color
}

var spriteGlyphs = map[core.Sprite]spriteGlyph{
	core.SpritePlayer: {"/^\\", core.ColorBrightGreen},
	core.SpriteEnemy1: {"<o>", core.ColorMagenta},
	core.SpriteEnemy2: {"{#}", core.ColorCyan},
	core.SpriteRocket: {"|", core.ColorBrightYellow},
	core.SpriteBomb:   {"*", core.ColorRed},
}

// CanvasRenderer projects the engine's pixel canvas onto a terminal screen
// buffer. Every sprite becomes a short glyph centred on its cell; text keeps
// one cell per character and is re-centred on its pixel extent.
type CanvasRenderer struct {
	screen *core.Screen
	canvas config.CanvasConfig
}

// NewCanvasRenderer creates a renderer drawing into screen.
func NewCanvasRenderer(screen *core.Screen, canvas config.CanvasConfig) *CanvasRenderer {
	return &CanvasRenderer{screen: screen, canvas: canvas}
}

// Project maps a canvas pixel to a screen cell.
func (r *CanvasRenderer) Project(x, y float64) (int, int) {
	w, h := r.screen.Width(), r.screen.Height()
	cx := int(x * float64(w) / float64(r.canvas.Width))
	cy := int(y * float64(h) / float64(r.canvas.Height))
	return core.Clamp(cx, 0, max(w-1, 0)), core.Clamp(cy, 0, max(h-1, 0))
}

// DrawSprite draws the sprite's glyph centred on the sprite's centre.
func (r *CanvasRenderer) DrawSprite(kind core.Sprite, x, y int) {
	glyph, ok := spriteGlyphs[kind]
	if !ok {
		return
	}
	half := float64(r.canvas.SpriteSize) / 2
	cx, cy := r.Project(float64(x)+half, float64(y)+half)
	r.drawCentred(glyph.text, cx, cy, glyph.color)
}

// DrawText draws text whose pixel extent starts at (x, y).
func (r *CanvasRenderer) DrawText(text string, x, y int) {
	width := float64(len(text) * r.canvas.FontWidth)
	cx, cy := r.Project(float64(x)+width/2, float64(y))
	r.drawCentred(text, cx, cy, core.ColorWhite)
}

// drawCentred writes text centred on column cx, kept inside the screen.
func (r *CanvasRenderer) drawCentred(text string, cx, cy int, c core.Color) {
	n := len([]rune(text))
	left := core.Clamp(cx-n/2, 0, max(r.screen.Width()-n, 0))
	r.screen.DrawText(left, cy, text, c)
}

var _ core.Renderer = (*CanvasRenderer)(nil)
