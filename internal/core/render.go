package core

// Sprite identifies one of the fixed sprite images the renderer knows about.
type Sprite int

const (
	SpritePlayer Sprite = iota
	SpriteEnemy1
	SpriteEnemy2
	SpriteRocket
	SpriteBomb
)

// String returns the sprite name.
func (s Sprite) String() string {
	switch s {
	case SpritePlayer:
		return "Player"
	case SpriteEnemy1:
		return "Enemy1"
	case SpriteEnemy2:
		return "Enemy2"
	case SpriteRocket:
		return "Rocket"
	case SpriteBomb:
		return "Bomb"
	default:
		return "Unknown"
	}
}

// Renderer draws sprites and text at canvas pixel coordinates.
// (x, y) is the top-left corner of the sprite or the first glyph.
type Renderer interface {
	DrawSprite(kind Sprite, x, y int)
	DrawText(text string, x, y int)
}

// NopRenderer discards everything. Used for headless runs.
type NopRenderer struct{}

// DrawSprite does nothing.
func (NopRenderer) DrawSprite(Sprite, int, int) {}

// DrawText does nothing.
func (NopRenderer) DrawText(string, int, int) {}
