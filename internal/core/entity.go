package core

import "math"

// Entity is the state shared by every game object: a centred position and
// a health counter that doubles as the alive flag (alive iff health > 0).
type Entity struct {
	pos    Position
	health int
}

// SetPosition moves the entity.
func (e *Entity) SetPosition(pos Position) {
	e.pos = pos
}

// Position returns the entity's centre.
func (e *Entity) Position() Position {
	return e.pos
}

// SetX sets only the horizontal coordinate.
func (e *Entity) SetX(x float64) {
	e.pos.X = x
}

// SetY sets only the vertical coordinate.
func (e *Entity) SetY(y float64) {
	e.pos.Y = y
}

// SetHealth sets the health counter.
func (e *Entity) SetHealth(health int) {
	e.health = health
}

// Health returns the health counter.
func (e *Entity) Health() int {
	return e.health
}

// Hit removes one health point.
func (e *Entity) Hit() {
	e.health--
}

// Destroy forces health to zero.
func (e *Entity) Destroy() {
	e.health = 0
}

// IsAlive reports whether health is positive.
func (e *Entity) IsAlive() bool {
	return e.health > 0
}

// IntersectsWith reports whether the distance between both centres is at
// most radius.
func (e *Entity) IntersectsWith(o *Entity, radius float64) bool {
	dx := e.pos.X - o.pos.X
	dy := e.pos.Y - o.pos.Y
	return math.Sqrt(dx*dx+dy*dy) <= radius
}
