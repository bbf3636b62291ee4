// Package core provides the fundamental simulation types for the game:
// positions, entities, fixed-capacity pools, bounding boxes and the
// collaborator interfaces the engine talks to. It has no external
// dependencies (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Position is a point in canvas space. The origin is the top-left corner.
type Position struct {
	X, Y float64
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// BoundingBox is an axis-aligned rectangle in canvas space.
// The zero value is the "empty" box returned when nothing is alive.
type BoundingBox struct {
	Left, Top, Right, Bottom float64
}

// Contains reports whether the entity's position lies inside the box,
// edges included. This is a point test, not an overlap test.
func (b BoundingBox) Contains(e *Entity) bool {
	pos := e.Position()
	return pos.X >= b.Left && pos.X <= b.Right && pos.Y >= b.Top && pos.Y <= b.Bottom
}

// MoveBy translates all four edges by delta.
func (b *BoundingBox) MoveBy(delta Position) {
	b.Left += delta.X
	b.Right += delta.X
	b.Top += delta.Y
	b.Bottom += delta.Y
}

// IsEmpty reports whether b is the zero box.
func (b BoundingBox) IsEmpty() bool {
	return b == BoundingBox{}
}

// BoundingBoxOf returns the box enclosing the positions of all alive
// entities, grown by pad on every side. Entity origins are centred, so pad is
// usually half a sprite. Returns the zero box if no entity is alive; callers
// must check for that before trusting the result.
func BoundingBoxOf(entities []Entity, pad float64) BoundingBox {
	var (
		box   BoundingBox
		found bool
	)

	for i := range entities {
		if !entities[i].IsAlive() {
			continue
		}
		pos := entities[i].Position()
		if !found {
			box = BoundingBox{Left: pos.X, Top: pos.Y, Right: pos.X, Bottom: pos.Y}
			found = true
			continue
		}
		box.Left = min(box.Left, pos.X)
		box.Top = min(box.Top, pos.Y)
		box.Right = max(box.Right, pos.X)
		box.Bottom = max(box.Bottom, pos.Y)
	}

	if !found {
		return BoundingBox{}
	}

	box.Left -= pad
	box.Top -= pad
	box.Right += pad
	box.Bottom += pad
	return box
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
