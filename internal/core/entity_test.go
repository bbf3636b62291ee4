package core

import "testing"

func TestEntityAliveMatchesHealth(t *testing.T) {
	var e Entity
	check := func(step string) {
		t.Helper()
		if e.IsAlive() != (e.Health() > 0) {
			t.Errorf("%s: IsAlive() = %v with health %d", step, e.IsAlive(), e.Health())
		}
	}

	check("zero value")
	e.SetHealth(3)
	check("SetHealth(3)")
	e.Hit()
	check("Hit")
	e.Hit()
	e.Hit()
	check("Hit to zero")
	if e.IsAlive() {
		t.Error("entity should be dead after three hits")
	}
	e.Hit()
	check("Hit below zero")
	e.SetHealth(1)
	check("revive")
	e.Destroy()
	check("Destroy")
}

func TestEntityDestroy(t *testing.T) {
	for _, health := range []int{-2, 0, 1, 5} {
		e := entityAt(1, 1, health)
		e.Destroy()
		if e.Health() != 0 || e.IsAlive() {
			t.Errorf("Destroy from health %d: health=%d alive=%v", health, e.Health(), e.IsAlive())
		}
	}
}

func TestEntityPositionSetters(t *testing.T) {
	var e Entity
	e.SetPosition(Position{X: 1, Y: 2})
	e.SetX(10)
	e.SetY(20)

	if e.Position() != (Position{X: 10, Y: 20}) {
		t.Errorf("Position() = %+v, expected {10 20}", e.Position())
	}
}

func TestEntityIntersectsWith(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Position
		radius   float64
		expected bool
	}{
		{"same point", Position{10, 10}, Position{10, 10}, 0, true},
		{"inside radius", Position{0, 0}, Position{3, 4}, 6, true},
		{"exactly on radius", Position{0, 0}, Position{3, 4}, 5, true},
		{"outside radius", Position{0, 0}, Position{3, 4}, 4.99, false},
		{"far apart", Position{0, 0}, Position{100, 0}, 16, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := entityAt(tc.a.X, tc.a.Y, 1)
			b := entityAt(tc.b.X, tc.b.Y, 0)

			if got := a.IntersectsWith(&b, tc.radius); got != tc.expected {
				t.Errorf("IntersectsWith() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := b.IntersectsWith(&a, tc.radius); got != tc.expected {
				t.Errorf("IntersectsWith() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}
