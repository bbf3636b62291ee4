package engine

import (
	"math"

	"github.com/seb-mtl/Space-Invaders/internal/core"
)

// Snapshot contains the observable game state for determinism tests and the
// headless simulator. Entities are flattened into 3 values each: X, Y, Health.
type Snapshot struct {
	State     string
	Direction string
	Level     int
	Score     int
	Highscore int

	PlayerX      float64
	PlayerY      float64
	PlayerHealth int

	EnemiesAlive int
	EnemyData    []float64
	RocketData   []float64
	BombData     []float64

	// Left, Top, Right, Bottom
	EnemyBbox    [4]float64
	OriginalBbox [4]float64
}

// Snapshot returns the current game state.
func (e *Engine) Snapshot() Snapshot {
	pos := e.player.Position()
	status := e.Status()

	return Snapshot{
		State:        e.state.String(),
		Direction:    e.direction.String(),
		Level:        e.level,
		Score:        status.Score,
		Highscore:    status.Highscore,
		PlayerX:      pos.X,
		PlayerY:      pos.Y,
		PlayerHealth: e.player.Health(),
		EnemiesAlive: e.enemies.CountAlive(),
		EnemyData:    flatten(e.enemies),
		RocketData:   flatten(e.rockets),
		BombData:     flatten(e.bombs),
		EnemyBbox:    edges(e.enemyBbox),
		OriginalBbox: edges(e.enemyBboxOriginal),
	}
}

func flatten(entities []core.Entity) []float64 {
	data := make([]float64, 0, len(entities)*3)
	for i := range entities {
		pos := entities[i].Position()
		data = append(data, pos.X, pos.Y, float64(entities[i].Health()))
	}
	return data
}

func edges(b core.BoundingBox) [4]float64 {
	return [4]float64{b.Left, b.Top, b.Right, b.Bottom}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(len(snap.State))
	for _, c := range snap.State + snap.Direction {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Highscore) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + uint64(snap.PlayerHealth) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemiesAlive) //#nosec G115 -- hash computation

	for _, data := range [][]float64{snap.EnemyData, snap.RocketData, snap.BombData, snap.EnemyBbox[:], snap.OriginalBbox[:]} {
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}
	return h
}
