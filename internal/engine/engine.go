// Package engine implements the Space Invaders simulation: the state
// machine, the enemy formation, rockets, bombs and every collision between
// them. Rendering, input, timing and score persistence are collaborators
// reached through interfaces; the engine owns all entity state exclusively
// and is not safe for concurrent use.
package engine

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/seb-mtl/Space-Invaders/internal/config"
	"github.com/seb-mtl/Space-Invaders/internal/core"
	"github.com/seb-mtl/Space-Invaders/internal/highscore"
)

// ScoreKeeper counts points and persists the best score.
// *highscore.Highscore is the production implementation.
type ScoreKeeper interface {
	AddScore()
	FinishScore()
	CurrentScore() int
	Highscore() int
	LastScore() int
	WriteToDisk() error
	ReadFromDisk() error
}

var _ ScoreKeeper = (*highscore.Highscore)(nil)

// Options configures a new Engine. Zero-valued collaborators get defaults:
// a wall clock, no input, a renderer that draws nothing, a highscore file
// at the configured path and a discarding logger.
type Options struct {
	Config   config.Config
	Clock    core.Clock
	Input    core.InputSource
	Renderer core.Renderer
	Scores   ScoreKeeper
	Seed     int64
	Logger   *log.Logger
}

// Engine owns the complete game state and advances it one frame at a time
// through HandleEvents, Update and Draw.
type Engine struct {
	cfg      config.Config
	clock    core.Clock
	input    core.InputSource
	renderer core.Renderer
	scores   ScoreKeeper
	logger   *log.Logger
	rng      *rand.Rand

	state     State
	direction Direction
	level     int

	// Timestamps in clock seconds
	startTimestamp         float64
	previousTimestamp      float64
	currentTimestamp       float64
	timestampOfLastShot    float64
	timestampOfLastBomb    float64
	timestampOfGameOver    float64
	timestampOfLastFpsCalc float64
	msPerFrame             float64 // seconds since the previous frame

	framesCount int
	fps         int

	// True if the fire key was up on the previous frame
	liftedFireKeyBefore bool

	player  core.Entity
	rockets core.Pool
	bombs   core.Pool
	enemies core.Pool // column-major: index = col*rows + row

	// enemyBbox encloses only alive enemies and is used for coarse hit tests.
	enemyBbox core.BoundingBox
	// enemyBboxOriginal encloses the formation as of its last full reset.
	// It only translates, never shrinks, and maps a rocket to its column.
	enemyBboxOriginal core.BoundingBox

	spriteSize float64
	halfSprite float64
	canvasW    float64
	canvasH    float64
}

// New creates an engine in the welcome state and loads the stored highscore.
func New(opts Options) *Engine {
	cfg := opts.Config

	e := &Engine{
		cfg:      cfg,
		clock:    opts.Clock,
		input:    opts.Input,
		renderer: opts.Renderer,
		scores:   opts.Scores,
		logger:   opts.Logger,
		rng:      rand.New(rand.NewSource(opts.Seed)),

		state:               StateWelcome,
		direction:           DirectionRight,
		level:               1,
		liftedFireKeyBefore: true,

		rockets: core.NewPool(cfg.Rockets.Capacity),
		bombs:   core.NewPool(cfg.Bombs.Capacity),
		enemies: core.NewPool(cfg.EnemyCount()),

		spriteSize: float64(cfg.Canvas.SpriteSize),
		halfSprite: float64(cfg.Canvas.SpriteSize) / 2,
		canvasW:    float64(cfg.Canvas.Width),
		canvasH:    float64(cfg.Canvas.Height),
	}

	if e.clock == nil {
		e.clock = core.NewWallClock()
	}
	if e.input == nil {
		e.input = core.InputFunc(func() core.Input { return core.Input{} })
	}
	if e.renderer == nil {
		e.renderer = core.NopRenderer{}
	}
	if e.scores == nil {
		path, err := config.ExpandPath(cfg.Highscore.Path)
		if err != nil {
			path = cfg.Highscore.Path
		}
		e.scores = highscore.New(path)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	e.startTimestamp = e.clock.Elapsed()
	e.previousTimestamp = e.startTimestamp
	e.currentTimestamp = e.startTimestamp
	e.timestampOfLastFpsCalc = e.startTimestamp
	e.timestampOfLastShot = math.Inf(-1)
	e.timestampOfLastBomb = math.Inf(-1)

	if err := e.scores.ReadFromDisk(); err != nil {
		e.logger.Warn("could not read highscore, starting from zero", "error", err)
	}

	e.resetGame(true)
	return e
}

// resetGame puts every entity back into its starting state. The player keeps
// its position unless resetPlayer is set.
func (e *Engine) resetGame(resetPlayer bool) {
	if resetPlayer {
		e.initPlayer()
	}
	e.player.SetHealth(e.cfg.Player.Lives)

	e.initEnemies()
	e.rockets.DestroyAll()
	e.bombs.DestroyAll()
}

// initPlayer centres the player on the bottom edge. Health is not touched.
func (e *Engine) initPlayer() {
	e.player.SetPosition(core.Position{
		X: e.canvasW / 2,
		Y: e.canvasH - e.halfSprite,
	})
}

// initEnemies lays out the full formation right below the HUD row and
// recomputes both bounding boxes.
func (e *Engine) initEnemies() {
	rows := e.cfg.Formation.Rows
	startY := float64(e.cfg.Canvas.FontRowHeight + 10)

	for i := range e.enemies {
		col := float64(i / rows)
		row := float64(i % rows)
		e.enemies[i].SetPosition(core.Position{
			X: col*e.spriteSize + e.halfSprite,
			Y: startY + row*e.spriteSize + e.halfSprite,
		})
		e.enemies[i].SetHealth(1)
	}

	e.enemyBbox = core.BoundingBoxOf(e.enemies, e.halfSprite)
	e.enemyBboxOriginal = e.enemyBbox
}

// Run drives the frame loop until the gate closes.
func (e *Engine) Run(gate core.FrameGate) {
	for gate.StartFrame() {
		e.HandleEvents()
		e.Update()
		e.Draw()
	}
}

// Close persists the highscore one last time.
func (e *Engine) Close() error {
	return e.scores.WriteToDisk()
}

// setState switches state and logs the transition.
func (e *Engine) setState(s State) {
	if s == e.state {
		return
	}
	e.logger.Debug("state changed", "from", e.state, "to", s)
	e.state = s
}

// persistScores writes the highscore, logging instead of failing.
func (e *Engine) persistScores() {
	if err := e.scores.WriteToDisk(); err != nil {
		e.logger.Warn("could not write highscore", "error", err)
	}
}

// Status is a compact summary for the platform layer.
type Status struct {
	State     State
	Score     int // current run, or the finished run while game over
	Highscore int
	Level     int
	Lives     int
	GameOver  bool
}

// Status returns the current summary.
func (e *Engine) Status() Status {
	score := e.scores.CurrentScore()
	if e.state == StateGameOver {
		score = e.scores.LastScore()
	}
	return Status{
		State:     e.state,
		Score:     score,
		Highscore: e.scores.Highscore(),
		Level:     e.level,
		Lives:     max(e.player.Health(), 0),
		GameOver:  e.state == StateGameOver,
	}
}

// State returns the current state machine phase.
func (e *Engine) State() State {
	return e.state
}
