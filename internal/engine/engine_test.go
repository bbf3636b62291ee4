package engine

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/seb-mtl/Space-Invaders/internal/config"
	"github.com/seb-mtl/Space-Invaders/internal/core"
	"github.com/seb-mtl/Space-Invaders/internal/highscore"
)

// keys is a scripted input source.
type keys struct {
	in core.Input
}

func (k *keys) PlayerInput() core.Input {
	return k.in
}

type testRig struct {
	engine *Engine
	clock  *core.ManualClock
	keys   *keys
	scores *highscore.Highscore
}

func newRig(t *testing.T, cfg config.Config) *testRig {
	t.Helper()

	r := &testRig{
		clock:  &core.ManualClock{},
		keys:   &keys{},
		scores: highscore.New(filepath.Join(t.TempDir(), "test.hscore")),
	}
	r.engine = New(Options{
		Config: cfg,
		Clock:  r.clock,
		Input:  r.keys,
		Scores: r.scores,
		Seed:   1,
	})
	return r
}

// frame advances the clock by dt and runs one frame without drawing.
func (r *testRig) frame(dt float64) {
	r.clock.Advance(dt)
	r.engine.HandleEvents()
	r.engine.Update()
}

// play skips the intro countdown.
func (r *testRig) play(t *testing.T) {
	t.Helper()
	r.frame(6.25)
	if r.engine.State() != StatePlay {
		t.Fatalf("expected play after intro, got %v", r.engine.State())
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestIntroCountdown(t *testing.T) {
	r := newRig(t, config.Default())

	tests := []struct {
		at   float64
		want State
	}{
		{0.5, StateWelcome},
		{2.0, StateWelcome},
		{2.5, StateWelcome3},
		{3.5, StateWelcome2},
		{4.5, StateWelcome1},
		{5.5, StateGo},
		{6.01, StatePlay},
	}

	for _, tt := range tests {
		r.clock.Advance(tt.at - r.clock.Elapsed())
		r.engine.HandleEvents()
		r.engine.Update()
		if got := r.engine.State(); got != tt.want {
			t.Errorf("at %.2fs: expected %v, got %v", tt.at, tt.want, got)
		}
	}
}

func TestInitialLayout(t *testing.T) {
	r := newRig(t, config.Default())
	e := r.engine

	if e.State() != StateWelcome {
		t.Errorf("expected welcome, got %v", e.State())
	}
	if e.level != 1 || e.direction != DirectionRight {
		t.Errorf("expected level 1 moving right, got %d %v", e.level, e.direction)
	}

	player := e.player.Position()
	if player.X != 320 || player.Y != 464 {
		t.Errorf("expected player at (320,464), got %+v", player)
	}
	if e.player.Health() != 3 {
		t.Errorf("expected 3 lives, got %d", e.player.Health())
	}

	if len(e.enemies) != 50 || e.enemies.CountAlive() != 50 {
		t.Fatalf("expected 50 alive enemies, got %d/%d", e.enemies.CountAlive(), len(e.enemies))
	}

	// index = col*rows + row
	tests := []struct {
		index int
		x, y  float64
	}{
		{0, 16, 44},
		{1, 16, 76},
		{4, 16, 172},
		{5, 48, 44},
		{49, 304, 172},
	}
	for _, tt := range tests {
		pos := e.enemies[tt.index].Position()
		if pos.X != tt.x || pos.Y != tt.y {
			t.Errorf("enemy %d: expected (%v,%v), got %+v", tt.index, tt.x, tt.y, pos)
		}
	}

	want := core.BoundingBox{Left: 0, Top: 28, Right: 320, Bottom: 188}
	if e.enemyBbox != want {
		t.Errorf("expected bbox %+v, got %+v", want, e.enemyBbox)
	}
	if e.enemyBboxOriginal != want {
		t.Errorf("expected original bbox %+v, got %+v", want, e.enemyBboxOriginal)
	}

	if e.rockets.CountAlive() > 0 || e.bombs.CountAlive() > 0 {
		t.Error("expected no projectiles at start")
	}
}

func TestWelcomeDoesNotMoveAnything(t *testing.T) {
	r := newRig(t, config.Default())
	before := r.engine.Snapshot()

	r.keys.in = core.Input{Fire: true}
	r.frame(1)

	after := r.engine.Snapshot()
	if after.Hash() != before.Hash() {
		t.Error("expected no simulation before play")
	}
	if r.engine.rockets.CountAlive() > 0 {
		t.Error("expected fire to be ignored during the intro")
	}
}

func TestNewReadsStoredHighscore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.hscore")

	seed := highscore.New(path)
	for range 7 {
		seed.AddScore()
	}
	if err := seed.WriteToDisk(); err != nil {
		t.Fatalf("write: %v", err)
	}

	e := New(Options{
		Config: config.Default(),
		Clock:  &core.ManualClock{},
		Scores: highscore.New(path),
	})
	if got := e.Status().Highscore; got != 7 {
		t.Errorf("expected highscore 7, got %d", got)
	}
}

func TestCloseWritesHighscore(t *testing.T) {
	r := newRig(t, config.Default())
	r.scores.AddScore()
	r.scores.AddScore()

	if err := r.engine.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	loaded := highscore.New(r.scores.Path())
	if err := loaded.ReadFromDisk(); err != nil {
		t.Fatalf("read: %v", err)
	}
	if loaded.Highscore() != 2 {
		t.Errorf("expected 2 on disk, got %d", loaded.Highscore())
	}
}

func TestDeterminism(t *testing.T) {
	run := func(seed int64) uint64 {
		clock := core.NewStepClock(60, 900)
		script := core.InputFunc(func() core.Input {
			tick := int(clock.Elapsed() * 60)
			return core.Input{
				Left:  tick%120 < 40,
				Right: tick%120 >= 80,
				Fire:  tick%20 < 5,
			}
		})

		e := New(Options{
			Config: config.Default(),
			Clock:  clock,
			Input:  script,
			Scores: highscore.New(filepath.Join(t.TempDir(), "det.hscore")),
			Seed:   seed,
		})
		e.Run(clock)

		snap := e.Snapshot()
		return snap.Hash()
	}

	first := run(42)
	for range 3 {
		if got := run(42); got != first {
			t.Fatalf("same seed produced different hashes: %d vs %d", first, got)
		}
	}
}

func TestRunStopsWhenGateCloses(t *testing.T) {
	clock := core.NewStepClock(60, 10)
	rec := &recorder{}

	e := New(Options{
		Config:   config.Default(),
		Clock:    clock,
		Renderer: rec,
		Scores:   highscore.New(filepath.Join(t.TempDir(), "run.hscore")),
	})
	e.Run(clock)

	if clock.Frames != 0 {
		t.Errorf("expected all frames consumed, %d left", clock.Frames)
	}
	if got := rec.count("Welcome"); got != 10 {
		t.Errorf("expected 10 drawn frames, got %d", got)
	}
}

func TestStatusDuringGameOverShowsFinishedRun(t *testing.T) {
	r := newRig(t, config.Default())
	r.play(t)

	for range 4 {
		r.scores.AddScore()
	}
	r.engine.gameOver("test")

	status := r.engine.Status()
	if !status.GameOver || status.Score != 4 || status.Highscore != 4 {
		t.Errorf("unexpected status %+v", status)
	}
	if r.scores.CurrentScore() != 0 {
		t.Errorf("expected the running score to be reset, got %d", r.scores.CurrentScore())
	}
}
