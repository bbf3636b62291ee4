// Package config provides YAML/TOML-based game configuration loading and
// difficulty presets for the game.
package config

import (
	"errors"
	"fmt"
)

// Config contains every tunable of the simulation and its collaborators.
type Config struct {
	Canvas    CanvasConfig    `yaml:"canvas" toml:"canvas"`
	Formation FormationConfig `yaml:"formation" toml:"formation"`
	Player    PlayerConfig    `yaml:"player" toml:"player"`
	Rockets   RocketConfig    `yaml:"rockets" toml:"rockets"`
	Bombs     BombConfig      `yaml:"bombs" toml:"bombs"`
	Timing    TimingConfig    `yaml:"timing" toml:"timing"`
	Input     InputConfig     `yaml:"input" toml:"input"`
	Highscore HighscoreConfig `yaml:"highscore" toml:"highscore"`
}

// CanvasConfig defines the logical pixel canvas the simulation runs on.
type CanvasConfig struct {
	Width         int `yaml:"width" toml:"width"`
	Height        int `yaml:"height" toml:"height"`
	SpriteSize    int `yaml:"sprite_size" toml:"sprite_size"`
	FontWidth     int `yaml:"font_width" toml:"font_width"`
	FontRowHeight int `yaml:"font_row_height" toml:"font_row_height"`
}

// FormationConfig defines the enemy grid and how it travels.
type FormationConfig struct {
	Rows     int     `yaml:"rows" toml:"rows"`
	Cols     int     `yaml:"cols" toml:"cols"`
	Speed    float64 `yaml:"speed" toml:"speed"`         // pixels per second
	DropStep float64 `yaml:"drop_step" toml:"drop_step"` // pixels per level on wall contact
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Lives int     `yaml:"lives" toml:"lives"`
	Speed float64 `yaml:"speed" toml:"speed"` // pixels per second
}

// RocketConfig defines the player's projectiles.
type RocketConfig struct {
	Capacity int     `yaml:"capacity" toml:"capacity"`
	Step     float64 `yaml:"step" toml:"step"`         // pixels per frame, not time scaled
	Cooldown float64 `yaml:"cooldown" toml:"cooldown"` // seconds between shots
}

// BombConfig defines the enemies' projectiles.
type BombConfig struct {
	Capacity int     `yaml:"capacity" toml:"capacity"`
	Speed    float64 `yaml:"speed" toml:"speed"`       // pixels per second
	Cooldown float64 `yaml:"cooldown" toml:"cooldown"` // seconds between drops
}

// TimingConfig defines state machine windows.
type TimingConfig struct {
	RestartGrace float64 `yaml:"restart_grace" toml:"restart_grace"` // seconds after game over before restart is accepted
}

// InputConfig defines how terminal key presses become held keys.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms" toml:"hold_ms"`
	// FireHoldMS is how long a fresh fire press stays held. It must outlast
	// the terminal's auto-repeat delay or a held key reads as two presses.
	FireHoldMS int `yaml:"fire_hold_ms" toml:"fire_hold_ms"`
}

// HighscoreConfig defines where the best score is kept.
type HighscoreConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// EnemyCount returns Rows*Cols.
func (c Config) EnemyCount() int {
	return c.Formation.Rows * c.Formation.Cols
}

// Validate reports every field that would break the simulation.
func (c Config) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("canvas.width", float64(c.Canvas.Width))
	positive("canvas.height", float64(c.Canvas.Height))
	positive("canvas.sprite_size", float64(c.Canvas.SpriteSize))
	positive("canvas.font_width", float64(c.Canvas.FontWidth))
	positive("canvas.font_row_height", float64(c.Canvas.FontRowHeight))
	positive("formation.rows", float64(c.Formation.Rows))
	positive("formation.cols", float64(c.Formation.Cols))
	positive("formation.speed", c.Formation.Speed)
	positive("formation.drop_step", c.Formation.DropStep)
	positive("player.lives", float64(c.Player.Lives))
	positive("player.speed", c.Player.Speed)
	positive("rockets.capacity", float64(c.Rockets.Capacity))
	positive("rockets.step", c.Rockets.Step)
	positive("bombs.capacity", float64(c.Bombs.Capacity))
	positive("bombs.speed", c.Bombs.Speed)
	positive("input.hold_ms", float64(c.Input.HoldMS))
	positive("input.fire_hold_ms", float64(c.Input.FireHoldMS))

	if c.Rockets.Cooldown < 0 {
		errs = append(errs, fmt.Errorf("rockets.cooldown must not be negative, got %v", c.Rockets.Cooldown))
	}
	if c.Bombs.Cooldown < 0 {
		errs = append(errs, fmt.Errorf("bombs.cooldown must not be negative, got %v", c.Bombs.Cooldown))
	}
	if c.Timing.RestartGrace < 0 {
		errs = append(errs, fmt.Errorf("timing.restart_grace must not be negative, got %v", c.Timing.RestartGrace))
	}

	if c.Canvas.SpriteSize > 0 && c.Canvas.Width > 0 && c.Formation.Cols*c.Canvas.SpriteSize >= c.Canvas.Width {
		errs = append(errs, fmt.Errorf("formation of %d columns does not fit a %dpx canvas", c.Formation.Cols, c.Canvas.Width))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
