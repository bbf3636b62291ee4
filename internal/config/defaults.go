package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:         640,
			Height:        480,
			SpriteSize:    32,
			FontWidth:     10,
			FontRowHeight: 18,
		},
		Formation: FormationConfig{
			Rows:     5,
			Cols:     10,
			Speed:    200,
			DropStep: 10,
		},
		Player: PlayerConfig{
			Lives: 3,
			Speed: 400,
		},
		Rockets: RocketConfig{
			Capacity: 10,
			Step:     1,
			Cooldown: 0.25,
		},
		Bombs: BombConfig{
			Capacity: 10,
			Speed:    150,
			Cooldown: 0.35,
		},
		Timing: TimingConfig{
			RestartGrace: 2.0,
		},
		Input: InputConfig{
			HoldMS:     120,
			FireHoldMS: 650,
		},
		Highscore: HighscoreConfig{
			Path: "~/.invaders/spaceinvaders.hscore",
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
