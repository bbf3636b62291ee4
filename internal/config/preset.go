package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyClassic DifficultyPreset = "classic" // arcade values over a customised config
)

// ParsePreset maps a CLI value to a preset. The empty string means "leave
// the loaded config alone" and is returned as-is.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyClassic:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or classic)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the arcade values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Bombs.Cooldown = 0.6
		cfg.Formation.Speed = 150
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Bombs.Cooldown = 0.2
		cfg.Formation.Speed = 260
		cfg.Formation.DropStep = 14
	case DifficultyClassic:
		def := Default()
		cfg.Player.Lives = def.Player.Lives
		cfg.Bombs.Cooldown = def.Bombs.Cooldown
		cfg.Formation.Speed = def.Formation.Speed
		cfg.Formation.DropStep = def.Formation.DropStep
	}
}
