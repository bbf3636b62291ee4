package config

import "testing"

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "classic"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		bombs  float64
		speed  float64
	}{
		{DifficultyEasy, 5, 0.6, 150},
		{DifficultyNormal, 3, 0.35, 200},
		{DifficultyHard, 2, 0.2, 260},
		{DifficultyClassic, 3, 0.35, 200},
		{"", 3, 0.35, 200},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Player.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Player.Lives, tc.lives)
			}
			if cfg.Bombs.Cooldown != tc.bombs {
				t.Errorf("Bombs.Cooldown = %v, expected %v", cfg.Bombs.Cooldown, tc.bombs)
			}
			if cfg.Formation.Speed != tc.speed {
				t.Errorf("Formation.Speed = %v, expected %v", cfg.Formation.Speed, tc.speed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced an invalid config: %v", err)
			}
		})
	}
}

func TestClassicPresetRestoresArcadeValues(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyHard)
	ApplyPreset(&cfg, DifficultyClassic)

	def := Default()
	if cfg.Player != def.Player || cfg.Bombs != def.Bombs || cfg.Formation != def.Formation {
		t.Errorf("classic should undo hard, got %+v %+v %+v", cfg.Player, cfg.Bombs, cfg.Formation)
	}
}
