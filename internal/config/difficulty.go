package config

// DifficultyPreset represents a named difficulty level.
// Presets only tune start-time parameters; nothing changes during play.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Empty means fixed.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyFixed, true
	default:
		return DifficultyFixed, false
	}
}

// IsFixedPreset returns true if the preset leaves the config untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed || preset == ""
}

// ApplyPreset adjusts cfg in place for a difficulty preset.
// Normal and fixed keep the loaded values.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Grid.TerminalProbability *= 0.6
		cfg.Targets.Count += 2
		cfg.Targets.Speed *= 0.5
		cfg.Targets.SpeedMax *= 0.5
		cfg.Projectile.Tolerance += 5
		cfg.Hoop.Width *= 1.3
	case DifficultyHard:
		cfg.Grid.TerminalProbability = clampF(cfg.Grid.TerminalProbability*1.6, 0, 1)
		cfg.Targets.Count = max(1, cfg.Targets.Count-2)
		cfg.Targets.Speed *= 2
		cfg.Targets.SpeedMax *= 2
		cfg.Hoop.Width *= 0.7
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
