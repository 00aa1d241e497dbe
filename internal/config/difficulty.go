package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. The empty string keeps the config as is.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// speedScaleForPreset returns the patrol speed multiplier for a preset.
func speedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.75
	default:
		return 1.0
	}
}

// ApplyPreset adjusts the patrol speed range of every moving platform.
// Fixed pins each range to its midpoint so runs do not depend on the seed.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}

	for i := range cfg.Platforms {
		p := &cfg.Platforms[i]
		if p.Static() {
			continue
		}
		if preset == DifficultyFixed {
			mid := (p.SpeedMin + p.SpeedMax) / 2
			p.SpeedMin, p.SpeedMax = mid, mid
			continue
		}
		scale := speedScaleForPreset(preset)
		p.SpeedMin *= scale
		p.SpeedMax *= scale
	}
}
