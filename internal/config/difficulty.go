package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ApplyArenaPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyArenaPreset(cfg *ArenaConfig, preset DifficultyPreset) error {
	switch preset {
	case "", DifficultyNormal:
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Enemy.ContactDamage = 10
	case DifficultyHard:
		cfg.Player.Lives = 1
		cfg.Enemy.ContactDamage = 25
	default:
		return fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
	return nil
}
