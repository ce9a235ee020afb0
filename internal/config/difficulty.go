package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// presetScale returns the pursuer speed and clock duration multipliers.
func presetScale(p DifficultyPreset) (speed, duration float64) {
	switch p {
	case DifficultyEasy:
		return 0.8, 1.5
	case DifficultyHard:
		return 1.3, 0.75
	default:
		return 1, 1
	}
}

// ApplyPreset scales the pursuer and the countdown for a preset.
// Normal leaves the tuning untouched.
func ApplyPreset(t Tuning, p DifficultyPreset) Tuning {
	speed, duration := presetScale(p)
	t.Pursuer.SpeedKeyboard *= speed
	t.Pursuer.SpeedTouch *= speed
	t.Clock.Duration *= duration
	return t
}
