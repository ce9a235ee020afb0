package config

import (
	_ "embed"
)

//go:embed defaults/homeward.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the hardcoded tuning, used when the embedded YAML
// cannot be parsed.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			Speed:   180,
			Radius:  5,
			AnimFPS: 8,
		},
		Pursuer: PursuerTuning{
			SpeedKeyboard:   50,
			SpeedTouch:      30,
			CatchDistance:   14,
			MinMoveDistance: 2,
		},
		Clock: ClockTuning{
			Duration:     60,
			MaxDt:        0.05,
			FirstDt:      0.016,
			SyncInterval: 0.5,
			StartHour:    13,
			EndHour:      21,
		},
		View: ViewTuning{
			CellW: 4,
			CellH: 8,
		},
		Input: InputTuning{
			Device: DeviceKeyboard,
			HoldMS: 250,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultTuningYAML
}
