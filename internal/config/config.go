// Package config provides YAML-based tuning for Homeward: movement speeds,
// the countdown clock, the terminal projection and input handling.
package config

import (
	"fmt"
	"time"
)

// Tuning contains every gameplay constant that can be overridden from YAML.
type Tuning struct {
	Player  PlayerTuning  `yaml:"player"`
	Pursuer PursuerTuning `yaml:"pursuer"`
	Clock   ClockTuning   `yaml:"clock"`
	View    ViewTuning    `yaml:"view"`
	Input   InputTuning   `yaml:"input"`
}

// PlayerTuning defines player movement and animation.
type PlayerTuning struct {
	Speed   float64 `yaml:"speed"`    // world units per second
	Radius  float64 `yaml:"radius"`   // collision half-size
	AnimFPS float64 `yaml:"anim_fps"` // walk cycle frames per second
}

// PursuerTuning defines the chaser.
type PursuerTuning struct {
	SpeedKeyboard   float64 `yaml:"speed_keyboard"`
	SpeedTouch      float64 `yaml:"speed_touch"`
	CatchDistance   float64 `yaml:"catch_distance"`
	MinMoveDistance float64 `yaml:"min_move_distance"`
}

// ClockTuning defines the countdown and frame timing.
type ClockTuning struct {
	Duration     float64 `yaml:"duration"`      // real seconds until timeout
	MaxDt        float64 `yaml:"max_dt"`        // per-frame delta cap
	FirstDt      float64 `yaml:"first_dt"`      // delta used for the very first frame
	SyncInterval float64 `yaml:"sync_interval"` // elapsed-time publish cadence
	StartHour    int     `yaml:"start_hour"`    // in-game clock at elapsed 0
	EndHour      int     `yaml:"end_hour"`      // in-game clock at timeout
}

// ViewTuning defines how many world units one terminal cell covers.
type ViewTuning struct {
	CellW float64 `yaml:"cell_w"`
	CellH float64 `yaml:"cell_h"`
}

// InputTuning defines the input device and key-hold emulation.
type InputTuning struct {
	Device Device `yaml:"device"`
	HoldMS int    `yaml:"hold_ms"` // a key counts as held this long after its last repeat
}

// Device identifies the kind of input the player uses.
type Device string

const (
	DeviceKeyboard Device = "keyboard"
	DeviceTouch    Device = "touch"
)

// PursuerSpeed returns the chase speed for the given device.
// Touch play gets the slower pursuer.
func (t Tuning) PursuerSpeed(d Device) float64 {
	if d == DeviceTouch {
		return t.Pursuer.SpeedTouch
	}
	return t.Pursuer.SpeedKeyboard
}

// HoldDuration returns the key-hold window as a time.Duration.
func (i InputTuning) HoldDuration() time.Duration {
	return time.Duration(i.HoldMS) * time.Millisecond
}

// Validate checks that the tuning can drive a simulation.
func (t Tuning) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{t.Player.Speed > 0, "player.speed must be positive"},
		{t.Player.Radius > 0, "player.radius must be positive"},
		{t.Player.AnimFPS > 0, "player.anim_fps must be positive"},
		{t.Pursuer.SpeedKeyboard >= 0, "pursuer.speed_keyboard must not be negative"},
		{t.Pursuer.SpeedTouch >= 0, "pursuer.speed_touch must not be negative"},
		{t.Pursuer.CatchDistance > 0, "pursuer.catch_distance must be positive"},
		{t.Pursuer.MinMoveDistance >= 0, "pursuer.min_move_distance must not be negative"},
		{t.Clock.Duration > 0, "clock.duration must be positive"},
		{t.Clock.MaxDt > 0, "clock.max_dt must be positive"},
		{t.Clock.FirstDt > 0 && t.Clock.FirstDt <= t.Clock.MaxDt, "clock.first_dt must be in (0, max_dt]"},
		{t.Clock.SyncInterval > 0, "clock.sync_interval must be positive"},
		{t.Clock.EndHour > t.Clock.StartHour, "clock.end_hour must be after start_hour"},
		{t.View.CellW > 0 && t.View.CellH > 0, "view.cell_w and view.cell_h must be positive"},
		{t.Input.Device == DeviceKeyboard || t.Input.Device == DeviceTouch, "input.device must be keyboard or touch"},
		{t.Input.HoldMS > 0, "input.hold_ms must be positive"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("config: invalid tuning: %s", c.what)
		}
	}
	return nil
}
