package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML override file for the motion constants. Absent keys keep
// their built-in defaults, so a file can override a single value.
type Tuning struct {
	Springs *SpringsTuning `yaml:"springs"`
	Idle    *IdleTuning    `yaml:"idle"`
	Layout  *LayoutTuning  `yaml:"layout"`
	Drag    *DragTuning    `yaml:"drag"`
	Clock   *ClockTuning   `yaml:"clock"`
}

type SpringsTuning struct {
	Layout *ProfileTuning `yaml:"layout"`
	Flip   *ProfileTuning `yaml:"flip"`
	Lift   *ProfileTuning `yaml:"lift"`
}

type ProfileTuning struct {
	Frequency *float64 `yaml:"frequency"`
	Damping   *float64 `yaml:"damping"`
}

type IdleTuning struct {
	Speed         *float64 `yaml:"speed"`
	WarmupSeconds *float64 `yaml:"warmup_seconds"`
	FlipPhase     *float64 `yaml:"flip_phase"`
}

type LayoutTuning struct {
	SpreadPerCard *float64 `yaml:"spread_per_card"`
	DropPerCard   *float64 `yaml:"drop_per_card"`
	TiltPerCard   *float64 `yaml:"tilt_per_card"`
	FocusScale    *float64 `yaml:"focus_scale"`
}

type DragTuning struct {
	TiltFactor    *float64 `yaml:"tilt_factor"`
	RangeFactor   *float64 `yaml:"range_factor"`
	DropThreshold *float64 `yaml:"drop_threshold"`
}

type ClockTuning struct {
	TicksPerSecond *float64 `yaml:"ticks_per_second"`
}

// LoadTuning reads a YAML override file and applies it onto the global
// configuration. Missing file is an error; the caller decides whether the
// file was optional.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning file: %w", err)
	}
	return ApplyTuning(data)
}

// ApplyTuning parses YAML tuning bytes and overrides the globals in place.
func ApplyTuning(data []byte) error {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse tuning: %w", err)
	}

	if t.Springs != nil {
		applyProfile(&Springs.Layout, t.Springs.Layout)
		applyProfile(&Springs.Flip, t.Springs.Flip)
		applyProfile(&Springs.Lift, t.Springs.Lift)
	}
	if t.Idle != nil {
		setIf(&Idle.Speed, t.Idle.Speed)
		setIf(&Idle.WarmupSeconds, t.Idle.WarmupSeconds)
		setIf(&Idle.FlipPhase, t.Idle.FlipPhase)
	}
	if t.Layout != nil {
		setIf(&Layout.SpreadPerCard, t.Layout.SpreadPerCard)
		setIf(&Layout.DropPerCard, t.Layout.DropPerCard)
		setIf(&Layout.TiltPerCard, t.Layout.TiltPerCard)
		setIf(&Layout.FocusScale, t.Layout.FocusScale)
	}
	if t.Drag != nil {
		setIf(&Drag.TiltFactor, t.Drag.TiltFactor)
		setIf(&Drag.RangeFactor, t.Drag.RangeFactor)
		setIf(&Drag.DropThreshold, t.Drag.DropThreshold)
	}
	if t.Clock != nil {
		setIf(&Clock.TicksPerSecond, t.Clock.TicksPerSecond)
	}
	return nil
}

func applyProfile(dst *SpringProfile, src *ProfileTuning) {
	if src == nil {
		return
	}
	setIf(&dst.Frequency, src.Frequency)
	setIf(&dst.Damping, src.Damping)
}

func setIf(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
