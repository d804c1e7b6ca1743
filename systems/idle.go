package systems

import (
	"math"

	"github.com/palegrove/cardfan/archetypes"
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/yohamta/donburi/ecs"
)

// IdleTarget is the focus card's sway pose at effective time t. The card
// drifts side to side, bobs at twice the rate, comes forward at the sway
// extremes and counter-rotates slightly.
func IdleTarget(t, speed float64) components.TargetData {
	cycle := math.Sin(t * speed)
	return components.TargetData{
		Position: components.Vec3{
			X: cfg.Layout.FocusX + cycle*cfg.Idle.SwayAmplitude,
			Y: cfg.Layout.FocusY + math.Sin(t*speed*cfg.Idle.WobbleRate)*cfg.Idle.BobAmplitude,
			Z: cfg.Layout.FocusZ + math.Abs(cycle)*cfg.Idle.DepthAmplitude,
		},
		Rotation: components.Vec3{Y: cycle * -math.Pi * cfg.Idle.SpinFactor},
		Order:    components.RotateXYZ,
		Scale:    cfg.Layout.FocusScale,
	}
}

// FlipDue reports whether the sway crossed flipPhase upward between two
// consecutive samples, once the warmup has passed. Comparing against the
// previous sample fires exactly once per crossing.
func FlipDue(prevCycle, cycle, elapsed, warmup, flipPhase float64) bool {
	if elapsed <= warmup {
		return false
	}
	return prevCycle < flipPhase && cycle >= flipPhase
}

// UpdateIdle samples the sway cycle once per tick and flips the focus card
// when the cycle crests past the flip phase. While the focus card is paused
// the effective time stands still, so no crossings can fire.
func UpdateIdle(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)
	if !clock.Ticked {
		return
	}

	deckEntry, ok := components.Deck.First(e.World)
	if !ok {
		return
	}
	deck := components.Deck.Get(deckEntry)
	if len(deck.Cards) == 0 {
		return
	}

	settings := GetOrCreateSettings(e)
	idle := getOrCreateIdle(e)

	cycle := math.Sin(clock.EffectiveTime() * settings.IdleSpeed)
	if FlipDue(idle.PrevCycle, cycle, clock.Elapsed, cfg.Idle.WarmupSeconds, cfg.Idle.FlipPhase) {
		deck.Flip(deck.Focus, clock.Elapsed)
		PlaySound(e, cfg.SoundFlip)
	}
	idle.PrevCycle = cycle
}

func getOrCreateIdle(e *ecs.ECS) *components.IdleData {
	entry, ok := components.Idle.First(e.World)
	if !ok {
		entry = archetypes.Idle.Spawn(e)
	}
	return components.Idle.Get(entry)
}
