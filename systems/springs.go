package systems

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSprings advances every card's springs toward the current targets and
// writes the sprung pose into the transform. This runs every render frame
// with the real frame delta, so motion stays smooth however far apart the
// logic ticks land.
func UpdateSprings(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)

	deckEntry, ok := components.Deck.First(e.World)
	if !ok {
		return
	}
	deck := components.Deck.Get(deckEntry)

	dt := clock.FrameDelta()
	if dt <= 0 {
		return
	}
	if dt > cfg.Springs.MaxFrameDelta {
		dt = cfg.Springs.MaxFrameDelta
	}

	layout := harmonica.NewSpring(dt, cfg.Springs.Layout.Frequency, cfg.Springs.Layout.Damping)
	flip := harmonica.NewSpring(dt, cfg.Springs.Flip.Frequency, cfg.Springs.Flip.Damping)
	lift := harmonica.NewSpring(dt, cfg.Springs.Lift.Frequency, cfg.Springs.Lift.Damping)

	components.Card.Each(e.World, func(entry *donburi.Entry) {
		card := components.Card.Get(entry)
		target := components.Target.Get(entry)
		spring := components.Spring.Get(entry)
		tr := components.Transform.Get(entry)

		// A zero scale means the layout pass has not written this card's
		// target yet; snapping to it would park the card at the origin.
		if !spring.Primed {
			if target.Scale == 0 {
				return
			}
			spring.SnapTo(target)
			spring.Primed = true
		}

		stepVec(layout, spring.Position[:], target.Position)
		stepVec(layout, spring.Rotation[:], target.Rotation)
		spring.Scale.Pos, spring.Scale.Vel = layout.Update(spring.Scale.Pos, spring.Scale.Vel, target.Scale)

		flipTarget, liftTarget := 0.0, 0.0
		if card.Index >= 0 && card.Index < len(deck.Cards) {
			if deck.Cards[card.Index].Flipped {
				flipTarget = math.Pi
			}
			liftTarget = deck.Cards[card.Index].Lift
		}
		spring.Flip.Pos, spring.Flip.Vel = flip.Update(spring.Flip.Pos, spring.Flip.Vel, flipTarget)
		spring.Lift.Pos, spring.Lift.Vel = lift.Update(spring.Lift.Pos, spring.Lift.Vel, liftTarget)

		tr.Position = components.Vec3{X: spring.Position[0].Pos, Y: spring.Position[1].Pos, Z: spring.Position[2].Pos}
		tr.Rotation = components.Vec3{X: spring.Rotation[0].Pos, Y: spring.Rotation[1].Pos, Z: spring.Rotation[2].Pos}
		tr.Order = target.Order
		tr.Scale = spring.Scale.Pos
	})
}

// stepVec advances three axis springs toward a vec target.
func stepVec(sp harmonica.Spring, s []components.SpringState, target components.Vec3) {
	s[0].Pos, s[0].Vel = sp.Update(s[0].Pos, s[0].Vel, target.X)
	s[1].Pos, s[1].Vel = sp.Update(s[1].Pos, s[1].Vel, target.Y)
	s[2].Pos, s[2].Vel = sp.Update(s[2].Pos, s[2].Vel, target.Z)
}
