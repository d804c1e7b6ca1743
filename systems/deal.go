package systems

import (
	"github.com/palegrove/cardfan/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeal advances each card's entrance animation. A card waits out its
// stagger delay, then eases from zero to full presence.
func UpdateDeal(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)

	dt := clock.FrameDelta()
	if dt <= 0 {
		return
	}

	components.Card.Each(e.World, func(entry *donburi.Entry) {
		deal := components.Deal.Get(entry)
		if deal.Done {
			return
		}
		if deal.Waited < deal.Delay {
			deal.Waited += dt
			return
		}
		if deal.Tween == nil {
			deal.Progress = 1
			deal.Done = true
			return
		}
		value, finished := deal.Tween.Update(float32(dt))
		deal.Progress = value
		if finished {
			deal.Progress = 1
			deal.Done = true
		}
	})
}
