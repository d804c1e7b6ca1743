package systems

import (
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/palegrove/cardfan/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeck settles any bump lifts whose reset deadline has passed.
func UpdateDeck(e *ecs.ECS) {
	deckEntry, ok := components.Deck.First(e.World)
	if !ok {
		return
	}
	deck := components.Deck.Get(deckEntry)

	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)

	deck.ExpireLifts(clock.Elapsed)
}

// Redeal rebuilds the table with n cards and restarts the entrance
// animation. n is clamped to the supported range; any drag in flight is
// abandoned because its card no longer exists.
func Redeal(e *ecs.ECS, n int) {
	deckEntry, ok := components.Deck.First(e.World)
	if !ok {
		return
	}
	deck := components.Deck.Get(deckEntry)

	if n < cfg.Deck.MinCards {
		n = cfg.Deck.MinCards
	}
	if n > cfg.Deck.MaxCards {
		n = cfg.Deck.MaxCards
	}

	deck.SetCards(n)
	factory.RemoveCards(e)
	factory.CreateCards(e, n)

	if dragEntry, ok := components.Drag.First(e.World); ok {
		drag := components.Drag.Get(dragEntry)
		drag.Reset()
		drag.Dragged = false
	}

	st := GetOrCreateSettings(e)
	st.CardCount = n

	PlaySound(e, cfg.SoundDeal)
}
