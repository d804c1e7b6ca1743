package factory

import (
	"github.com/palegrove/cardfan/archetypes"
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeck spawns the card store with n fresh cards.
func CreateDeck(ecs *ecs.ECS, n int) *donburi.Entry {
	deck := archetypes.Deck.Spawn(ecs)

	data := components.DeckData{
		LiftHeight:     cfg.Deck.LiftHeight,
		LiftResetDelay: cfg.Deck.LiftResetDelay,
	}
	data.SetCards(n)
	components.Deck.Set(deck, &data)

	return deck
}
