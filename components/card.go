package components

import "github.com/yohamta/donburi"

// CardData links a card entity to its slot in the deck store.
type CardData struct {
	Index int
}

var Card = donburi.NewComponentType[CardData]()
