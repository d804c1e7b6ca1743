package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DealData animates a card's entrance after a deal. The tween starts once
// the stagger delay has elapsed and eases the card from nothing to full
// size.
type DealData struct {
	Delay    float64 // seconds before this card's tween starts
	Waited   float64 // time accumulated against Delay
	Tween    *gween.Tween
	Progress float32 // 0 hidden, 1 fully dealt
	Done     bool
}

var Deal = donburi.NewComponentType[DealData]()
