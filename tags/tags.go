package tags

import "github.com/yohamta/donburi"

var (
	Card = donburi.NewTag().SetName("Card")
)

// Resolv tags for pointer picking
const (
	ResolvCard    = "card"
	ResolvPointer = "pointer"
)
