package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a card's screen-space picking box. The objects system
// refits it to the projected spring pose every frame, so picking tracks the
// animation rather than the layout target.
type ObjectData struct {
	*resolv.Object
}

// SpaceData owns the picking space and the 1x1 pointer probe that is moved
// to the cursor before each pick (singleton component).
type SpaceData struct {
	*resolv.Space
	Pointer *resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
var Space = donburi.NewComponentType[SpaceData]()
