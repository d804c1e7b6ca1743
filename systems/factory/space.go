package factory

import (
	"github.com/palegrove/cardfan/archetypes"
	"github.com/palegrove/cardfan/components"
	"github.com/palegrove/cardfan/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the screen-space picking space plus the 1x1 pointer
// probe the pick system moves to the cursor.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)

	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	pointer := resolv.NewObject(0, 0, 1, 1, tags.ResolvPointer)
	spaceData.Add(pointer)

	components.Space.SetValue(space, components.SpaceData{
		Space:   spaceData,
		Pointer: pointer,
	})
	return space
}
