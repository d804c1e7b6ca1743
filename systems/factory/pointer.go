package factory

import (
	"github.com/palegrove/cardfan/archetypes"
	"github.com/palegrove/cardfan/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMouse spawns the pointer state singleton.
func CreateMouse(ecs *ecs.ECS) *donburi.Entry {
	mouse := archetypes.Mouse.Spawn(ecs)
	components.Mouse.SetValue(mouse, components.MouseData{HoverIndex: -1})
	return mouse
}

// CreateDrag spawns the drag state machine in its idle state.
func CreateDrag(ecs *ecs.ECS) *donburi.Entry {
	drag := archetypes.Drag.Spawn(ecs)
	components.Drag.SetValue(drag, components.DragData{
		TargetIndex: -1,
		ArmedIndex:  -1,
	})
	return drag
}

// CreateInput spawns the polled input singleton.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	input := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(input, components.InputData{
		Pending: make([]components.Gesture, 0, 16),
	})
	return input
}
