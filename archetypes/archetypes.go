package archetypes

import (
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/palegrove/cardfan/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Card = newArchetype(
		tags.Card,
		components.Card,
		components.Transform,
		components.Target,
		components.Spring,
		components.Deal,
		components.Object,
	)
	Deck = newArchetype(
		components.Deck,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Mouse = newArchetype(
		components.Mouse,
	)
	Drag = newArchetype(
		components.Drag,
	)
	Input = newArchetype(
		components.Input,
	)
	Idle = newArchetype(
		components.Idle,
	)
	Space = newArchetype(
		components.Space,
	)
	Viewport = newArchetype(
		components.Viewport,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
