package factory

import (
	"github.com/palegrove/cardfan/archetypes"
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/palegrove/cardfan/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCard spawns one card entity with its picking box registered in the
// space. The first layout tick places it; until then the springs are
// unprimed and the deal tween keeps it invisible.
func CreateCard(ecs *ecs.ECS, index int) *donburi.Entry {
	card := archetypes.Card.Spawn(ecs)

	components.Card.SetValue(card, components.CardData{Index: index})
	components.Transform.SetValue(card, components.TransformData{Scale: 1})
	components.Deal.SetValue(card, components.DealData{
		Delay: float64(index) * cfg.Deal.Stagger,
		Tween: gween.New(0, 1, float32(cfg.Deal.Duration), ease.OutCubic),
	})

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		vpEntry, _ := components.Viewport.First(ecs.World)
		vp := components.Viewport.Get(vpEntry)

		w := cfg.Viewport.CardWidth * vp.PxPerUnit
		h := cfg.Viewport.CardHeight * vp.PxPerUnit
		obj := resolv.NewObject(-w, -h, w, h, tags.ResolvCard)
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		obj.Data = card
		space.Add(obj)
		components.Object.SetValue(card, components.ObjectData{Object: obj})
	}

	return card
}

// CreateCards spawns a full hand of n cards.
func CreateCards(ecs *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		CreateCard(ecs, i)
	}
}

// RemoveCards despawns every card entity and detaches its picking box from
// the space.
func RemoveCards(ecs *ecs.ECS) {
	spaceEntry, hasSpace := components.Space.First(ecs.World)
	var space *components.SpaceData
	if hasSpace {
		space = components.Space.Get(spaceEntry)
	}

	var doomed []*donburi.Entry
	components.Card.Each(ecs.World, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})
	for _, e := range doomed {
		if space != nil && e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Object != nil {
				space.Remove(obj.Object)
			}
		}
		e.Remove()
	}
}
