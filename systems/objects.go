package systems

import (
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refits every card's collision box to its on-screen quad so
// picking sees exactly what the player sees.
func UpdateObjects(e *ecs.ECS) {
	vpEntry, ok := components.Viewport.First(e.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(vpEntry)

	for entry := range components.Object.Iter(e.World) {
		obj := components.Object.Get(entry)
		if obj.Object == nil {
			continue
		}
		tr := components.Transform.Get(entry)
		spring := components.Spring.Get(entry)

		scale := tr.Scale * vp.DepthScale(effectiveZ(spring))
		w := cfg.Viewport.CardWidth * vp.PxPerUnit * scale
		h := cfg.Viewport.CardHeight * vp.PxPerUnit * scale

		cx, cy := vp.ToScreen(tr.Position)
		obj.X = cx - w/2
		obj.Y = cy - h/2
		obj.W = w
		obj.H = h
		obj.Update()
	}
}
