package factory

import (
	"github.com/palegrove/cardfan/archetypes"
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateViewport spawns the scene-to-window mapping for a fixed window size.
func CreateViewport(ecs *ecs.ECS, screenW, screenH int) *donburi.Entry {
	vp := archetypes.Viewport.Spawn(ecs)
	components.Viewport.SetValue(vp, components.ViewportData{
		ScreenW:        float64(screenW),
		ScreenH:        float64(screenH),
		PxPerUnit:      float64(screenH) / cfg.Viewport.SceneHeight,
		CenterX:        cfg.Viewport.CameraX,
		CenterY:        cfg.Viewport.CameraY,
		DepthScaleGain: cfg.Viewport.DepthScaleGain,
	})
	return vp
}
