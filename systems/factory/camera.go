package factory

import (
	"github.com/automoto/arenacore/archetypes"
	"github.com/automoto/arenacore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera adds the viewer camera looking at the middle of the arena.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	var center math.Vec2
	if space := SpaceOf(ecs.World); space != nil {
		w, h := space.Size()
		center = math.Vec2{X: w / 2 * space.Scale(), Y: h / 2 * space.Scale()}
	}
	components.Camera.SetValue(camera, components.CameraData{Position: center})
	return camera
}
