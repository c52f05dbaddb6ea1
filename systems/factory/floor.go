package factory

import (
	"github.com/automoto/arenacore/archetypes"
	"github.com/automoto/arenacore/components"
	"github.com/automoto/arenacore/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloor adds a walkable rectangle to the space.
func CreateFloor(ecs *ecs.ECS, f leveldata.Floor) *donburi.Entry {
	floor := archetypes.Floor.Spawn(ecs)

	obj := SpaceOf(ecs.World).AddFloor(f.X, f.Y, f.W, f.H, f.Height)
	components.Object.SetValue(floor, components.ObjectData{Object: obj})

	return floor
}
