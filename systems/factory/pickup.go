package factory

import (
	"github.com/automoto/arenacore/archetypes"
	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const pickupSize = 0.6

// CreatePickup places an item in the world. durability is the remaining
// wear of a dropped weapon, or components.FreshDurability.
func CreatePickup(ecs *ecs.ECS, pos math.Vec2, def *cfg.ItemDef, durability int) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)

	obj := SpaceOf(ecs.World).AddBody(pickup.Entity(), pos, pickupSize, pickupSize, tags.ResolvPickup)
	components.Object.SetValue(pickup, components.ObjectData{Object: obj})

	components.Pickup.SetValue(pickup, components.PickupData{
		Def:        def,
		Durability: durability,
	})
	return pickup
}
