package systems

import (
	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/automoto/arenacore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TryPickup moves the nearest pickup within reach into player's inventory.
func TryPickup(ecs *ecs.ECS, player *donburi.Entry) bool {
	services := factory.ServicesOf(ecs.World)
	if services == nil {
		return false
	}
	pos, ok := services.Query.Position(player.Entity())
	if !ok {
		return false
	}

	nearest, dist, ok := services.Query.Nearest(pos, tags.ResolvPickup, nil)
	if !ok || dist > cfg.Player.InteractRange {
		return false
	}

	pickup := components.Pickup.Get(ecs.World.Entry(nearest))
	def, durability := pickup.Def, pickup.Durability

	// Remove first so a swapped-out drop can't be picked straight back up
	factory.DestroyActor(ecs.World, nearest)
	AddItem(ecs, player, def, durability)
	return true
}
