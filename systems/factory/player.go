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

func CreatePlayer(ecs *ecs.ECS, pos math.Vec2, index int) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.Radius * 2
	obj := SpaceOf(ecs.World).AddBody(player.Entity(), pos, size, size, tags.ResolvHittable, tags.ResolvPlayer)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Index:  index,
		Facing: math.Vec2{X: 1, Y: 0},
	})
	components.Health.SetValue(player, components.NewHealth(cfg.Player.Health, cfg.Combat.PlayerInvulnFrames))
	components.Inventory.SetValue(player, components.NewInventory(cfg.Inventory.Slots))

	return player
}
