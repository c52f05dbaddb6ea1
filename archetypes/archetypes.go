package archetypes

import (
	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Intent,
		components.Object,
		components.Health,
		components.Cooldowns,
		components.Inventory,
	)
	GroundEnemy = newArchetype(
		tags.Enemy,
		tags.GroundEnemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.State,
		components.Cooldowns,
	)
	FlyingEnemy = newArchetype(
		tags.Enemy,
		tags.FlyingEnemy,
		components.Enemy,
		components.Flyer,
		components.Object,
		components.Health,
		components.State,
		components.Cooldowns,
	)
	Hurtbox = newArchetype(
		tags.Hurtbox,
		components.Hurtbox,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	EnemySource = newArchetype(
		components.EnemySource,
	)
	ItemSource = newArchetype(
		components.ItemSource,
	)
	WaveCoordinator = newArchetype(
		components.WaveCoordinator,
	)
	Space = newArchetype(
		components.Space,
	)
	Services = newArchetype(
		components.Services,
		components.Clock,
	)
	Level = newArchetype(
		components.Level,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Object,
	)
	Camera = newArchetype(
		components.Camera,
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
