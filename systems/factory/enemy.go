package factory

import (
	"log"

	"github.com/automoto/arenacore/archetypes"
	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns an agent of the named type at pos. Unknown types fall
// back to the default type. source is the enemy source tracking the agent,
// or donburi.Null.
func CreateEnemy(ecs *ecs.ECS, pos math.Vec2, enemyTypeName string, source donburi.Entity) *donburi.Entry {
	// Use the requested enemy type, default type if not found
	enemyType, exists := cfg.Enemy.Types[enemyTypeName]
	if !exists {
		log.Printf("[enemy] unknown enemy type %q, using %q", enemyTypeName, cfg.Enemy.DefaultType)
		enemyTypeName = cfg.Enemy.DefaultType
		enemyType = cfg.Enemy.Types[enemyTypeName]
	}

	var enemy *donburi.Entry
	resolvTags := []string{tags.ResolvHittable, tags.ResolvEnemy}
	switch enemyType.Kind {
	case cfg.EnemyFlying:
		enemy = archetypes.FlyingEnemy.Spawn(ecs)
		resolvTags = append(resolvTags, tags.ResolvFlyingEnemy)
	default:
		enemy = archetypes.GroundEnemy.Spawn(ecs)
		resolvTags = append(resolvTags, tags.ResolvGroundEnemy)
	}

	size := enemyType.Radius * 2
	obj := SpaceOf(ecs.World).AddBody(enemy.Entity(), pos, size, size, resolvTags...)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:   enemyTypeName,
		TypeConfig: &enemyType, // Cache the config reference
		Kind:       enemyType.Kind,
		Target:     donburi.Null,
		Facing:     math.Vec2{X: -1, Y: 0}, // Start facing left
		Spawn:      pos,
		Source:     source,
	})
	components.Health.SetValue(enemy, components.NewHealth(enemyType.Health, enemyType.InvulnFrames))

	initial := cfg.StatePatrol
	if enemyType.Kind == cfg.EnemyFlying {
		initial = cfg.StateSearch
		initFlyer(ecs.World, enemy, pos)
	}
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  initial,
		PreviousState: cfg.StateNone,
	})

	return enemy
}

func initFlyer(w donburi.World, enemy *donburi.Entry, pos math.Vec2) {
	ground, _ := SpaceOf(w).GroundHeight(pos)
	components.Flyer.SetValue(enemy, components.FlyerData{
		Altitude:    ground + cfg.Flying.FlightHeight,
		OrbitTarget: donburi.Null,
	})

	// Stagger flyers spawned on the same tick
	if services := ServicesOf(w); services != nil && services.Rand != nil && cfg.Flying.MaxStartDelay > 0 {
		delay := services.Rand.IntN(cfg.Flying.MaxStartDelay + 1)
		components.Cooldowns.Get(enemy).Start(components.CooldownFlyerStart, delay)
	}
}
