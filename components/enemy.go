package components

import (
	"github.com/automoto/arenacore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type EnemyData struct {
	TypeName   string                  // "Demon", "Imp", "Flyer"...
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
	Kind       config.EnemyKind

	// Target is a weak handle; it is validated every tick before use.
	Target donburi.Entity
	Facing math.Vec2

	// Patrol
	Spawn          math.Vec2
	PatrolPoint    math.Vec2
	HasPatrolPoint bool

	// Aggro memory from the last hit taken
	LastAggressorPos math.Vec2

	ActiveHurtbox donburi.Entity
	Source        donburi.Entity // enemy source that spawned this agent
}

var Enemy = donburi.NewComponentType[EnemyData]()
