package systems

import (
	stdmath "math"

	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/shared/gamemath"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/automoto/arenacore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateEnemies runs the ground agents' state machine:
// WaitingForTarget -> Patrol <-> Chase <-> Attack.
func UpdateEnemies(ecs *ecs.ECS) {
	services := factory.ServicesOf(ecs.World)
	if services == nil || services.Query == nil || services.Nav == nil {
		return
	}

	var agents []*donburi.Entry
	tags.GroundEnemy.Each(ecs.World, func(e *donburi.Entry) {
		agents = append(agents, e)
	})

	for _, e := range agents {
		// Skip if enemy is in death sequence
		if !e.Valid() || e.HasComponent(components.Death) {
			continue
		}
		guardAgent("enemy", e, func() {
			updateGroundEnemy(ecs, services, e)
		})
	}
}

func updateGroundEnemy(ecs *ecs.ECS, services *components.ServicesData, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	state := components.State.Get(e)
	cooldowns := components.Cooldowns.Get(e)
	enemyType := enemy.TypeConfig
	state.StateTimer++

	pos, ok := services.Query.Position(e.Entity())
	if !ok {
		return
	}

	targetPos, hasTarget := acquireTarget(ecs.World, services, enemy, pos)
	if !hasTarget {
		setState(e, cfg.StateWaitingForTarget)
		return
	}

	distanceToTarget := gamemath.Distance(pos, targetPos)

	switch {
	case distanceToTarget <= enemyType.AttackRange:
		setState(e, cfg.StateAttack)
		handleAttackState(ecs, e, enemy, cooldowns, pos, targetPos)
	case distanceToTarget <= enemyType.SightRange:
		setState(e, cfg.StateChase)
		handleChaseState(services, e, enemy, pos, targetPos)
	case cooldowns.Active(components.CooldownHitReaction):
		// Aggro memory: head for whoever hit us
		setState(e, cfg.StateChase)
		handleChaseState(services, e, enemy, pos, enemy.LastAggressorPos)
	default:
		setState(e, cfg.StatePatrol)
		handlePatrolState(services, e, enemy, pos)
	}
}

// acquireTarget keeps a living target that is still in sight, otherwise
// picks the nearest living player.
func acquireTarget(w donburi.World, services *components.ServicesData, enemy *components.EnemyData, pos math.Vec2) (math.Vec2, bool) {
	if isLiving(w, enemy.Target) {
		if targetPos, ok := services.Query.Position(enemy.Target); ok &&
			gamemath.Distance(pos, targetPos) <= enemy.TypeConfig.SightRange {
			return targetPos, true
		}
	}

	target, _, ok := services.Query.Nearest(pos, tags.ResolvPlayer, livingFilter(w))
	if !ok {
		enemy.Target = donburi.Null
		return math.Vec2{}, false
	}
	enemy.Target = target
	return services.Query.Position(target)
}

func handleChaseState(services *components.ServicesData, e *donburi.Entry, enemy *components.EnemyData, pos, goal math.Vec2) {
	turnToward(enemy, pos, goal)

	// Stop short of the target instead of walking into it
	step := enemy.TypeConfig.MoveSpeed * cfg.Dt()
	remaining := gamemath.Distance(pos, goal) - enemy.TypeConfig.AttackRange*0.5
	if remaining <= 0 {
		return
	}
	services.Nav.MoveToward(e.Entity(), goal, stdmath.Min(step, remaining))
}

func handlePatrolState(services *components.ServicesData, e *donburi.Entry, enemy *components.EnemyData, pos math.Vec2) {
	if !enemy.HasPatrolPoint {
		point, ok := services.Query.SampleWalkablePoint(enemy.Spawn, enemy.TypeConfig.PatrolRadius)
		if !ok || !withinProbeDepth(services, pos, point) {
			// Retry next tick
			return
		}
		enemy.PatrolPoint = point
		enemy.HasPatrolPoint = true
	}

	turnToward(enemy, pos, enemy.PatrolPoint)
	services.Nav.MoveToward(e.Entity(), enemy.PatrolPoint, enemy.TypeConfig.MoveSpeed*cfg.Dt())

	if next, ok := services.Query.Position(e.Entity()); ok &&
		gamemath.Distance(next, enemy.PatrolPoint) <= cfg.Enemy.PatrolArrival {
		enemy.HasPatrolPoint = false
	}
}

// withinProbeDepth rejects patrol points on floors too far above or below.
func withinProbeDepth(services *components.ServicesData, from, to math.Vec2) bool {
	here, ok := services.Query.GroundHeight(from)
	if !ok {
		return true
	}
	there, ok := services.Query.GroundHeight(to)
	if !ok {
		return false
	}
	return stdmath.Abs(there-here) <= cfg.Enemy.PatrolProbeDepth
}

func handleAttackState(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, cooldowns *components.CooldownData, pos, targetPos math.Vec2) {
	// Halt and face the target fully before swinging
	if dir := gamemath.Sub(targetPos, pos); dir.X != 0 || dir.Y != 0 {
		enemy.Facing = gamemath.Normalize(dir)
	}

	if !cooldowns.TryConsume(components.CooldownAttack, enemy.TypeConfig.AttackCooldown) {
		return
	}

	factory.CreateHurtbox(ecs, e, factory.HurtboxSpec{
		Kind:      components.HurtboxMelee,
		Damage:    enemy.TypeConfig.Damage,
		Direction: enemy.Facing,
		Reach:     enemy.TypeConfig.Radius + enemy.TypeConfig.HurtboxWidth/2,
		Width:     enemy.TypeConfig.HurtboxWidth,
		Height:    enemy.TypeConfig.HurtboxHeight,
		LifeTime:  cfg.Combat.HurtboxLifetime,
	})
	PlaySFX(ecs.World, cfg.SoundSwing, e.Entity())
}

func turnToward(enemy *components.EnemyData, pos, goal math.Vec2) {
	enemy.Facing = gamemath.RotateTowards(enemy.Facing, gamemath.Sub(goal, pos), enemy.TypeConfig.TurnSpeed*cfg.Dt())
}
