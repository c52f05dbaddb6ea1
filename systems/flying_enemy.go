package systems

import (
	stdmath "math"

	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/shared/gamemath"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/automoto/arenacore/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateFlyingEnemies runs the flyers' state machine:
// Search -> Hover <-> Chase <-> Attack, with the timed attack sequence
// advancing underneath regardless of state.
func UpdateFlyingEnemies(ecs *ecs.ECS) {
	services := factory.ServicesOf(ecs.World)
	if services == nil || services.Query == nil || services.Nav == nil {
		return
	}

	var agents []*donburi.Entry
	tags.FlyingEnemy.Each(ecs.World, func(e *donburi.Entry) {
		agents = append(agents, e)
	})

	for _, e := range agents {
		if !e.Valid() || e.HasComponent(components.Death) {
			continue
		}
		guardAgent("flyer", e, func() {
			updateFlyingEnemy(ecs, services, e)
		})
	}
}

func updateFlyingEnemy(ecs *ecs.ECS, services *components.ServicesData, e *donburi.Entry) {
	w := ecs.World
	enemy := components.Enemy.Get(e)
	flyer := components.Flyer.Get(e)
	state := components.State.Get(e)
	cooldowns := components.Cooldowns.Get(e)
	health := components.Health.Get(e)
	state.StateTimer++

	pos, ok := services.Query.Position(e.Entity())
	if !ok {
		return
	}
	defer updateAltitude(services, enemy, flyer, pos)

	// Staggered start
	if cooldowns.Active(components.CooldownFlyerStart) {
		return
	}

	// Flinch: passive hover until the window closes
	if health.IsInvulnerable() {
		setState(e, cfg.StateHover)
		cancelAttack(w, enemy, flyer, cooldowns)
		advanceAttackSequence(ecs, e, enemy, flyer, cooldowns)
		return
	}

	advanceAttackSequence(ecs, e, enemy, flyer, cooldowns)

	targetPos, hasTarget := acquireTarget(w, services, enemy, pos)
	distanceToTarget := stdmath.Inf(1)
	if hasTarget {
		distanceToTarget = gamemath.Distance(pos, targetPos)
	}

	// A player in sight overrides searching and escorting
	if distanceToTarget < enemy.TypeConfig.SightRange && currentState(e) != cfg.StateAttack {
		setState(e, cfg.StateChase)
	}

	switch currentState(e) {
	case cfg.StateSearch:
		handleSearchState(w, services, e, enemy, flyer, pos)
	case cfg.StateHover:
		handleHoverState(w, services, e, enemy, flyer, pos)
	case cfg.StateChase:
		handleFlyerChaseState(services, e, enemy, pos, targetPos, distanceToTarget)
	case cfg.StateAttack:
		handleFlyerAttackState(e, enemy, flyer, cooldowns, pos, targetPos, distanceToTarget)
	default:
		setState(e, cfg.StateSearch)
	}
}

func handleSearchState(w donburi.World, services *components.ServicesData, e *donburi.Entry, enemy *components.EnemyData, flyer *components.FlyerData, pos math.Vec2) {
	ally, _, ok := services.Query.Nearest(pos, tags.ResolvGroundEnemy, livingFilter(w))
	if ok {
		flyer.OrbitTarget = ally
		if allyPos, ok := services.Query.Position(ally); ok {
			// Join the orbit where we already are
			flyer.OrbitAngle = stdmath.Atan2(pos.Y-allyPos.Y, pos.X-allyPos.X)
		}
		flyer.HasWander = false
		setState(e, cfg.StateHover)
		return
	}

	flyer.OrbitTarget = donburi.Null
	repick := !flyer.HasWander ||
		gamemath.Distance(pos, flyer.WanderTarget) < cfg.Flying.WanderArrival ||
		(services.Rand != nil && services.Rand.Float64() < cfg.Flying.WanderRepick)
	if repick {
		// A missed sample keeps the old target
		if point, ok := services.Query.SampleWalkablePoint(pos, cfg.Flying.HoverRadius*2); ok {
			flyer.WanderTarget = point
			flyer.HasWander = true
		} else if !flyer.HasWander {
			return
		}
	}

	turnToward(enemy, pos, flyer.WanderTarget)
	services.Nav.MoveToward(e.Entity(), flyer.WanderTarget, enemy.TypeConfig.MoveSpeed*cfg.Dt())
}

func handleHoverState(w donburi.World, services *components.ServicesData, e *donburi.Entry, enemy *components.EnemyData, flyer *components.FlyerData, pos math.Vec2) {
	if !isLiving(w, flyer.OrbitTarget) {
		flyer.OrbitTarget = donburi.Null
		setState(e, cfg.StateSearch)
		return
	}
	allyPos, ok := services.Query.Position(flyer.OrbitTarget)
	if !ok {
		return
	}

	flyer.OrbitAngle = stdmath.Mod(flyer.OrbitAngle+cfg.Flying.HoverSpeed*cfg.Dt(), 2*stdmath.Pi)
	goal := gamemath.OrbitOffset(allyPos, flyer.OrbitAngle, cfg.Flying.HoverRadius)
	turnToward(enemy, pos, goal)
	services.Nav.MoveToward(e.Entity(), goal, enemy.TypeConfig.MoveSpeed*cfg.Dt())
}

func handleFlyerChaseState(services *components.ServicesData, e *donburi.Entry, enemy *components.EnemyData, pos, targetPos math.Vec2, distanceToTarget float64) {
	switch {
	case distanceToTarget >= enemy.TypeConfig.SightRange:
		enemy.Target = donburi.Null
		setState(e, cfg.StateSearch)
		return
	case distanceToTarget < enemy.TypeConfig.AttackRange:
		setState(e, cfg.StateAttack)
		return
	}

	turnToward(enemy, pos, targetPos)
	services.Nav.MoveToward(e.Entity(), targetPos, enemy.TypeConfig.MoveSpeed*cfg.Dt())
}

func handleFlyerAttackState(e *donburi.Entry, enemy *components.EnemyData, flyer *components.FlyerData, cooldowns *components.CooldownData, pos, targetPos math.Vec2, distanceToTarget float64) {
	// The sequence keeps running on its timers after we leave
	if distanceToTarget >= enemy.TypeConfig.AttackRange {
		setState(e, cfg.StateChase)
		return
	}

	if dir := gamemath.Sub(targetPos, pos); dir.X != 0 || dir.Y != 0 {
		enemy.Facing = gamemath.Normalize(dir)
	}

	if flyer.Phase == components.PhaseIdle && cooldowns.Ready(components.CooldownAttack) {
		startAttack(flyer, enemy.TypeConfig)
	}
}

// startAttack begins telegraph -> active -> recover and the dive that goes
// with it.
func startAttack(flyer *components.FlyerData, enemyType *cfg.EnemyTypeConfig) {
	flyer.Phase = components.PhaseTelegraph
	flyer.PhaseTimer = cfg.Flying.TelegraphFrames

	tps := float32(cfg.Sim.TPS)
	depth := float32(cfg.Flying.StrikeHeight - cfg.Flying.FlightHeight)
	down := float32(cfg.Flying.TelegraphFrames+cfg.Flying.ActiveFrames) / tps
	up := float32(enemyType.AttackCooldown) / tps

	flyer.Dive = gween.NewSequence()
	flyer.Dive.Add(
		gween.New(0, depth, down, ease.InQuad),
		gween.New(depth, 0, up, ease.OutQuad),
	)
}

func advanceAttackSequence(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, flyer *components.FlyerData, cooldowns *components.CooldownData) {
	if flyer.Dive != nil {
		offset, _, done := flyer.Dive.Update(float32(cfg.Dt()))
		flyer.DiveOffset = float64(offset)
		if done {
			flyer.Dive = nil
			flyer.DiveOffset = 0
		}
	}

	switch flyer.Phase {
	case components.PhaseTelegraph:
		flyer.PhaseTimer--
		if flyer.PhaseTimer > 0 {
			return
		}
		flyer.Phase = components.PhaseActive
		flyer.PhaseTimer = cfg.Flying.ActiveFrames
		if !components.Health.Get(e).IsInvulnerable() {
			factory.CreateHurtbox(ecs, e, factory.HurtboxSpec{
				Kind:      components.HurtboxMelee,
				Damage:    enemy.TypeConfig.Damage,
				Direction: enemy.Facing,
				Reach:     enemy.TypeConfig.Radius + enemy.TypeConfig.HurtboxWidth/2,
				Width:     enemy.TypeConfig.HurtboxWidth,
				Height:    enemy.TypeConfig.HurtboxHeight,
				LifeTime:  cfg.Flying.ActiveFrames,
			})
			PlaySFX(ecs.World, cfg.SoundSwing, e.Entity())
		}
	case components.PhaseActive:
		flyer.PhaseTimer--
		if flyer.PhaseTimer > 0 {
			return
		}
		flyer.Phase = components.PhaseRecover
		cooldowns.Start(components.CooldownAttack, enemy.TypeConfig.AttackCooldown)
	case components.PhaseRecover:
		if cooldowns.Ready(components.CooldownAttack) {
			flyer.Phase = components.PhaseIdle
		}
	}
}

// cancelAttack aborts a telegraph or active window into recovery and pulls
// the flyer back up.
func cancelAttack(w donburi.World, enemy *components.EnemyData, flyer *components.FlyerData, cooldowns *components.CooldownData) {
	if enemy.ActiveHurtbox != donburi.Null {
		factory.RetireHurtbox(w, enemy.ActiveHurtbox)
	}
	if flyer.Phase != components.PhaseTelegraph && flyer.Phase != components.PhaseActive {
		return
	}

	flyer.Phase = components.PhaseRecover
	flyer.PhaseTimer = 0
	cooldowns.Start(components.CooldownAttack, enemy.TypeConfig.AttackCooldown)

	flyer.Dive = gween.NewSequence()
	flyer.Dive.Add(gween.New(float32(flyer.DiveOffset), 0, float32(enemy.TypeConfig.AttackCooldown)/float32(cfg.Sim.TPS), ease.OutQuad))
}

// updateAltitude eases toward cruise height plus the dive, never above
// FlightHeight over the ground beneath.
func updateAltitude(services *components.ServicesData, enemy *components.EnemyData, flyer *components.FlyerData, pos math.Vec2) {
	ground, _ := services.Query.GroundHeight(pos)
	ceiling := ground + cfg.Flying.FlightHeight

	flyer.Altitude = gamemath.Approach(flyer.Altitude, ceiling+flyer.DiveOffset, enemy.TypeConfig.MoveSpeed*cfg.Dt())
	flyer.Altitude = stdmath.Max(ground, stdmath.Min(flyer.Altitude, ceiling))
}
