package systems

import (
	"log"

	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/events"
	"github.com/automoto/arenacore/loot"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateWaves paces waves on the variable tick. Once every enemy source is
// cleared the coordinator waits Delay, then every source spawns together.
func UpdateWaves(ecs *ecs.ECS) {
	w := ecs.World
	coordEntry, ok := components.WaveCoordinator.First(w)
	if !ok {
		return
	}
	coord := components.WaveCoordinator.Get(coordEntry)

	cleared := true
	components.EnemySource.Each(w, func(e *donburi.Entry) {
		src := components.EnemySource.Get(e)
		src.Prune(func(agent donburi.Entity) bool { return isLiving(w, agent) })
		if !src.Cleared() {
			cleared = false
		}
	})

	if !coord.Waiting {
		if !cleared {
			return
		}
		coord.Waiting = true
		coord.Countdown = coord.Delay
		if coord.Wave > 0 {
			events.WaveCleared.Publish(w, events.WaveClearedEvent{Wave: coord.Wave})
		}
		return
	}

	if clock, ok := components.Clock.First(w); ok {
		coord.Countdown -= components.Clock.Get(clock).Delta
	}
	if coord.Countdown > 0 {
		return
	}

	coord.Waiting = false
	coord.Wave++
	wave := coord.Wave
	enemies, items := startWave(ecs, wave)

	events.WaveStarted.Publish(w, events.WaveStartedEvent{Wave: wave, Enemies: enemies, Items: items})
	PlaySFX(w, cfg.SoundWaveStart, donburi.Null)
	log.Printf("[spawn] wave %d: %d enemies, %d items", wave, enemies, items)
}

func startWave(ecs *ecs.ECS, wave int) (enemies, items int) {
	services := factory.ServicesOf(ecs.World)
	if services == nil {
		return 0, 0
	}

	// Sources are collected first; spawning adds entities to the world
	var enemySources, itemSources []*donburi.Entry
	components.EnemySource.Each(ecs.World, func(e *donburi.Entry) {
		enemySources = append(enemySources, e)
	})
	components.ItemSource.Each(ecs.World, func(e *donburi.Entry) {
		itemSources = append(itemSources, e)
	})

	for _, src := range enemySources {
		enemies += spawnEnemyGroup(ecs, services, src)
	}
	for _, src := range itemSources {
		if rollItemSource(ecs, services, src, wave) {
			items++
		}
	}
	return enemies, items
}

// spawnEnemyGroup creates a leader at the source and its followers at random
// walkable points around it.
func spawnEnemyGroup(ecs *ecs.ECS, services *components.ServicesData, entry *donburi.Entry) int {
	src := *components.EnemySource.Get(entry)
	source := entry.Entity()

	spawned := []donburi.Entity{factory.CreateEnemy(ecs, src.Position, src.LeaderType, source).Entity()}
	if src.FollowerType != "" {
		for i := 0; i < src.FollowerCount; i++ {
			at := followerPosition(services, src)
			spawned = append(spawned, factory.CreateEnemy(ecs, at, src.FollowerType, source).Entity())
		}
	}

	components.EnemySource.Get(entry).Alive = spawned
	return len(spawned)
}

func followerPosition(services *components.ServicesData, src components.EnemySourceData) math.Vec2 {
	if services.Query == nil || src.FollowerRadius <= 0 {
		return src.Position
	}
	if p, ok := services.Query.SampleWalkablePoint(src.Position, src.FollowerRadius); ok {
		return p
	}
	log.Printf("[spawn] no walkable point within %.1f of %v, stacking follower on leader", src.FollowerRadius, src.Position)
	return src.Position
}

// rollItemSource drops one item from the level's loot table if the source's
// chance comes up.
func rollItemSource(ecs *ecs.ECS, services *components.ServicesData, entry *donburi.Entry, wave int) bool {
	src := components.ItemSource.Get(entry)
	if services.Loot == nil || services.Rand == nil {
		return false
	}

	level, players := src.Level, 0
	if lvl, ok := components.Level.First(ecs.World); ok {
		data := components.Level.Get(lvl)
		if level == 0 {
			level = data.Number
		}
		players = data.Players
	}
	if level == 0 {
		level = cfg.Sim.StartLevel
	}

	chance, err := src.Chance.Eval(loot.ChanceVars{Wave: wave, Level: level, Players: players})
	if err != nil {
		log.Printf("[loot] item source skipped: %v", err)
		return false
	}
	if services.Rand.Float64() >= chance {
		return false
	}

	def, err := services.Loot.PickRandomItem(level)
	if err != nil {
		log.Printf("[loot] item source skipped: %v", err)
		return false
	}

	at := math.Vec2{
		X: src.Min.X + services.Rand.Float64()*(src.Max.X-src.Min.X),
		Y: src.Min.Y + services.Rand.Float64()*(src.Max.Y-src.Min.Y),
	}
	factory.CreatePickup(ecs, at, def, components.FreshDurability)
	return true
}
