package factory

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/automoto/arenacore/archetypes"
	"github.com/automoto/arenacore/components"
	"github.com/automoto/arenacore/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var ErrNoPlayerSpawns = errors.New("no player spawn points defined in map")

// ArenaOptions configures CreateArena.
type ArenaOptions struct {
	Level     int // loot level for item sources without one
	Players   int
	WaveDelay time.Duration
	Services  components.ServicesData
}

func CreateLevel(ecs *ecs.ECS, name string, number, players int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:    name,
		Number:  number,
		Players: players,
	})
	return level
}

// CreateArena builds a complete arena from parsed map data: space, floors,
// services, players, enemy and item sources, the wave coordinator and
// the viewer camera.
func CreateArena(ecs *ecs.ECS, arena *leveldata.Arena, rng *rand.Rand, opts ArenaOptions) error {
	if opts.Players > 0 && len(arena.PlayerSpawns) == 0 {
		return ErrNoPlayerSpawns
	}

	CreateLevel(ecs, arena.Name, opts.Level, opts.Players)

	// Space first; everything else registers bodies with it
	CreateSpace(ecs, arena.Width, arena.Height, rng)
	for _, f := range arena.Floors {
		CreateFloor(ecs, f)
	}

	if opts.Services.Rand == nil {
		opts.Services.Rand = rng
	}
	CreateServices(ecs, opts.Services)

	// Players beyond the spawn count share spawns round-robin
	for i := 0; i < opts.Players; i++ {
		spawn := arena.PlayerSpawns[i%len(arena.PlayerSpawns)]
		CreatePlayer(ecs, math.Vec2{X: spawn.X, Y: spawn.Y}, i)
	}

	for _, src := range arena.EnemySources {
		CreateEnemySource(ecs, src)
	}
	for _, src := range arena.ItemSources {
		if _, err := CreateItemSource(ecs, src); err != nil {
			return fmt.Errorf("create arena %s: %w", arena.Name, err)
		}
	}

	CreateWaveCoordinator(ecs, opts.WaveDelay)
	CreateCamera(ecs)
	return nil
}
