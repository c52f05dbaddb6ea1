package factory

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/automoto/arenacore/archetypes"
	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/loot"
	"github.com/automoto/arenacore/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemySource registers a leader spawn point. Empty fields use the
// wave config.
func CreateEnemySource(ecs *ecs.ECS, src leveldata.EnemySource) *donburi.Entry {
	entry := archetypes.EnemySource.Spawn(ecs)

	data := components.EnemySourceData{
		Position:       math.Vec2{X: src.X, Y: src.Y},
		LeaderType:     src.Leader,
		FollowerType:   src.Follower,
		FollowerCount:  src.Followers,
		FollowerRadius: src.FollowerRadius,
	}
	if data.LeaderType == "" {
		data.LeaderType = cfg.Waves.LeaderType
		data.FollowerType = cfg.Waves.FollowerType
		data.FollowerCount = cfg.Waves.FollowerCount
	}
	if data.FollowerRadius <= 0 {
		data.FollowerRadius = cfg.Waves.FollowerRadius
	}

	components.EnemySource.SetValue(entry, data)
	return entry
}

// CreateItemSource registers a loot area. Chance is a number, a tengo
// expression, or empty for the wave config default.
func CreateItemSource(ecs *ecs.ECS, src leveldata.ItemSource) (*donburi.Entry, error) {
	chance, err := ParseChance(src.Chance)
	if err != nil {
		return nil, fmt.Errorf("item source at (%.1f, %.1f): %w", src.X, src.Y, err)
	}

	entry := archetypes.ItemSource.Spawn(ecs)
	components.ItemSource.SetValue(entry, components.ItemSourceData{
		Min:    math.Vec2{X: src.X, Y: src.Y},
		Max:    math.Vec2{X: src.X + src.W, Y: src.Y + src.H},
		Level:  src.Level,
		Chance: chance,
	})
	return entry, nil
}

func ParseChance(expr string) (*loot.Chance, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return loot.ConstantChance(cfg.Waves.SpawnChance), nil
	}
	if p, err := strconv.ParseFloat(expr, 64); err == nil {
		return loot.ConstantChance(p), nil
	}
	return loot.CompileChance(expr)
}

// CreateWaveCoordinator creates the wave pacing singleton. The first wave
// starts once delay has passed.
func CreateWaveCoordinator(ecs *ecs.ECS, delay time.Duration) *donburi.Entry {
	entry := archetypes.WaveCoordinator.Spawn(ecs)
	components.WaveCoordinator.SetValue(entry, components.WaveCoordinatorData{
		Delay: delay,
	})
	return entry
}
