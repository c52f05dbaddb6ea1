package systems

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/arenacore/components"
	"github.com/automoto/arenacore/events"
	"github.com/automoto/arenacore/shared/leveldata"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestWaveStartsOnceAfterDelay(t *testing.T) {
	a := newTestArena(t)
	source := factory.CreateEnemySource(a.ecs, leveldata.EnemySource{
		X: 10, Y: 10, Leader: "Demon", Follower: "Imp", Followers: 2, FollowerRadius: 3,
	})
	factory.CreateWaveCoordinator(a.ecs, time.Second)
	started := record(a.w, events.WaveStarted)
	cleared := record(a.w, events.WaveCleared)

	a.setDelta(600 * time.Millisecond)
	UpdateWaves(a.ecs) // nothing alive yet: countdown begins
	UpdateWaves(a.ecs)
	a.flush()
	assert.Empty(t, *started)
	assert.Empty(t, *cleared, "no clear before the first wave")

	UpdateWaves(a.ecs)
	UpdateWaves(a.ecs)
	a.flush()
	require.Len(t, *started, 1)
	assert.Equal(t, events.WaveStartedEvent{Wave: 1, Enemies: 3}, (*started)[0])
	assert.Len(t, components.EnemySource.Get(source).Alive, 3)

	n := 0
	components.Enemy.Each(a.w, func(*donburi.Entry) { n++ })
	assert.Equal(t, 3, n)
}

func TestWaveClearedAfterEveryEnemyDies(t *testing.T) {
	a := newTestArena(t)
	source := factory.CreateEnemySource(a.ecs, leveldata.EnemySource{X: 10, Y: 10, Leader: "Imp"})
	coord := factory.CreateWaveCoordinator(a.ecs, 0)
	cleared := record(a.w, events.WaveCleared)

	UpdateWaves(a.ecs)
	UpdateWaves(a.ecs)
	require.Equal(t, 1, components.WaveCoordinator.Get(coord).Wave)

	UpdateWaves(a.ecs)
	a.flush()
	assert.Empty(t, *cleared, "the wave is still alive")

	for _, e := range append([]donburi.Entity(nil), components.EnemySource.Get(source).Alive...) {
		ApplyDamage(a.w, e, 100, donburi.Null)
	}
	UpdateWaves(a.ecs)
	a.flush()
	require.Len(t, *cleared, 1)
	assert.Equal(t, 1, (*cleared)[0].Wave)

	UpdateWaves(a.ecs)
	assert.Equal(t, 2, components.WaveCoordinator.Get(coord).Wave, "zero delay starts the next wave right away")
}

func TestItemSourceRollsTheArenaLevel(t *testing.T) {
	a := newTestArena(t)
	a.picker.def = item(t, "Heart")
	_, err := factory.CreateItemSource(a.ecs, leveldata.ItemSource{X: 20, Y: 20, W: 2, H: 2, Chance: "1"})
	require.NoError(t, err)
	_, err = factory.CreateItemSource(a.ecs, leveldata.ItemSource{X: 5, Y: 5, W: 1, H: 1, Level: 3, Chance: "0"})
	require.NoError(t, err)
	factory.CreateWaveCoordinator(a.ecs, 0)
	started := record(a.w, events.WaveStarted)

	UpdateWaves(a.ecs)
	UpdateWaves(a.ecs)
	a.flush()

	assert.Equal(t, []int{1}, a.picker.levels, "the zero-chance source never rolls")
	require.Len(t, *started, 1)
	assert.Equal(t, 1, (*started)[0].Items)

	var pickup components.PickupData
	components.Pickup.Each(a.w, func(e *donburi.Entry) {
		pickup = *components.Pickup.Get(e)
		p, _ := a.space.Position(e.Entity())
		assert.True(t, p.X >= 20 && p.X <= 22 && p.Y >= 20 && p.Y <= 22, "dropped inside the area, got %v", p)
	})
	assert.Equal(t, "Heart", pickup.Def.Name)
}

func TestItemSourceChanceExpressionSeesWave(t *testing.T) {
	a := newTestArena(t)
	a.picker.def = item(t, "Rusty Dagger")
	_, err := factory.CreateItemSource(a.ecs, leveldata.ItemSource{X: 20, Y: 20, W: 1, H: 1, Level: 2, Chance: "wave >= 2 ? 1 : 0"})
	require.NoError(t, err)
	coord := factory.CreateWaveCoordinator(a.ecs, 0)

	UpdateWaves(a.ecs)
	UpdateWaves(a.ecs)
	assert.Empty(t, a.picker.levels)

	// No enemy sources, so every wave clears immediately
	UpdateWaves(a.ecs)
	UpdateWaves(a.ecs)
	require.Equal(t, 2, components.WaveCoordinator.Get(coord).Wave)
	assert.Equal(t, []int{2}, a.picker.levels)
	assert.Equal(t, 1, countPickups(a.w))
}

func TestItemSourceSkipsPickerErrors(t *testing.T) {
	a := newTestArena(t)
	a.picker.err = errors.New("no items for level")
	_, err := factory.CreateItemSource(a.ecs, leveldata.ItemSource{X: 20, Y: 20, W: 1, H: 1, Chance: "1"})
	require.NoError(t, err)
	factory.CreateWaveCoordinator(a.ecs, 0)
	started := record(a.w, events.WaveStarted)

	UpdateWaves(a.ecs)
	UpdateWaves(a.ecs)
	a.flush()

	require.Len(t, *started, 1)
	assert.Zero(t, (*started)[0].Items)
	assert.Zero(t, countPickups(a.w))
}

func TestCreateItemSourceRejectsBadExpression(t *testing.T) {
	a := newTestArena(t)
	_, err := factory.CreateItemSource(a.ecs, leveldata.ItemSource{Chance: "wave >"})
	assert.Error(t, err)
}

func TestWaveWaitsForEverySource(t *testing.T) {
	a := newTestArena(t)
	first := factory.CreateEnemySource(a.ecs, leveldata.EnemySource{X: 10, Y: 10, Leader: "Imp"})
	second := factory.CreateEnemySource(a.ecs, leveldata.EnemySource{X: 30, Y: 20, Leader: "Demon"})
	coord := factory.CreateWaveCoordinator(a.ecs, 0)

	UpdateWaves(a.ecs)
	UpdateWaves(a.ecs)
	require.Equal(t, 1, components.WaveCoordinator.Get(coord).Wave)
	require.Len(t, components.EnemySource.Get(second).Alive, 1)

	started := record(a.w, events.WaveStarted)
	cleared := record(a.w, events.WaveCleared)
	for _, e := range append([]donburi.Entity(nil), components.EnemySource.Get(first).Alive...) {
		ApplyDamage(a.w, e, 100, donburi.Null)
	}
	for i := 0; i < 5; i++ {
		UpdateWaves(a.ecs)
	}
	a.flush()

	assert.Equal(t, 1, components.WaveCoordinator.Get(coord).Wave, "the second source is still alive")
	assert.Empty(t, *started)
	assert.Empty(t, *cleared)
}
