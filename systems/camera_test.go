package systems

import (
	"testing"

	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestCameraCentersSmallArena(t *testing.T) {
	a := newTestArena(t)
	a.player(2, 2)
	camera := components.Camera.Get(factory.CreateCamera(a.ecs))

	for i := 0; i < 100; i++ {
		UpdateCamera(a.ecs)
	}

	// 40 x 30 units at 16 px fits inside the viewer on both axes
	scale := a.space.Scale()
	assert.InDelta(t, 20*scale, camera.Position.X, 1e-6)
	assert.InDelta(t, 15*scale, camera.Position.Y, 1e-6)
}

func TestClampAxis(t *testing.T) {
	assert.Equal(t, 50.0, clampAxis(10, 200, 100), "small level is centered")
	assert.Equal(t, 100.0, clampAxis(10, 200, 1000))
	assert.Equal(t, 900.0, clampAxis(990, 200, 1000))
	assert.Equal(t, 500.0, clampAxis(500, 200, 1000))
}

func TestPlayerDamageShakesCamera(t *testing.T) {
	a := newTestArena(t)
	player := a.player(10, 10)
	entry := factory.CreateCamera(a.ecs)
	ShakeOnPlayerDamage(a.w)

	ApplyDamage(a.w, player.Entity(), 1, donburi.Null)
	a.flush()
	require.True(t, entry.HasComponent(components.ScreenShake))

	UpdateCamera(a.ecs)
	assert.NotZero(t, components.Camera.Get(entry).Offset)

	for i := 0; i < cfg.Camera.ShakeFrames; i++ {
		UpdateCamera(a.ecs)
	}
	assert.False(t, entry.HasComponent(components.ScreenShake))
	UpdateCamera(a.ecs)
	assert.Zero(t, components.Camera.Get(entry).Offset)
}

func TestStrongerShakeWins(t *testing.T) {
	a := newTestArena(t)
	entry := factory.CreateCamera(a.ecs)

	TriggerScreenShake(a.w, 2, 10)
	TriggerScreenShake(a.w, 1, 30)
	assert.Equal(t, 2.0, components.ScreenShake.Get(entry).Intensity)

	TriggerScreenShake(a.w, 5, 30)
	assert.Equal(t, components.ScreenShakeData{Intensity: 5, Duration: 30}, *components.ScreenShake.Get(entry))
}
