package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnvOverrides(t *testing.T) {
	sim, waves, viewer := Sim, Waves, Viewer
	combat, flying, camera := Combat, Flying, Camera
	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for name, t := range Enemy.Types {
		types[name] = t
	}
	t.Cleanup(func() {
		Sim, Waves, Viewer = sim, waves, viewer
		Combat, Flying, Camera = combat, flying, camera
		Enemy.Types = types
	})

	t.Setenv("ARENA_TPS", "30")
	t.Setenv("ARENA_WAVE_DELAY", "2s")
	t.Setenv("ARENA_HEADLESS", "true")
	t.Setenv("ARENA_ITEMS_FILE", "/tmp/items.yaml")

	o, err := ApplyEnv()
	require.NoError(t, err)
	assert.Equal(t, 30, Sim.TPS)
	assert.Equal(t, 2*time.Second, Waves.Delay)
	assert.True(t, Viewer.Headless)
	assert.Equal(t, "/tmp/items.yaml", o.ItemsFile)
	assert.Equal(t, sim.Seed, Sim.Seed, "unset variables keep defaults")

	// Frame-based timers keep their length in seconds
	assert.InDelta(t, 0.4, float64(Flying.TelegraphFrames)*Dt(), 1e-9)
	assert.InDelta(t, float64(combat.PlayerInvulnFrames)/float64(sim.TPS), float64(Combat.PlayerInvulnFrames)*Dt(), 1e-9)
	assert.InDelta(t, float64(types["Demon"].AttackCooldown)/float64(sim.TPS), float64(Enemy.Types["Demon"].AttackCooldown)*Dt(), 1e-9)
}

func TestSetTPSRescalesFrameTimers(t *testing.T) {
	sim, combat, flying, camera := Sim, Combat, Flying, Camera
	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for name, t := range Enemy.Types {
		types[name] = t
	}
	t.Cleanup(func() {
		Sim, Combat, Flying, Camera = sim, combat, flying, camera
		Enemy.Types = types
	})

	SetTPS(120)
	assert.Equal(t, 120, Sim.TPS)
	assert.Equal(t, flying.TelegraphFrames*2, Flying.TelegraphFrames)
	assert.Equal(t, flying.ActiveFrames*2, Flying.ActiveFrames)
	assert.Equal(t, combat.HurtboxLifetime*2, Combat.HurtboxLifetime)
	assert.Equal(t, types["Imp"].HitReactionFrames*2, Enemy.Types["Imp"].HitReactionFrames)
	assert.Equal(t, Frames(0.5), Combat.HurtboxLifetime, "matches weapon cooldown conversion")

	SetTPS(0)
	assert.Equal(t, 120, Sim.TPS, "non-positive rates are ignored")
}

func TestApplyEnvRejectsBadTPS(t *testing.T) {
	sim := Sim
	t.Cleanup(func() { Sim = sim })

	t.Setenv("ARENA_TPS", "0")
	_, err := ApplyEnv()
	assert.Error(t, err)
	assert.Equal(t, sim.TPS, Sim.TPS)
}
