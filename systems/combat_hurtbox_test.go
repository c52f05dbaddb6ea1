package systems

import (
	"testing"

	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestMeleeHurtboxHitsOnceAndRetires(t *testing.T) {
	a := newTestArena(t)
	player := a.player(10, 10)
	near := a.enemy("Demon", 11, 10)
	far := a.enemy("Demon", 11.3, 10)

	factory.CreateHurtbox(a.ecs, player, factory.HurtboxSpec{
		Kind:      components.HurtboxMelee,
		Damage:    2,
		Direction: math.Vec2{X: 1},
		Reach:     1,
		Width:     1,
		Height:    1,
		LifeTime:  10,
	})
	UpdateHurtboxes(a.ecs)

	demonHealth := cfg.Enemy.Types["Demon"].Health
	assert.Equal(t, demonHealth-2, components.Health.Get(near).Current, "nearest target takes the hit")
	assert.Equal(t, demonHealth, components.Health.Get(far).Current, "non-piercing stops at the first hit")
	assert.Zero(t, countHurtboxes(a.w))
}

func TestPiercingHurtboxHitsEachTargetOnce(t *testing.T) {
	a := newTestArena(t)
	player := a.player(10, 10)
	e1 := a.enemy("Demon", 11, 10)
	e2 := a.enemy("Demon", 11.3, 10)

	factory.CreateHurtbox(a.ecs, player, factory.HurtboxSpec{
		Kind:      components.HurtboxMelee,
		Damage:    1,
		Direction: math.Vec2{X: 1},
		Reach:     1,
		Width:     1.5,
		Height:    1,
		Piercing:  true,
		LifeTime:  5,
	})
	for i := 0; i < 5; i++ {
		UpdateHurtboxes(a.ecs)
		UpdateHealth(a.ecs)
	}

	demonHealth := cfg.Enemy.Types["Demon"].Health
	assert.Equal(t, demonHealth-1, components.Health.Get(e1).Current)
	assert.Equal(t, demonHealth-1, components.Health.Get(e2).Current)
	assert.Zero(t, countHurtboxes(a.w), "retired when its lifetime ran out")
}

func TestEnemyHurtboxIgnoresAllies(t *testing.T) {
	a := newTestArena(t)
	a.player(30, 20)
	attacker := a.enemy("Demon", 10, 10)
	ally := a.enemy("Imp", 11, 10)
	components.Enemy.Get(attacker).Facing = math.Vec2{X: 1}

	factory.CreateHurtbox(a.ecs, attacker, factory.HurtboxSpec{
		Kind:      components.HurtboxMelee,
		Damage:    1,
		Direction: math.Vec2{X: 1},
		Reach:     1,
		Width:     1,
		Height:    1,
		LifeTime:  3,
	})
	UpdateHurtboxes(a.ecs)

	assert.Equal(t, cfg.Enemy.Types["Imp"].Health, components.Health.Get(ally).Current)
	assert.Equal(t, 1, countHurtboxes(a.w))
}

func TestProjectileTravelsAndNeverHitsOwner(t *testing.T) {
	a := newTestArena(t)
	player := a.player(10, 10)
	target := a.enemy("Demon", 15, 10)

	factory.CreateHurtbox(a.ecs, player, factory.HurtboxSpec{
		Kind:      components.HurtboxProjectile,
		Damage:    2,
		Direction: math.Vec2{X: 1},
		Speed:     12,
		Reach:     0,
		Width:     0.3,
		Height:    0.3,
		LifeTime:  120,
	})

	for i := 0; i < 60 && countHurtboxes(a.w) > 0; i++ {
		UpdateHurtboxes(a.ecs)
	}

	assert.Equal(t, cfg.Player.Health, components.Health.Get(player).Current)
	assert.Equal(t, cfg.Enemy.Types["Demon"].Health-2, components.Health.Get(target).Current)
	assert.Zero(t, countHurtboxes(a.w), "retired on its first hit")
}

func TestProjectileRetiresOutsideArena(t *testing.T) {
	a := newTestArena(t)
	player := a.player(38, 10)

	factory.CreateHurtbox(a.ecs, player, factory.HurtboxSpec{
		Kind:      components.HurtboxProjectile,
		Damage:    1,
		Direction: math.Vec2{X: 1},
		Speed:     30,
		Width:     0.3,
		Height:    0.3,
		LifeTime:  1000,
	})
	for i := 0; i < 30; i++ {
		UpdateHurtboxes(a.ecs)
	}
	assert.Zero(t, countHurtboxes(a.w))
}

func TestOrphanedHurtboxIsRetired(t *testing.T) {
	a := newTestArena(t)
	owner := a.enemy("Demon", 10, 10)
	hurtbox := factory.CreateHurtbox(a.ecs, owner, factory.HurtboxSpec{
		Kind:      components.HurtboxProjectile,
		Damage:    1,
		Direction: math.Vec2{X: 1},
		Speed:     1,
		Width:     0.3,
		Height:    0.3,
		LifeTime:  100,
	})

	a.space.Remove(owner.Entity())
	a.w.Remove(owner.Entity())
	UpdateHurtboxes(a.ecs)

	assert.False(t, a.w.Valid(hurtbox.Entity()))
	_, ok := a.space.Position(hurtbox.Entity())
	assert.False(t, ok)
}

func TestDestroyActorRetiresOwnedHurtboxes(t *testing.T) {
	a := newTestArena(t)
	owner := a.enemy("Demon", 10, 10)
	hurtbox := factory.CreateHurtbox(a.ecs, owner, factory.HurtboxSpec{
		Kind:      components.HurtboxMelee,
		Direction: math.Vec2{X: 1},
		Reach:     1,
		Width:     1,
		Height:    1,
		LifeTime:  100,
	})
	require.Equal(t, hurtbox.Entity(), components.Enemy.Get(owner).ActiveHurtbox)

	factory.DestroyActor(a.w, owner.Entity())
	assert.False(t, a.w.Valid(hurtbox.Entity()))
	assert.Zero(t, countHurtboxes(a.w))
}

func TestWeaponWearsOncePerLandedAttack(t *testing.T) {
	a := newTestArena(t)
	player := a.player(10, 10)
	a.enemy("Demon", 11, 10)
	a.enemy("Demon", 11.2, 10)

	dagger := AddItem(a.ecs, player, item(t, "Rusty Dagger"), components.FreshDurability)
	require.NotNil(t, dagger)
	start := dagger.Durability

	factory.CreateHurtbox(a.ecs, player, factory.HurtboxSpec{
		Kind:      components.HurtboxMelee,
		Damage:    1,
		Direction: math.Vec2{X: 1},
		Reach:     1,
		Width:     1.5,
		Height:    1,
		Piercing:  true,
		LifeTime:  3,
		Item:      dagger.ID,
	})
	for i := 0; i < 3; i++ {
		UpdateHurtboxes(a.ecs)
	}

	assert.Equal(t, start-cfg.Inventory.DurabilityPerHit, dagger.Durability, "two targets, one attack")
}
