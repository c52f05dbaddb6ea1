package systems

import (
	"testing"

	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/events"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestAddItemEquipsFirstWeapon(t *testing.T) {
	a := newTestArena(t)
	player := a.player(10, 10)
	equipped := record(a.w, events.ItemEquipped)

	dagger := AddItem(a.ecs, player, item(t, "Rusty Dagger"), components.FreshDurability)
	require.NotNil(t, dagger)
	AddItem(a.ecs, player, item(t, "Heart"), components.FreshDurability)

	inv := components.Inventory.Get(player)
	assert.Equal(t, dagger.ID, inv.HeldItem, "a second item doesn't take the hand")
	assert.Same(t, dagger.Def.Weapon, inv.Weapon)
	assert.Len(t, a.visuals.live, 1)

	a.flush()
	require.Len(t, *equipped, 1)
	assert.Equal(t, dagger, (*equipped)[0].Item)
}

func TestCyclingSwapsVisualsAndSkipsEmptySlots(t *testing.T) {
	a := newTestArena(t)
	player := a.player(10, 10)
	swapped := record(a.w, events.ItemSwapped)

	dagger := AddItem(a.ecs, player, item(t, "Rusty Dagger"), components.FreshDurability)
	heart := AddItem(a.ecs, player, item(t, "Heart"), components.FreshDurability)
	inv := components.Inventory.Get(player)

	CycleNext(a.w, player)
	assert.Equal(t, heart.ID, inv.HeldItem)
	assert.Nil(t, inv.Weapon, "holding a consumable leaves the player unarmed")
	assert.Len(t, a.visuals.live, 1, "old visual released")

	CycleNext(a.w, player)
	assert.Equal(t, dagger.ID, inv.HeldItem, "wraps past the empty slot")

	CyclePrevious(a.w, player)
	assert.Equal(t, heart.ID, inv.HeldItem)

	a.flush()
	require.Len(t, *swapped, 3)
	assert.Equal(t, events.ItemSwappedEvent{Entity: player.Entity(), From: 0, To: 1}, (*swapped)[0])
}

func TestBrokenWeaponAutoSelectsNextItem(t *testing.T) {
	a := newTestArena(t)
	player := a.player(10, 10)
	broken := record(a.w, events.ItemBroken)

	dagger := AddItem(a.ecs, player, item(t, "Rusty Dagger"), 1)
	heart := AddItem(a.ecs, player, item(t, "Heart"), components.FreshDurability)
	require.Equal(t, 1, dagger.Durability)

	RecordWeaponUse(a.w, player.Entity(), dagger.ID)

	inv := components.Inventory.Get(player)
	assert.Nil(t, inv.Find(dagger.ID))
	assert.Equal(t, heart.ID, inv.HeldItem)
	assert.Nil(t, inv.Weapon)
	assert.Len(t, a.visuals.live, 1)

	a.flush()
	require.Len(t, *broken, 1)
	assert.Equal(t, dagger, (*broken)[0].Item)
}

func TestBrokenLastWeaponLeavesPlayerUnarmed(t *testing.T) {
	a := newTestArena(t)
	player := a.player(10, 10)
	dagger := AddItem(a.ecs, player, item(t, "Rusty Dagger"), 1)

	RecordWeaponUse(a.w, player.Entity(), dagger.ID)

	inv := components.Inventory.Get(player)
	assert.Zero(t, inv.Count())
	assert.Zero(t, inv.HeldItem)
	assert.Nil(t, inv.Weapon)
	assert.Empty(t, a.visuals.live)
}

func TestEquipmentReplacesAndDropsOld(t *testing.T) {
	a := newTestArena(t)
	player := a.player(10, 10)
	helm := item(t, "Iron Helm")

	first := AddItem(a.ecs, player, helm, components.FreshDurability)
	second := AddItem(a.ecs, player, helm, components.FreshDurability)

	inv := components.Inventory.Get(player)
	assert.Same(t, second, inv.Equipment)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Zero(t, inv.HeldItem, "equipment is never held")
	assert.Equal(t, 1, countPickups(a.w))
}

func TestFullInventoryDropsSelectedWithDurability(t *testing.T) {
	a := newTestArena(t)
	player := a.player(10, 10)

	dagger := AddItem(a.ecs, player, item(t, "Rusty Dagger"), 5)
	AddItem(a.ecs, player, item(t, "Heart"), components.FreshDurability)
	AddItem(a.ecs, player, item(t, "Quarter Heart"), components.FreshDurability)
	club := AddItem(a.ecs, player, item(t, "Bone Club"), components.FreshDurability)

	inv := components.Inventory.Get(player)
	assert.Equal(t, 0, club.Slot)
	assert.Equal(t, club.ID, inv.HeldItem)
	assert.Same(t, club.Def.Weapon, inv.Weapon)

	var drops []components.PickupData
	components.Pickup.Each(a.w, func(e *donburi.Entry) {
		drops = append(drops, *components.Pickup.Get(e))
	})
	require.Len(t, drops, 1)
	assert.Same(t, dagger.Def, drops[0].Def)
	assert.Equal(t, 5, drops[0].Durability)
}

func TestUseSelectedHealsAndConsumes(t *testing.T) {
	a := newTestArena(t)
	player := a.player(10, 10)
	heart := AddItem(a.ecs, player, item(t, "Heart"), components.FreshDurability)

	assert.False(t, UseSelected(a.w, player), "full health keeps the item")

	ApplyDamage(a.w, player.Entity(), 3, donburi.Null)
	assert.True(t, UseSelected(a.w, player))

	inv := components.Inventory.Get(player)
	assert.Nil(t, inv.Find(heart.ID))
	assert.Equal(t, cfg.Player.Health, components.Health.Get(player).Current)
	assert.Zero(t, inv.HeldItem)
}

func TestTryPickupTakesNearestInReach(t *testing.T) {
	a := newTestArena(t)
	player := a.player(10, 10)
	factory.CreatePickup(a.ecs, math.Vec2{X: 11, Y: 10}, item(t, "Rusty Dagger"), 7)
	factory.CreatePickup(a.ecs, math.Vec2{X: 20, Y: 10}, item(t, "Heart"), components.FreshDurability)

	assert.True(t, TryPickup(a.ecs, player))
	assert.False(t, TryPickup(a.ecs, player), "the other pickup is out of reach")

	inv := components.Inventory.Get(player)
	require.NotNil(t, inv.Weapon)
	assert.Equal(t, 7, inv.SelectedItem().Durability)
	assert.Equal(t, 1, countPickups(a.w))
}
