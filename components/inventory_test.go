package components

import (
	"testing"

	"github.com/automoto/arenacore/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sword = &config.ItemDef{Name: "Sword", Kind: config.ItemWeapon, Weapon: &config.WeaponDef{Damage: 2, MaxDurability: 5}}
	club  = &config.ItemDef{Name: "Club", Kind: config.ItemWeapon, Weapon: &config.WeaponDef{Damage: 4, MaxDurability: 3}}
	heart = &config.ItemDef{Name: "Heart", Kind: config.ItemConsumable, Consumable: &config.ConsumableDef{HealthGain: 4}}
	helm  = &config.ItemDef{Name: "Helm", Kind: config.ItemEquipment}
)

func TestInventoryAddFillsFirstEmptySlot(t *testing.T) {
	inv := NewInventory(3)

	a, dropped := inv.Add(sword, FreshDurability)
	require.NotNil(t, a)
	assert.Nil(t, dropped)
	assert.Equal(t, 0, a.Slot)
	assert.Equal(t, 5, a.Durability)

	b, _ := inv.Add(heart, FreshDurability)
	assert.Equal(t, 1, b.Slot)
	assert.Zero(t, b.Durability)

	inv.Remove(a.ID)
	c, _ := inv.Add(club, 2)
	assert.Equal(t, 0, c.Slot, "reuses the first hole")
	assert.Equal(t, 2, c.Durability, "keeps carried durability")
}

func TestInventoryFullDropsSelected(t *testing.T) {
	inv := NewInventory(2)
	first, _ := inv.Add(sword, FreshDurability)
	inv.Add(heart, FreshDurability)
	inv.Selected = 0

	added, dropped := inv.Add(club, FreshDurability)
	require.NotNil(t, dropped)
	assert.Equal(t, first.ID, dropped.ID)
	assert.Equal(t, 0, added.Slot)
	assert.Equal(t, added, inv.SelectedItem())
}

func TestInventoryEquipmentReplacesEquipmentSlot(t *testing.T) {
	inv := NewInventory(3)
	first, dropped := inv.Add(helm, FreshDurability)
	assert.Nil(t, dropped)
	assert.Equal(t, EquipmentSlot, first.Slot)
	assert.Zero(t, inv.Count(), "equipment is not an ordinary slot")

	second, dropped := inv.Add(helm, FreshDurability)
	require.NotNil(t, dropped)
	assert.Equal(t, first.ID, dropped.ID)
	assert.Equal(t, second, inv.Equipment)
}

func TestInventoryCycleWrapsAndSkipsEmpty(t *testing.T) {
	inv := NewInventory(4)
	a, _ := inv.Add(sword, FreshDurability)
	b, _ := inv.Add(club, FreshDurability)
	c, _ := inv.Add(heart, FreshDurability)
	inv.Remove(b.ID)

	inv.Selected = a.Slot
	assert.True(t, inv.CycleNext())
	assert.Equal(t, c.Slot, inv.Selected)
	assert.True(t, inv.CycleNext())
	assert.Equal(t, a.Slot, inv.Selected, "wraps past the trailing empty slot")

	assert.True(t, inv.CyclePrevious())
	assert.Equal(t, c.Slot, inv.Selected)
}

func TestInventoryCycleNoopWhenEmpty(t *testing.T) {
	inv := NewInventory(3)
	inv.Selected = 1
	assert.False(t, inv.CycleNext())
	assert.False(t, inv.CyclePrevious())
	assert.Equal(t, 1, inv.Selected)
	assert.False(t, inv.SelectExisting())
}

func TestInventorySingleItemCycleStays(t *testing.T) {
	inv := NewInventory(3)
	inv.Add(sword, FreshDurability)
	assert.False(t, inv.CycleNext())
	assert.Equal(t, 0, inv.Selected)
}

func TestInventoryConsumeDurability(t *testing.T) {
	inv := NewInventory(3)
	item, _ := inv.Add(sword, 2)

	_, broken := inv.ConsumeDurability(item.ID, 1)
	assert.False(t, broken)
	assert.Equal(t, 1, item.Durability)

	_, broken = inv.ConsumeDurability(item.ID, 1)
	assert.True(t, broken)
	assert.Zero(t, item.Durability)

	potion, _ := inv.Add(heart, FreshDurability)
	_, broken = inv.ConsumeDurability(potion.ID, 1)
	assert.False(t, broken, "items without durability never break")
}
