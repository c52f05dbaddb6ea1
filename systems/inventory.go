package systems

import (
	"log"

	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/events"
	"github.com/automoto/arenacore/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// AddItem gives def to player. Whatever the inventory pushes out is dropped
// at the player's feet. durability is a picked-up weapon's remaining wear,
// or components.FreshDurability.
func AddItem(ecs *ecs.ECS, player *donburi.Entry, def *cfg.ItemDef, durability int) *components.ItemInstance {
	inv := components.Inventory.Get(player)
	added, dropped := inv.Add(def, durability)

	if dropped != nil {
		if dropped.ID == inv.HeldItem {
			unequip(ecs.World, player, inv)
		}
		dropItem(ecs, player, dropped)
	}
	if added == nil {
		return nil
	}

	PlaySFX(ecs.World, cfg.SoundPickup, player.Entity())
	if added.Slot != components.EquipmentSlot && (added.Slot == inv.Selected || inv.HeldItem == 0) {
		inv.SelectExisting()
		Equip(ecs.World, player)
	}
	return added
}

// CycleNext selects the next occupied slot and equips it.
func CycleNext(w donburi.World, player *donburi.Entry) {
	cycleSelection(w, player, (*components.InventoryData).CycleNext)
}

// CyclePrevious selects the previous occupied slot and equips it.
func CyclePrevious(w donburi.World, player *donburi.Entry) {
	cycleSelection(w, player, (*components.InventoryData).CyclePrevious)
}

func cycleSelection(w donburi.World, player *donburi.Entry, cycle func(*components.InventoryData) bool) {
	inv := components.Inventory.Get(player)
	from := inv.Selected
	if !cycle(inv) {
		return
	}

	events.ItemSwapped.Publish(w, events.ItemSwappedEvent{Entity: player.Entity(), From: from, To: inv.Selected})
	PlaySFX(w, cfg.SoundSwap, player.Entity())
	Equip(w, player)
}

// Equip shows the selected item and hands its stats to the combat
// controller. The old visual is released only after the new one exists.
func Equip(w donburi.World, player *donburi.Entry) {
	inv := components.Inventory.Get(player)
	item := inv.SelectedItem()
	if item == nil {
		unequip(w, player, inv)
		return
	}

	var visual components.VisualHandle
	if services := factory.ServicesOf(w); services != nil && services.Visuals != nil {
		visual = services.Visuals.Spawn(player.Entity(), item)
	}
	releaseVisual(w, inv.Held)

	inv.Held = visual
	inv.HeldItem = item.ID
	inv.Weapon = nil

	if item.Def.Kind == cfg.ItemWeapon {
		if item.Def.Weapon == nil {
			log.Printf("[inventory] item %q has no weapon definition, player %d is unarmed", item.Def.Name, components.Player.Get(player).Index)
		} else {
			inv.Weapon = item.Def.Weapon
		}
	}

	events.ItemEquipped.Publish(w, events.ItemEquippedEvent{Entity: player.Entity(), Item: item, Visual: visual})
}

// unequip leaves the player holding nothing.
func unequip(w donburi.World, player *donburi.Entry, inv *components.InventoryData) {
	releaseVisual(w, inv.Held)
	inv.Held = 0
	inv.HeldItem = 0
	inv.Weapon = nil
	events.ItemEquipped.Publish(w, events.ItemEquippedEvent{Entity: player.Entity()})
}

func releaseVisual(w donburi.World, h components.VisualHandle) {
	if h == 0 {
		return
	}
	if services := factory.ServicesOf(w); services != nil && services.Visuals != nil {
		services.Visuals.Release(h)
	}
}

// RecordWeaponUse wears down the weapon that landed an attack. A broken
// weapon leaves its slot and the next remaining item is equipped.
func RecordWeaponUse(w donburi.World, owner donburi.Entity, itemID uint64) {
	if !w.Valid(owner) {
		return
	}
	player := w.Entry(owner)
	if !player.HasComponent(components.Inventory) {
		return
	}

	inv := components.Inventory.Get(player)
	item, broken := inv.ConsumeDurability(itemID, cfg.Inventory.DurabilityPerHit)
	if item == nil || !broken {
		return
	}

	inv.Remove(item.ID)
	events.ItemBroken.Publish(w, events.ItemBrokenEvent{Entity: owner, Item: item})
	PlaySFX(w, cfg.SoundBreak, owner)

	if item.ID != inv.HeldItem {
		return
	}
	unequip(w, player, inv)
	if inv.SelectExisting() {
		Equip(w, player)
	}
}

// UseSelected consumes the selected item if it restores health.
func UseSelected(w donburi.World, player *donburi.Entry) bool {
	inv := components.Inventory.Get(player)
	item := inv.SelectedItem()
	if item == nil || !item.Def.RestoresHealth() {
		return false
	}

	if Heal(w, player.Entity(), item.Def.Consumable.HealthGain) == 0 {
		// Full health: keep it
		return false
	}

	inv.Remove(item.ID)
	unequip(w, player, inv)
	if inv.SelectExisting() {
		Equip(w, player)
	}
	return true
}

// dropItem turns an inventory item back into a world pickup, keeping its
// remaining durability.
func dropItem(ecs *ecs.ECS, player *donburi.Entry, item *components.ItemInstance) {
	pos, ok := positionOf(ecs.World, player.Entity())
	if !ok {
		return
	}
	facing := components.Player.Get(player).Facing
	at := math.Vec2{
		X: pos.X - facing.X*cfg.Inventory.DropOffset,
		Y: pos.Y - facing.Y*cfg.Inventory.DropOffset,
	}

	durability := components.FreshDurability
	if item.Def.HasDurability() {
		durability = item.Durability
	}
	factory.CreatePickup(ecs, at, item.Def, durability)
}
