package components

import (
	"github.com/automoto/arenacore/config"
	"github.com/yohamta/donburi"
)

// EquipmentSlot is the Slot value of the item in the equipment slot.
const EquipmentSlot = -1

// FreshDurability asks Add to start a weapon at its definition's maximum.
const FreshDurability = -1

// VisualHandle identifies a held-item visual owned by the presentation
// layer. Zero means nothing is shown.
type VisualHandle uint64

// ItemInstance binds an item definition to its mutable state.
type ItemInstance struct {
	ID         uint64
	Def        *config.ItemDef
	Durability int
	Slot       int
}

// InventoryData owns a fixed row of ordinary slots plus the equipment slot,
// which the selection cycle never visits.
type InventoryData struct {
	Slots     []*ItemInstance
	Equipment *ItemInstance
	Selected  int

	// Held is the visual for the selected item; Weapon is the stat block the
	// combat controller attacks with, nil when unarmed.
	Held     VisualHandle
	HeldItem uint64
	Weapon   *config.WeaponDef

	nextID uint64
}

func NewInventory(slots int) InventoryData {
	return InventoryData{Slots: make([]*ItemInstance, slots)}
}

// Add stores def and returns the new instance together with whatever it
// pushed out, which the caller drops into the world.
func (inv *InventoryData) Add(def *config.ItemDef, durability int) (added, dropped *ItemInstance) {
	item := inv.newInstance(def, durability)

	if def.IsEquipment() {
		dropped = inv.Equipment
		item.Slot = EquipmentSlot
		inv.Equipment = item
		return item, dropped
	}

	for i, slot := range inv.Slots {
		if slot == nil {
			item.Slot = i
			inv.Slots[i] = item
			return item, nil
		}
	}

	if len(inv.Slots) == 0 {
		return nil, item
	}

	// Full: the selected item makes room
	dropped = inv.Slots[inv.Selected]
	item.Slot = inv.Selected
	inv.Slots[inv.Selected] = item
	return item, dropped
}

func (inv *InventoryData) newInstance(def *config.ItemDef, durability int) *ItemInstance {
	inv.nextID++
	item := &ItemInstance{ID: inv.nextID, Def: def}
	if def.HasDurability() {
		if durability == FreshDurability || durability > def.Weapon.MaxDurability {
			durability = def.Weapon.MaxDurability
		}
		item.Durability = durability
	}
	return item
}

// SelectedItem returns the item in the selected slot, or nil.
func (inv *InventoryData) SelectedItem() *ItemInstance {
	if inv.Selected < 0 || inv.Selected >= len(inv.Slots) {
		return nil
	}
	return inv.Slots[inv.Selected]
}

// Find returns the item with id from any slot.
func (inv *InventoryData) Find(id uint64) *ItemInstance {
	if inv.Equipment != nil && inv.Equipment.ID == id {
		return inv.Equipment
	}
	for _, item := range inv.Slots {
		if item != nil && item.ID == id {
			return item
		}
	}
	return nil
}

// Remove takes the item with id out of its slot.
func (inv *InventoryData) Remove(id uint64) *ItemInstance {
	if inv.Equipment != nil && inv.Equipment.ID == id {
		item := inv.Equipment
		inv.Equipment = nil
		return item
	}
	for i, item := range inv.Slots {
		if item != nil && item.ID == id {
			inv.Slots[i] = nil
			return item
		}
	}
	return nil
}

// Count returns the number of items in ordinary slots.
func (inv *InventoryData) Count() int {
	n := 0
	for _, item := range inv.Slots {
		if item != nil {
			n++
		}
	}
	return n
}

// CycleNext moves the selection to the next occupied slot, wrapping around.
// It reports whether the selection changed.
func (inv *InventoryData) CycleNext() bool {
	return inv.cycle(1)
}

// CyclePrevious moves the selection to the previous occupied slot.
func (inv *InventoryData) CyclePrevious() bool {
	return inv.cycle(-1)
}

func (inv *InventoryData) cycle(step int) bool {
	n := len(inv.Slots)
	if n == 0 || inv.Count() == 0 {
		return false
	}
	for i := 1; i <= n; i++ {
		idx := ((inv.Selected+step*i)%n + n) % n
		if inv.Slots[idx] != nil {
			changed := idx != inv.Selected
			inv.Selected = idx
			return changed
		}
	}
	return false
}

// SelectExisting keeps the selection on an occupied slot when one exists.
// It reports false when the inventory is empty.
func (inv *InventoryData) SelectExisting() bool {
	if inv.SelectedItem() != nil {
		return true
	}
	inv.cycle(1)
	return inv.SelectedItem() != nil
}

// ConsumeDurability wears the item down by amount. broken is true when it
// reached zero; the caller removes it.
func (inv *InventoryData) ConsumeDurability(id uint64, amount int) (item *ItemInstance, broken bool) {
	item = inv.Find(id)
	if item == nil || !item.Def.HasDurability() {
		return item, false
	}
	item.Durability -= amount
	if item.Durability < 0 {
		item.Durability = 0
	}
	return item, item.Durability == 0
}

var Inventory = donburi.NewComponentType[InventoryData]()
