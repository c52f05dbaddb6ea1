package components

import (
	"github.com/automoto/arenacore/config"
	"github.com/yohamta/donburi"
)

// PickupData is an item lying in the world. Durability carries a dropped
// weapon's wear; FreshDurability marks a newly spawned one.
type PickupData struct {
	Def        *config.ItemDef
	Durability int
}

var Pickup = donburi.NewComponentType[PickupData]()
