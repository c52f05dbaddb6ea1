package components

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/arenacore/loot"
	"github.com/automoto/arenacore/spatial"
	"github.com/yohamta/donburi"
)

// HeldVisuals creates and releases the visual of the item a player holds.
type HeldVisuals interface {
	Spawn(owner donburi.Entity, item *ItemInstance) VisualHandle
	Release(h VisualHandle)
}

// ServicesData carries the collaborators handed to the arena at
// construction. Systems read them from this singleton only.
type ServicesData struct {
	Query   spatial.Query
	Nav     spatial.Navigator
	Loot    loot.Picker
	Visuals HeldVisuals
	Rand    *rand.Rand
}

var Services = donburi.NewComponentType[ServicesData]()

// ClockData is the singleton frame counter. Delta is the length of the
// current variable tick.
type ClockData struct {
	Frame int
	Delta time.Duration
}

var Clock = donburi.NewComponentType[ClockData]()
