// Package events is the outbound notification catalogue. Animation, audio
// and UI collaborators subscribe here; nothing in the core reads back from
// them. Events queue during the tick and are delivered by ProcessAllEvents.
package events

import (
	"github.com/automoto/arenacore/components"
	"github.com/automoto/arenacore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type HealthChangedEvent struct {
	Entity  donburi.Entity
	Current int
	Max     int
}

type DamagedEvent struct {
	Entity donburi.Entity
	Source donburi.Entity
	Amount int
}

type HealedEvent struct {
	Entity donburi.Entity
	Amount int
}

type DiedEvent struct {
	Entity donburi.Entity
	Source donburi.Entity
}

// StateEnteredEvent drives animation: patrol, chase, attack, hover, fly, dead.
type StateEnteredEvent struct {
	Entity donburi.Entity
	State  config.StateID
}

// ItemEquippedEvent carries a nil Item when the holder is left unarmed.
type ItemEquippedEvent struct {
	Entity donburi.Entity
	Item   *components.ItemInstance
	Visual components.VisualHandle
}

type ItemBrokenEvent struct {
	Entity donburi.Entity
	Item   *components.ItemInstance
}

type ItemSwappedEvent struct {
	Entity donburi.Entity
	From   int
	To     int
}

type WaveStartedEvent struct {
	Wave    int
	Enemies int
	Items   int
}

type WaveClearedEvent struct {
	Wave int
}

type PlaySoundEvent struct {
	Sound  config.SoundID
	Entity donburi.Entity
}

// PlayersDownEvent fires once when every player is down.
type PlayersDownEvent struct {
	Wave int
}

var (
	HealthChanged = events.NewEventType[HealthChangedEvent]()
	Damaged       = events.NewEventType[DamagedEvent]()
	Healed        = events.NewEventType[HealedEvent]()
	Died          = events.NewEventType[DiedEvent]()
	StateEntered  = events.NewEventType[StateEnteredEvent]()
	ItemEquipped  = events.NewEventType[ItemEquippedEvent]()
	ItemBroken    = events.NewEventType[ItemBrokenEvent]()
	ItemSwapped   = events.NewEventType[ItemSwappedEvent]()
	WaveStarted   = events.NewEventType[WaveStartedEvent]()
	WaveCleared   = events.NewEventType[WaveClearedEvent]()
	PlaySound     = events.NewEventType[PlaySoundEvent]()
	PlayersDown   = events.NewEventType[PlayersDownEvent]()
)

// ProcessAllEvents delivers every queued event to its subscribers.
func ProcessAllEvents(w donburi.World) {
	events.ProcessAllEvents(w)
}
