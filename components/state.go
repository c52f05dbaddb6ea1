package components

import (
	"github.com/automoto/arenacore/config"
	"github.com/yohamta/donburi"
)

// StateData is an enemy's behavior state. StateTimer counts fixed ticks
// since the state was entered.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()
