package systems

import (
	"github.com/automoto/arenacore/components"
	cfg "github.com/automoto/arenacore/config"
	"github.com/automoto/arenacore/events"
	"github.com/yohamta/donburi"
)

// setState moves an agent to next. StateEntered is published only on an
// actual change, so re-entering the current state every tick is free.
func setState(e *donburi.Entry, next cfg.StateID) {
	state := components.State.Get(e)
	if state.CurrentState == next {
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0

	events.StateEntered.Publish(e.World, events.StateEnteredEvent{
		Entity: e.Entity(),
		State:  next,
	})
}

func currentState(e *donburi.Entry) cfg.StateID {
	return components.State.Get(e).CurrentState
}
