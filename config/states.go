package config

// StateID identifies a behavior state. Entering one is published as an
// animation cue.
type StateID int

const (
	StateNone StateID = iota

	// Shared
	StateIdle
	StateDead

	// Ground enemy
	StateWaitingForTarget
	StatePatrol
	StateChase
	StateAttack

	// Flying enemy
	StateSearch
	StateHover
	StateFly
)

var stateNames = map[StateID]string{
	StateNone:             "none",
	StateIdle:             "idle",
	StateDead:             "dead",
	StateWaitingForTarget: "waiting",
	StatePatrol:           "patrol",
	StateChase:            "chase",
	StateAttack:           "attack",
	StateSearch:           "search",
	StateHover:            "hover",
	StateFly:              "fly",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
