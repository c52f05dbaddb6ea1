package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Index  int
	Facing math.Vec2
	Down   bool // health reached zero; the body stays until the arena resets
}

var Player = donburi.NewComponentType[PlayerData]()

// IntentData is written by the input collaborator and consumed once per
// fixed tick by the combat controller.
type IntentData struct {
	Move      math.Vec2 // desired direction, any length
	Attack    bool
	Secondary bool
	Next      bool
	Previous  bool
	Interact  bool
	Use       bool
}

var Intent = donburi.NewComponentType[IntentData]()
