package components

import "github.com/yohamta/donburi"

// DeathData counts down the death sequence of an entity whose health ran
// out. Enemies are removed when it reaches zero; players only lose the
// component and stay down.
type DeathData struct {
	Timer int // frames left
}

var Death = donburi.NewComponentType[DeathData]()
