package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// AttackPhase is the step of a flyer's timed attack sequence.
type AttackPhase int

const (
	PhaseIdle AttackPhase = iota
	PhaseTelegraph
	PhaseActive
	PhaseRecover
)

type FlyerData struct {
	Altitude float64

	OrbitTarget donburi.Entity
	OrbitAngle  float64

	WanderTarget math.Vec2
	HasWander    bool

	Phase      AttackPhase
	PhaseTimer int // frames left in Phase

	// Dive eases DiveOffset (added to cruise altitude) across the attack
	// sequence.
	Dive       *gween.Sequence
	DiveOffset float64
}

var Flyer = donburi.NewComponentType[FlyerData]()
