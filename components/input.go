package components

import (
	cfg "github.com/automoto/arenacore/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PlayerInputData binds a player to a physical device. Previous keeps last
// frame's state so buttons fire once per press.
type PlayerInputData struct {
	CurrentInput   [cfg.ActionCount]bool
	PreviousInput  [cfg.ActionCount]bool
	BoundGamepadID *ebiten.GamepadID // nil = keyboard
}

func (p *PlayerInputData) JustPressed(action cfg.ActionID) bool {
	return p.CurrentInput[action] && !p.PreviousInput[action]
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// BotData drives a player from the autopilot instead of a device.
type BotData struct {
	Difficulty    cfg.BotDifficulty
	DecisionTimer int
	Goal          BotGoal
	Target        donburi.Entity
}

// BotGoal is what the autopilot is currently doing.
type BotGoal int

const (
	BotIdle BotGoal = iota
	BotFight
	BotLoot
)

var Bot = donburi.NewComponentType[BotData]()
