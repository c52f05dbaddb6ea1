package components

import "github.com/yohamta/donburi"

type LevelData struct {
	Name   string
	Number int // selects the loot table

	Players     int
	PlayersDown bool
}

var Level = donburi.NewComponentType[LevelData]()
