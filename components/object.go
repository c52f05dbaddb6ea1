package components

import (
	"github.com/automoto/arenacore/spatial"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's body inside the spatial index.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData holds the singleton spatial index every body is registered with.
type SpaceData struct {
	*spatial.Space
}

var Space = donburi.NewComponentType[SpaceData]()
