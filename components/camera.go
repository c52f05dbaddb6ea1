package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the debug viewer's eye. Position is the pixel the screen
// centers on.
type CameraData struct {
	Position math.Vec2
	Offset   math.Vec2 // shake displacement for this frame
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData is a decaying shake attached to the camera.
type ScreenShakeData struct {
	Intensity float64
	Duration  int
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
