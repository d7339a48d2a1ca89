package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the view onto the room. Position is the top-left corner of
// the view in room coordinates.
type CameraData struct {
	Position math.Vec2
	Width    float64
	Height   float64
}

var Camera = donburi.NewComponentType[CameraData]()
