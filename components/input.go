package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ControlsData holds a player's key bindings and movement tuning. Speeds are
// in pixels per second.
type ControlsData struct {
	Left  ebiten.Key
	Right ebiten.Key
	Up    ebiten.Key
	Run   ebiten.Key

	WalkSpeed float64
	RunSpeed  float64
	JumpForce float64
	WallJump  bool
}

var Controls = donburi.NewComponentType[ControlsData]()
