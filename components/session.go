package components

import (
	"github.com/automoto/generic-star/graphics"
	"github.com/automoto/generic-star/input"
	"github.com/automoto/generic-star/persistence"
	"github.com/automoto/generic-star/physics"
	"github.com/automoto/generic-star/sound"
	"github.com/automoto/generic-star/tasks"
	"github.com/yohamta/donburi"
)

// SessionData is the per-game context shared by every system. It lives on a
// single entity so systems reach it through the world, never a global.
type SessionData struct {
	Input    *input.Manager
	Sound    *sound.Manager
	Graphics *graphics.Plugin
	Physics  *physics.World
	Tasks    *tasks.Queue
	Store    *persistence.Store
	Debug    bool
}

var Session = donburi.NewComponentType[SessionData]()
