package components

import (
	"github.com/automoto/generic-star/graphics"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Stand *graphics.Texture
	Walk  *graphics.Texture
	Jump  *graphics.Texture

	JumpSound string

	// -1 facing left, 1 facing right
	Facing int
	// A jump started from the ground or a wall is still being held
	Jumping bool
}

var Player = donburi.NewComponentType[PlayerData]()
