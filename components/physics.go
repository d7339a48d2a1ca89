package components

import (
	"github.com/automoto/generic-star/physics"
	"github.com/yohamta/donburi"
)

type PlayerBodyData struct {
	*physics.Player
}

var PlayerBody = donburi.NewComponentType[PlayerBodyData]()
