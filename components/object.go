package components

import (
	"github.com/automoto/generic-star/physics"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its physics body.
type BodyData struct {
	*physics.Object
}

var Body = donburi.NewComponentType[BodyData]()
