package components

import (
	"github.com/automoto/generic-star/generics"
	"github.com/yohamta/donburi"
)

// InstanceData keeps the generic an entity was spawned from.
type InstanceData struct {
	generics.Generic
}

var Instance = donburi.NewComponentType[InstanceData]()
