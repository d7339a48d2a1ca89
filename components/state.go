package components

import (
	cfg "github.com/automoto/generic-star/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  cfg.StateID
	PreviousState cfg.StateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()
