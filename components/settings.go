package components

import (
	"github.com/automoto/generic-star/persistence"
	"github.com/yohamta/donburi"
)

// Settings holds the user's audio and display preferences for the session.
var Settings = donburi.NewComponentType[persistence.SavedSettings]()
