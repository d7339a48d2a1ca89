package factory

import (
	"fmt"

	"github.com/automoto/generic-star/components"
	"github.com/automoto/generic-star/generics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnInstance creates the entity for one placed generic.
func SpawnInstance(ecs *ecs.ECS, session *components.SessionData, g generics.Generic) (*donburi.Entry, error) {
	switch v := g.(type) {
	case *generics.Block:
		return CreateBlock(ecs, session, v), nil
	case *generics.Player:
		return CreatePlayer(ecs, session, v), nil
	}
	return nil, fmt.Errorf("%w: %s", generics.ErrUnknownKind, g.Kind())
}
