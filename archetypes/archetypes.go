package archetypes

import (
	"github.com/automoto/generic-star/components"
	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		components.Session,
		components.Settings,
		components.Camera,
		components.Room,
	)
	Block = newArchetype(
		tags.Block,
		components.Body,
		components.Sprite,
		components.Instance,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerBody,
		components.Controls,
		components.Sprite,
		components.State,
		components.Instance,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
