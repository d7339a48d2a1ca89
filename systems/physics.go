package systems

import (
	"log"

	"github.com/automoto/generic-star/components"
	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/physics"
	"github.com/automoto/generic-star/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fallbackGravity pulls o down when the world has no gravity of its own.
// Static and destroyed bodies report no mass and are left alone.
func fallbackGravity(w *physics.World, o *physics.Object) {
	if w.UsingGravity() {
		return
	}
	if m := o.Mass(); m > 0 {
		if err := o.ApplyForce(0, m*cfg.Physics.BlockFallbackGravity); err != nil {
			log.Printf("Physics: fallback gravity failed: %v", err)
		}
	}
}

// UpdateBlockGravity gives free blocks a downward pull in worlds without
// gravity.
func UpdateBlockGravity(e *ecs.ECS) {
	s, ok := GetSession(e)
	if !ok {
		return
	}
	tags.Block.Each(e.World, func(entry *donburi.Entry) {
		fallbackGravity(s.Physics, components.Body.Get(entry).Object)
	})
}

// UpdatePlayerPhysics runs each player's controller step after its input
// was applied.
func UpdatePlayerPhysics(e *ecs.ECS) {
	s, ok := GetSession(e)
	if !ok {
		return
	}
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		body := components.PlayerBody.Get(entry)
		if !body.Valid() {
			return
		}
		fallbackGravity(s.Physics, &body.Object)
		if err := body.Step(); err != nil {
			log.Printf("Physics: player step failed: %v", err)
		}
	})
}

// UpdateSimulation advances the world by one fixed step.
func UpdateSimulation(e *ecs.ECS) {
	if s, ok := GetSession(e); ok {
		s.Physics.StepSimulation()
	}
}
