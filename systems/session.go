package systems

import (
	"github.com/automoto/generic-star/components"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the session context stored in the world.
func GetSession(e *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

// UpdateTasks hands finished background loads to their callbacks. It runs
// first so textures and sounds are in place before anything uses them.
func UpdateTasks(e *ecs.ECS) {
	if s, ok := GetSession(e); ok {
		s.Tasks.Drain()
	}
}
