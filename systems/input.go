package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw input once per frame.
// Must run BEFORE UpdatePlayerControls in the system order.
func UpdateInput(e *ecs.ECS) {
	if s, ok := GetSession(e); ok {
		s.Input.Update()
	}
}
