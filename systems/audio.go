package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateAudio advances fades and loops and releases finished one-shots.
func UpdateAudio(e *ecs.ECS) {
	if s, ok := GetSession(e); ok {
		s.Sound.Update()
	}
}
