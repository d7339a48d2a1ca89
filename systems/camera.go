package systems

import (
	"math"

	"github.com/automoto/generic-star/components"
	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/rooms"
	"github.com/automoto/generic-star/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// cameraTarget centers the view on (x, y) while keeping it inside the room.
func cameraTarget(camera *components.CameraData, room *rooms.Room, x, y float64) dmath.Vec2 {
	maxX := math.Max(0, float64(room.Width)-camera.Width)
	maxY := math.Max(0, float64(room.Height)-camera.Height)
	return dmath.Vec2{
		X: math.Max(0, math.Min(maxX, x-camera.Width/2)),
		Y: math.Max(0, math.Min(maxY, y-camera.Height/2)),
	}
}

func followTarget(e *ecs.ECS) (*components.CameraData, dmath.Vec2, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, dmath.Vec2{}, false
	}
	camera := components.Camera.Get(entry)
	room := components.Room.Get(entry).Room

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return camera, camera.Position, false
	}
	body := components.PlayerBody.Get(playerEntry)
	if !body.Valid() {
		return camera, camera.Position, false
	}
	c := body.Centroid()
	return camera, cameraTarget(camera, room, c.X, c.Y), true
}

// UpdateCamera eases the view toward the player.
func UpdateCamera(e *ecs.ECS) {
	camera, target, ok := followTarget(e)
	if !ok {
		return
	}
	camera.Position.X += (target.X - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * cfg.Camera.FollowSmoothing
}

// CenterCamera jumps straight to the player, used when a room starts.
func CenterCamera(e *ecs.ECS) {
	camera, target, ok := followTarget(e)
	if !ok {
		return
	}
	camera.Position = target
}

// cameraOffset returns the view's top-left corner, or zero before the
// session exists.
func cameraOffset(w donburi.World) (dmath.Vec2, *components.CameraData) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return dmath.Vec2{}, nil
	}
	camera := components.Camera.Get(entry)
	return camera.Position, camera
}
