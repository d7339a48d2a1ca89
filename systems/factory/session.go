package factory

import (
	"github.com/automoto/generic-star/archetypes"
	"github.com/automoto/generic-star/components"
	"github.com/automoto/generic-star/persistence"
	"github.com/automoto/generic-star/rooms"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the entity carrying the session context, the user
// settings, the camera and the room with its spatial index.
func CreateSession(ecs *ecs.ECS, session components.SessionData, settings persistence.SavedSettings, room *rooms.Room) *donburi.Entry {
	e := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(e, session)
	components.Settings.SetValue(e, settings)
	components.Camera.SetValue(e, components.CameraData{
		Width:  float64(room.ViewWidth),
		Height: float64(room.ViewHeight),
	})
	data := components.RoomData{
		Room:  room,
		Index: rooms.NewIndex(room),
	}
	if room.Background != nil {
		data.Background = ebiten.NewImageFromImage(room.Background)
	}
	components.Room.SetValue(e, data)
	return e
}
