package scenes

import (
	"fmt"
	"log"

	"github.com/automoto/generic-star/components"
	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/rooms"
	"github.com/automoto/generic-star/systems"
	factory2 "github.com/automoto/generic-star/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RoomScene runs one room: it spawns the room's instances and drives the
// frame in a fixed order.
type RoomScene struct {
	ecs     *ecs.ECS
	session *Session
	data    *components.SessionData
	room    *rooms.Room
}

// NewRoomScene spawns every instance of room into a fresh world.
func NewRoomScene(s *Session, room *rooms.Room) (*RoomScene, error) {
	rs := &RoomScene{session: s, room: room}
	if err := rs.configure(); err != nil {
		return nil, err
	}
	return rs, nil
}

func (rs *RoomScene) configure() error {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Background loads land before anything reads them
	ecs.AddSystem(systems.UpdateTasks)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)

	// Controller mutators, then the controller step, then the world step
	ecs.AddSystem(systems.UpdatePlayerControls)
	ecs.AddSystem(systems.UpdateBlockGravity)
	ecs.AddSystem(systems.UpdatePlayerPhysics)
	ecs.AddSystem(systems.UpdateSimulation)

	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawRoom)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	rs.ecs = ecs

	s := rs.session
	systems.ApplySettings(s.Sound, s.Settings)
	entry := factory2.CreateSession(ecs, s.SessionData, s.Settings, rs.room)
	rs.data = components.Session.Get(entry)

	for i, inst := range rs.room.Instances {
		if _, err := factory2.SpawnInstance(ecs, rs.data, inst.Generic); err != nil {
			return fmt.Errorf("room %s instance %d: %w", rs.room.Name, i, err)
		}
	}
	systems.CenterCamera(ecs)

	if rs.data.Debug {
		log.Printf("Rooms: started %s with %d instances", rs.room.Name, len(rs.room.Instances))
	}
	return nil
}

// Room returns the room being played.
func (rs *RoomScene) Room() *rooms.Room {
	return rs.room
}

// World exposes the scene's entities.
func (rs *RoomScene) World() donburi.World {
	return rs.ecs.World
}

func (rs *RoomScene) Update() {
	rs.ecs.Update()
	// Toggles live on the session entity; keep the session in step so the
	// next room starts the same way.
	rs.session.Debug = rs.data.Debug
	if entry, ok := components.Settings.First(rs.ecs.World); ok {
		rs.session.Settings = *components.Settings.Get(entry)
	}
}

func (rs *RoomScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.BackgroundColor)
	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}
