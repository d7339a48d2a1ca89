package components

import (
	"github.com/automoto/generic-star/rooms"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type RoomData struct {
	Room  *rooms.Room
	Index *rooms.Index

	Background *ebiten.Image
}

var Room = donburi.NewComponentType[RoomData]()
