package components

import (
	"github.com/automoto/generic-star/graphics"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Texture *graphics.Texture
	FlipX   bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
