package systems

import (
	"math"

	"github.com/automoto/generic-star/components"
	"github.com/automoto/generic-star/graphics"
	"github.com/automoto/generic-star/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// onScreen keeps anything whose bounding circle reaches the view.
func onScreen(d graphics.Drawable, offset dmath.Vec2, viewW, viewH float64) bool {
	cx := d.DrawX() - d.DrawCenterX() + d.Width()/2
	cy := d.DrawY() - d.DrawCenterY() + d.Height()/2
	dist := math.Hypot(cx-(offset.X+viewW/2), cy-(offset.Y+viewH/2))
	return dist <= math.Hypot(viewW, viewH)/2+math.Hypot(d.Width(), d.Height())/2
}

// DrawSprites draws every loaded block and player sprite over its body.
// Entities whose textures have not arrived yet draw nothing.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	offset, camera := cameraOffset(ecs.World)
	viewW, viewH := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	if camera != nil {
		viewW, viewH = camera.Width, camera.Height
	}

	draw := func(d graphics.Drawable, spr *components.SpriteData) {
		if spr.Texture == nil || !onScreen(d, offset, viewW, viewH) {
			return
		}
		graphics.DrawObject(screen, spr.Texture, d, offset, spr.FlipX)
	}

	tags.Block.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Valid() {
			draw(body.Object, components.Sprite.Get(e))
		}
	})
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.PlayerBody.Get(e)
		if body.Valid() {
			draw(body.Player, components.Sprite.Get(e))
		}
	})
}

// DrawRoom draws the room's tile background under everything else.
func DrawRoom(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Room.First(ecs.World)
	if !ok {
		return
	}
	bg := components.Room.Get(entry).Background
	if bg == nil {
		return
	}
	offset, _ := cameraOffset(ecs.World)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-offset.X, -offset.Y)
	screen.DrawImage(bg, op)
}
