package factory

import (
	"path"

	"github.com/automoto/generic-star/archetypes"
	"github.com/automoto/generic-star/components"
	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/generics"
	"github.com/automoto/generic-star/graphics"
	"github.com/automoto/generic-star/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBlock builds a box body centered on the block's position and starts
// loading its sprite.
func CreateBlock(ecs *ecs.ECS, session *components.SessionData, b *generics.Block) *donburi.Entry {
	w, h := float64(b.Width), float64(b.Height)
	opts := physics.DefaultBodyOptions()
	opts.Free = b.Free
	obj := session.Physics.CreateBox(float64(b.X)-w/2, float64(b.Y)-h/2, w, h, opts)
	_ = obj.SetAngle(float64(b.Rotation), false)

	block := archetypes.Block.Spawn(ecs)
	components.Body.SetValue(block, components.BodyData{Object: obj})
	components.Instance.SetValue(block, components.InstanceData{Generic: b})

	loadTexture(session, b.Sprite, func(tex *graphics.Texture) {
		if block.Valid() {
			components.Sprite.Get(block).Texture = tex
		}
	})
	return block
}

func loadTexture(session *components.SessionData, r *generics.Resource, set func(*graphics.Texture)) {
	if r == nil || r.URL == "" {
		return
	}
	session.Graphics.LoadImage(path.Join(cfg.Game.ImagesDir, r.URL), set, false)
}
