package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/generic-star/components"
	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/fonts"
	"github.com/automoto/generic-star/graphics"
	"github.com/automoto/generic-star/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func strokeBody(screen *ebiten.Image, d graphics.Drawable, offset dmath.Vec2, c color.Color) {
	pts := graphics.RotatedCorners(d.DrawX()-offset.X, d.DrawY()-offset.Y, d.Width(), d.Height(), d.Angle(), d.DrawCenterX(), d.DrawCenterY())
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c, false)
	}
}

// DrawDebug outlines every body and prints session counters. Players are
// tinted by their contact state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	s, ok := GetSession(ecs)
	if !ok || !s.Debug {
		return
	}
	offset, _ := cameraOffset(ecs.World)

	tags.Block.Each(ecs.World, func(e *donburi.Entry) {
		if body := components.Body.Get(e); body.Valid() {
			strokeBody(screen, body.Object, offset, cfg.UI.BlockColor)
		}
	})

	var status string
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.PlayerBody.Get(e)
		if !body.Valid() {
			return
		}
		c := cfg.UI.PlayerColor
		switch {
		case body.IsOnGround():
			c = cfg.UI.GroundColor
		case body.IsWallToLeft() || body.IsWallToRight():
			c = cfg.UI.WallColor
		}
		strokeBody(screen, body.Player, offset, c)
		state := components.State.Get(e)
		status = fmt.Sprintf("%s jump:%d unstick:%d", state.CurrentState, body.JumpTime(), body.WallUnstick())
	})

	face := fonts.Debug.Get()
	lines := []string{
		fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("bodies %d  joints %d  loading %d", s.Physics.BodyCount(), s.Physics.JointCount(), s.Tasks.Pending()),
	}
	if status != "" {
		lines = append(lines, status)
	}
	lineHeight := face.Metrics().Height.Ceil()
	for i, l := range lines {
		text.Draw(screen, l, face, 4, lineHeight*(i+1), cfg.White)
	}
}
