package factory

import (
	"log"
	"math"
	"path"

	"github.com/automoto/generic-star/archetypes"
	"github.com/automoto/generic-star/components"
	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/generics"
	"github.com/automoto/generic-star/graphics"
	"github.com/automoto/generic-star/input"
	"github.com/automoto/generic-star/mathutil"
	"github.com/automoto/generic-star/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer builds a player controller centered on the generic's
// position, binds its keys and starts loading its sprites.
func CreatePlayer(ecs *ecs.ECS, session *components.SessionData, p *generics.Player) *donburi.Entry {
	w, h := float64(p.Width), float64(p.Height)
	opts := physics.DefaultPlayerOptions()
	opts.MaxSpeed = mathutil.V(math.Max(p.WalkSpeed, p.RunSpeed), cfg.Player.MaxSpeedY)
	opts.AirTravelFactor = p.AirTravelFactor
	opts.WallStick = p.WallStick
	opts.WallReduce = p.WallReduce
	opts.JumpTime = p.JumpLength
	body := session.Physics.CreatePlayer(float64(p.X)-w/2, float64(p.Y)-h/2, w, h, opts)

	player := archetypes.Player.Spawn(ecs)
	components.PlayerBody.SetValue(player, components.PlayerBodyData{Player: body})
	components.Instance.SetValue(player, components.InstanceData{Generic: p})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.Idle,
	})
	components.Controls.SetValue(player, components.ControlsData{
		Left:      bindKey(p.CtrlLeft, ebiten.KeyArrowLeft),
		Right:     bindKey(p.CtrlRight, ebiten.KeyArrowRight),
		Up:        bindKey(p.CtrlUp, ebiten.KeyArrowUp),
		Run:       bindKey(p.CtrlRun, ebiten.KeyZ),
		WalkSpeed: p.WalkSpeed,
		RunSpeed:  p.RunSpeed,
		JumpForce: p.JumpForce,
		WallJump:  p.WallJump,
	})

	data := components.PlayerData{Facing: 1}
	if p.SndJump != nil && p.SndJump.URL != "" {
		data.JumpSound = path.Join(cfg.Game.SoundsDir, p.SndJump.URL)
	}
	components.Player.SetValue(player, data)

	set := func(slot func(*components.PlayerData) **graphics.Texture) func(*graphics.Texture) {
		return func(tex *graphics.Texture) {
			if player.Valid() {
				*slot(components.Player.Get(player)) = tex
			}
		}
	}
	loadTexture(session, p.SprRight, set(func(d *components.PlayerData) **graphics.Texture { return &d.Stand }))
	loadTexture(session, p.SprRWalk, set(func(d *components.PlayerData) **graphics.Texture { return &d.Walk }))
	loadTexture(session, p.SprRJump, set(func(d *components.PlayerData) **graphics.Texture { return &d.Jump }))

	return player
}

func bindKey(name string, fallback ebiten.Key) ebiten.Key {
	k, err := input.ParseKey(name)
	if err != nil {
		log.Printf("Player: %v, using default", err)
		return fallback
	}
	return k
}
