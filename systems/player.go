package systems

import (
	"log"

	"github.com/automoto/generic-star/components"
	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/graphics"
	"github.com/automoto/generic-star/input"
	"github.com/automoto/generic-star/physics"
	"github.com/automoto/generic-star/sound"
	"github.com/automoto/generic-star/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// playerIntent is what the controls ask for this frame.
type playerIntent struct {
	dir         int
	run         bool
	jumpPressed bool
	jumpHeld    bool
}

func readIntent(in *input.Manager, ctl *components.ControlsData) playerIntent {
	var it playerIntent
	// The edge has to be read before the level query clears it.
	it.jumpPressed = in.IsKeyDownBtn(ctl.Up) || in.IsActionDownBtn(cfg.ActionJump)
	it.jumpHeld = in.IsKeyDown(ctl.Up) || in.IsActionDown(cfg.ActionJump)
	it.run = in.IsKeyDown(ctl.Run) || in.IsActionDown(cfg.ActionRun)

	left := in.IsKeyDown(ctl.Left) || in.IsActionDown(cfg.ActionMoveLeft)
	right := in.IsKeyDown(ctl.Right) || in.IsActionDown(cfg.ActionMoveRight)
	switch {
	case left && !right:
		it.dir = -1
	case right && !left:
		it.dir = 1
	}
	return it
}

// UpdatePlayerControls turns input into Walk and Jump calls. Contact state
// comes from the previous frame's Step.
func UpdatePlayerControls(e *ecs.ECS) {
	s, ok := GetSession(e)
	if !ok {
		return
	}
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		body := components.PlayerBody.Get(entry)
		if !body.Valid() {
			return
		}
		ctl := components.Controls.Get(entry)
		pd := components.Player.Get(entry)
		state := components.State.Get(entry)

		it := readIntent(s.Input, ctl)
		if err := controlPlayer(body.Player, ctl, pd, it, s.Sound); err != nil {
			log.Printf("Player: %v", err)
			return
		}

		state.PreviousState = state.CurrentState
		state.CurrentState = playerState(body.Player, it)
		if state.CurrentState == state.PreviousState {
			state.StateTimer++
		} else {
			state.StateTimer = 0
		}

		spr := components.Sprite.Get(entry)
		spr.Texture = playerTexture(pd, state.CurrentState)
		spr.FlipX = pd.Facing < 0
	})
}

func controlPlayer(p *physics.Player, ctl *components.ControlsData, pd *components.PlayerData, it playerIntent, snd *sound.Manager) error {
	speed := ctl.WalkSpeed
	if it.run {
		speed = ctl.RunSpeed
	}
	if err := p.Walk(float64(it.dir)*speed, true); err != nil {
		return err
	}
	if it.dir != 0 {
		pd.Facing = it.dir
	}

	grounded := p.IsOnGround()
	onWall := p.IsWallToLeft() || p.IsWallToRight()
	switch {
	case it.jumpPressed && (grounded || (ctl.WallJump && onWall)):
		push := 0.0
		if !grounded {
			// Kick off away from the wall.
			push = ctl.WalkSpeed
			if p.IsWallToRight() {
				push = -push
			}
		}
		if err := p.Jump(ctl.JumpForce, push, true); err != nil {
			return err
		}
		pd.Jumping = true
		if pd.JumpSound != "" && snd != nil {
			snd.PlaySound(pd.JumpSound, 1, 0)
		}
	case it.jumpHeld && pd.Jumping:
		return p.Jump(ctl.JumpForce, 0, false)
	default:
		pd.Jumping = false
	}
	return nil
}

func playerState(p *physics.Player, it playerIntent) cfg.StateID {
	switch {
	case !p.IsOnGround() && (p.IsWallToLeft() || p.IsWallToRight()):
		return cfg.WallSliding
	case !p.IsOnGround():
		return cfg.Jumping
	case it.dir != 0 && it.run:
		return cfg.Running
	case it.dir != 0:
		return cfg.Walking
	}
	return cfg.Idle
}

// playerTexture picks the sprite for a state, falling back to the standing
// sprite when the specific one is missing.
func playerTexture(pd *components.PlayerData, state cfg.StateID) *graphics.Texture {
	var tex *graphics.Texture
	switch state {
	case cfg.Jumping, cfg.WallSliding:
		tex = pd.Jump
	case cfg.Walking, cfg.Running:
		tex = pd.Walk
	}
	if tex == nil {
		tex = pd.Stand
	}
	return tex
}
