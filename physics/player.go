package physics

import (
	"math"

	"github.com/ByteArena/box2d"
	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/mathutil"
)

// Player is a platformer character controller. Contact state is rebuilt on
// every Step and never carried between steps; the only memory kept across
// frames is the wall unstick accumulator and the jump extension counter.
type Player struct {
	Object

	maxSpeed        mathutil.Vec2 // world units, own basis
	airTravelFactor float64
	wallStick       int
	wallMagnetism   float64
	wallReduce      float64
	maxJumpTime     int

	onGround    bool
	wallToLeft  bool
	wallToRight bool

	wallUnstick int
	jumpTime    int
	prevWalk    int
	prevJump    bool

	right mathutil.Vec2
	up    mathutil.Vec2
}

func (p *Player) IsOnGround() bool {
	return p.onGround
}

func (p *Player) IsWallToLeft() bool {
	return p.wallToLeft
}

func (p *Player) IsWallToRight() bool {
	return p.wallToRight
}

// DrawCenterX centers the sprite horizontally on the torso.
func (p *Player) DrawCenterX() float64 {
	return p.Width() / 2
}

// DrawCenterY accounts for the torso sitting above the wheel.
func (p *Player) DrawCenterY() float64 {
	return p.Height()/2 - p.Width()/4
}

// Basis returns the player's right and up unit vectors in draw-space.
func (p *Player) Basis() (right, up mathutil.Vec2) {
	return p.right, p.up
}

// SetAngle rotates the player and recomputes its movement basis.
func (p *Player) SetAngle(deg float64, relative bool) error {
	if err := p.Object.SetAngle(deg, relative); err != nil {
		return err
	}
	if relative {
		deg = p.Object.Angle()
	}
	rad := mathutil.DegToRad(-deg)
	p.right = mathutil.FromAngle(rad)
	p.up = mathutil.FromAngle(rad - math.Pi/2)
	return nil
}

// classifyNormal tests a contact normal pointing away from the player.
func classifyNormal(n, right, up mathutil.Vec2) (wallLeft, wallRight, ground bool) {
	wallLeft = mathutil.DotWithin(n, right, -1, cfg.Player.MaxWallAngle)
	wallRight = mathutil.DotWithin(n, right, 1, cfg.Player.MaxWallAngle)
	ground = mathutil.DotWithin(n, up, -1, cfg.Player.MaxGroundAngle)
	return wallLeft, wallRight, ground
}

func (p *Player) classifyContacts() {
	p.onGround, p.wallToLeft, p.wallToRight = false, false, false

	edge := p.body.GetContactList()
	for i := 0; edge != nil && i < cfg.Physics.ContactScanLimit; i, edge = i+1, edge.Next {
		c := edge.Contact
		if !c.IsTouching() {
			continue
		}
		fa, fb := c.GetFixtureA(), c.GetFixtureB()
		if fa.IsSensor() || fb.IsSensor() {
			continue
		}

		var wm box2d.B2WorldManifold
		c.GetWorldManifold(&wm)
		n := mathutil.V(wm.Normal.X, wm.Normal.Y)
		// Manifold normals point from fixture A to fixture B.
		if fb.GetBody() == p.body {
			n = mathutil.Neg(n)
		}

		left, right, ground := classifyNormal(n, p.right, p.up)
		p.wallToLeft = p.wallToLeft || left
		p.wallToRight = p.wallToRight || right
		p.onGround = p.onGround || ground
	}
}

// Step classifies contacts, applies wall magnetism, updates the unstick
// accumulator and caps speed along the player's basis. Call it once per
// frame, after input and before World.StepSimulation.
func (p *Player) Step() error {
	if err := p.check(); err != nil {
		return err
	}
	if !p.prevJump {
		p.jumpTime = 0
	}

	p.classifyContacts()

	effectiveVert := 1.0
	if p.wallMagnetism > 0 && (p.wallToLeft || p.wallToRight) && !p.onGround {
		var pull mathutil.Vec2
		switch {
		// The pull holds until the counter passes the threshold, the same
		// point at which canWalk lets the player leave.
		case p.wallToLeft && p.wallUnstick <= p.wallStick:
			pull = mathutil.Scale(p.right, -p.wallMagnetism)
		case p.wallToRight && p.wallUnstick >= -p.wallStick:
			pull = mathutil.Scale(p.right, p.wallMagnetism)
		}
		if pull.X != 0 || pull.Y != 0 {
			p.body.ApplyForce(box2d.MakeB2Vec2(pull.X, pull.Y), p.body.GetWorldCenter(), true)
			effectiveVert = p.wallReduce
		}
	}

	if (p.prevWalk < 0 && p.wallUnstick > 0) || (p.prevWalk > 0 && p.wallUnstick < 0) {
		p.wallUnstick = 0
	}
	p.wallUnstick += p.prevWalk
	p.prevWalk = 0

	p.body.SetLinearVelocity(p.capVelocity(p.body.GetLinearVelocity(), effectiveVert))

	p.prevJump = false
	return nil
}

// capVelocity clamps v along right and up. Rising speed is capped by the
// full vertical limit; anything else is scaled by effectiveVert.
func (p *Player) capVelocity(v box2d.B2Vec2, effectiveVert float64) box2d.B2Vec2 {
	vel := mathutil.V(v.X, v.Y)
	speedX := mathutil.ClampSpeed(mathutil.Dot(vel, p.right), p.maxSpeed.X)
	speedY := -mathutil.Dot(vel, p.up)

	vertical := mathutil.Normalize(mathutil.V(vel.X*math.Abs(p.up.X), vel.Y*math.Abs(p.up.Y)))
	if mathutil.DotWithin(vertical, p.up, 1, 0.1) {
		speedY = mathutil.ClampSpeed(speedY, p.maxSpeed.Y)
	} else {
		speedY = mathutil.ClampSpeed(speedY, p.maxSpeed.Y*effectiveVert)
	}

	out := mathutil.Sub(mathutil.Scale(p.right, speedX), mathutil.Scale(p.up, speedY))
	return box2d.MakeB2Vec2(out.X, out.Y)
}

// Jump pushes the player along up. Holding jump over consecutive frames
// extends it for at most the configured number of frames; reset starts a
// fresh jump. A fresh jump drops any vertical velocity but keeps the
// horizontal part. horizontal is spread as an impulse across the extension
// window. Jump does not check for ground.
func (p *Player) Jump(vertical, horizontal float64, reset bool) error {
	if err := p.check(); err != nil {
		return err
	}
	if reset {
		p.jumpTime = 0
	}
	p.prevJump = true

	if p.jumpTime == 0 {
		v := p.body.GetLinearVelocity()
		keep := mathutil.Scale(p.right, mathutil.Dot(mathutil.V(v.X, v.Y), p.right))
		p.body.SetLinearVelocity(box2d.MakeB2Vec2(keep.X, keep.Y))
	}

	if p.jumpTime > p.maxJumpTime {
		return nil
	}

	s := p.world.scale
	force := mathutil.Scale(p.up, vertical*s)
	p.body.ApplyForce(box2d.MakeB2Vec2(force.X, force.Y), p.body.GetWorldCenter(), true)

	if horizontal != 0 {
		frames := p.maxJumpTime
		if frames < 1 {
			frames = 1
		}
		impulse := mathutil.Scale(p.right, horizontal/float64(frames)*s)
		p.body.ApplyLinearImpulse(box2d.MakeB2Vec2(impulse.X, impulse.Y), p.body.GetWorldCenter(), true)
	}

	p.jumpTime++
	return nil
}

// Walk moves the player along right at speed pixels per second. Zero means
// no input and leaves velocity alone. A player held against a wall only
// moves away once the unstick accumulator passes the wall stick threshold,
// unless it is on the ground. Instantaneous walking overwrites the right
// component of velocity; otherwise a force is applied.
func (p *Player) Walk(speed float64, instantaneous bool) error {
	if err := p.check(); err != nil {
		return err
	}
	if speed == 0 {
		p.prevWalk = 0
		return nil
	}
	p.prevWalk = int(mathutil.Sign(speed))

	if !p.canWalk() {
		return nil
	}

	air := 1.0
	if !p.onGround {
		air = p.airTravelFactor
	}
	along := mathutil.Scale(p.right, speed*p.world.scale*air)

	if instantaneous {
		v := p.body.GetLinearVelocity()
		keep := mathutil.Scale(p.up, mathutil.Dot(mathutil.V(v.X, v.Y), p.up))
		out := mathutil.Add(along, keep)
		p.body.SetLinearVelocity(box2d.MakeB2Vec2(out.X, out.Y))
		return nil
	}
	p.body.ApplyForce(box2d.MakeB2Vec2(along.X, along.Y), p.body.GetWorldCenter(), true)
	return nil
}

func (p *Player) canWalk() bool {
	switch {
	case p.onGround:
		return true
	case !p.wallToLeft && !p.wallToRight:
		return true
	case p.wallToLeft && p.wallUnstick > p.wallStick:
		return true
	case p.wallToRight && p.wallUnstick < -p.wallStick:
		return true
	}
	return false
}

// JumpTime returns how many frames the current jump has been extended.
func (p *Player) JumpTime() int {
	return p.jumpTime
}

// WallUnstick returns the signed count of consecutive same-direction walks.
func (p *Player) WallUnstick() int {
	return p.wallUnstick
}
