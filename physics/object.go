package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/automoto/generic-star/mathutil"
)

// Handle is anything backed by a body in a World. Joint factories accept it
// so players and plain objects can be pinned alike.
type Handle interface {
	object() *Object
}

// Object is a non-owning handle over one body. Sizes are kept in world units
// and every accessor converts to draw-space.
type Object struct {
	world     *World
	body      *box2d.B2Body
	w, h      float64
	box       bool
	destroyed bool
}

func (o *Object) object() *Object {
	return o
}

// Valid reports whether the underlying body still exists.
func (o *Object) Valid() bool {
	return o != nil && !o.destroyed
}

func (o *Object) check() error {
	if !o.Valid() {
		return ErrDestroyed
	}
	return nil
}

// DrawX returns the body origin in draw-space.
func (o *Object) DrawX() float64 {
	if !o.Valid() {
		return 0
	}
	return o.body.GetPosition().X / o.world.scale
}

func (o *Object) DrawY() float64 {
	if !o.Valid() {
		return 0
	}
	return o.body.GetPosition().Y / o.world.scale
}

func (o *Object) Position() mathutil.Vec2 {
	if !o.Valid() {
		return mathutil.Vec2{}
	}
	return o.world.toDraw(o.body.GetPosition())
}

// Centroid returns the center of mass in draw-space.
func (o *Object) Centroid() mathutil.Vec2 {
	if !o.Valid() {
		return mathutil.Vec2{}
	}
	return o.world.toDraw(o.body.GetWorldCenter())
}

func (o *Object) Width() float64 {
	if !o.Valid() {
		return 0
	}
	return o.w / o.world.scale
}

func (o *Object) Height() float64 {
	if !o.Valid() {
		return 0
	}
	return o.h / o.world.scale
}

// DrawCenterX is the sprite pivot: half the width for boxes, 0 otherwise.
func (o *Object) DrawCenterX() float64 {
	if !o.box {
		return 0
	}
	return o.Width() / 2
}

func (o *Object) DrawCenterY() float64 {
	if !o.box {
		return 0
	}
	return o.Height() / 2
}

// Angle returns the rotation in degrees within [0, 360). Positive angles
// turn the body the opposite way to the engine's own rotation.
func (o *Object) Angle() float64 {
	if !o.Valid() {
		return 0
	}
	return mathutil.NormalizeDeg(360 - mathutil.RadToDeg(o.body.GetAngle()))
}

// SetAngle rotates the body to deg degrees, or by deg when relative.
func (o *Object) SetAngle(deg float64, relative bool) error {
	if err := o.check(); err != nil {
		return err
	}
	if relative {
		deg += o.Angle()
	}
	o.body.SetTransform(o.body.GetPosition(), mathutil.DegToRad(360-deg))
	o.body.SetAwake(true)
	return nil
}

func (o *Object) Mass() float64 {
	if !o.Valid() {
		return 0
	}
	return o.body.GetMass()
}

// Velocity returns the linear velocity in draw-space pixels per second.
func (o *Object) Velocity() mathutil.Vec2 {
	if !o.Valid() {
		return mathutil.Vec2{}
	}
	return o.world.toDraw(o.body.GetLinearVelocity())
}

// SetVelocity overwrites the linear velocity, given in pixels per second.
func (o *Object) SetVelocity(vx, vy float64) error {
	if err := o.check(); err != nil {
		return err
	}
	o.body.SetLinearVelocity(o.world.toWorld(mathutil.V(vx, vy)))
	return nil
}

// SetPosition moves the body origin to x, y, or by x, y when relative.
func (o *Object) SetPosition(x, y float64, relative bool) error {
	if err := o.check(); err != nil {
		return err
	}
	pos := o.world.toWorld(mathutil.V(x, y))
	if relative {
		cur := o.body.GetPosition()
		pos = box2d.MakeB2Vec2(cur.X+pos.X, cur.Y+pos.Y)
	}
	o.body.SetTransform(pos, o.body.GetAngle())
	o.body.SetAwake(true)
	return nil
}

// ApplyForce pushes the body through its center of mass.
func (o *Object) ApplyForce(fx, fy float64) error {
	if err := o.check(); err != nil {
		return err
	}
	o.body.ApplyForce(o.world.toWorld(mathutil.V(fx, fy)), o.body.GetWorldCenter(), true)
	return nil
}

// ApplyForceAt pushes the body at a draw-space point.
func (o *Object) ApplyForceAt(fx, fy, px, py float64) error {
	if err := o.check(); err != nil {
		return err
	}
	o.body.ApplyForce(o.world.toWorld(mathutil.V(fx, fy)), o.world.toWorld(mathutil.V(px, py)), true)
	return nil
}

// ApplyDirectionalForce pushes with magnitude along deg degrees, using the
// same rotation convention as SetAngle.
func (o *Object) ApplyDirectionalForce(magnitude, deg float64) error {
	f := directional(magnitude, deg)
	return o.ApplyForce(f.X, f.Y)
}

func (o *Object) ApplyDirectionalForceAt(magnitude, deg, px, py float64) error {
	f := directional(magnitude, deg)
	return o.ApplyForceAt(f.X, f.Y, px, py)
}

func directional(magnitude, deg float64) mathutil.Vec2 {
	return mathutil.Scale(mathutil.FromAngle(mathutil.DegToRad(-deg)), magnitude)
}

// ApplyImpulse changes momentum immediately through the center of mass.
func (o *Object) ApplyImpulse(ix, iy float64) error {
	if err := o.check(); err != nil {
		return err
	}
	o.body.ApplyLinearImpulse(o.world.toWorld(mathutil.V(ix, iy)), o.body.GetWorldCenter(), true)
	return nil
}

// Destroy removes the body and any joints attached to it.
func (o *Object) Destroy() error {
	if err := o.check(); err != nil {
		return err
	}
	o.world.destroyObject(o)
	return nil
}
