package physics

import (
	"log"
	"math"

	"github.com/ByteArena/box2d"
	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/mathutil"
)

// Joint is a non-owning handle over a constraint between two bodies.
type Joint struct {
	world       *World
	joint       box2d.B2JointInterface
	motor       bool
	gearCapable bool
	destroyed   bool

	// gear joints driven by this joint; they are removed first
	gears []*Joint
}

func (j *Joint) Valid() bool {
	return j != nil && !j.destroyed
}

// MotorEnabled reports whether SetMotorSpeed has any effect.
func (j *Joint) MotorEnabled() bool {
	return j.motor
}

// GearCapable reports whether the joint may drive a gear joint.
func (j *Joint) GearCapable() bool {
	return j.gearCapable
}

// SetMotorSpeed sets the motor speed in radians per second. It does nothing
// on joints built without a motor.
func (j *Joint) SetMotorSpeed(speed float64) error {
	if !j.Valid() {
		return ErrDestroyed
	}
	if !j.motor {
		return nil
	}
	if rj, ok := j.joint.(*box2d.B2RevoluteJoint); ok {
		rj.SetMotorSpeed(speed)
	}
	return nil
}

func (j *Joint) MotorSpeed() float64 {
	if !j.Valid() || !j.motor {
		return 0
	}
	if rj, ok := j.joint.(*box2d.B2RevoluteJoint); ok {
		return rj.GetMotorSpeed()
	}
	return 0
}

// Destroy removes the joint and any gear joints it drives.
func (j *Joint) Destroy() error {
	if !j.Valid() {
		return ErrDestroyed
	}
	j.world.destroyJoint(j)
	return nil
}

func (w *World) destroyJoint(j *Joint) {
	if j.destroyed {
		return
	}
	for _, g := range j.gears {
		w.destroyJoint(g)
	}
	delete(w.joints, j.joint)
	w.b2.DestroyJoint(j.joint)
	j.destroyed = true
}

func (w *World) trackJoint(bj box2d.B2JointInterface, motor, gearCapable bool) *Joint {
	j := &Joint{world: w, joint: bj, motor: motor, gearCapable: gearCapable}
	w.joints[bj] = j
	return j
}

func bodies(a, b Handle) (*Object, *Object, error) {
	oa, ob := a.object(), b.object()
	if !oa.Valid() || !ob.Valid() {
		return nil, nil, ErrDestroyed
	}
	return oa, ob, nil
}

// PinDistanceJoint keeps two anchor points length pixels apart. Anchors are
// draw-space world points and default to each body's origin.
func (w *World) PinDistanceJoint(a, b Handle, length float64, opts DistanceJointOptions) (*Joint, error) {
	oa, ob, err := bodies(a, b)
	if err != nil {
		return nil, err
	}
	anchorA := oa.body.GetPosition()
	if opts.AnchorA != nil {
		anchorA = w.toWorld(*opts.AnchorA)
	}
	anchorB := ob.body.GetPosition()
	if opts.AnchorB != nil {
		anchorB = w.toWorld(*opts.AnchorB)
	}

	def := box2d.MakeB2DistanceJointDef()
	def.Initialize(oa.body, ob.body, anchorA, anchorB)
	def.Length = length * w.scale
	def.CollideConnected = opts.Collide
	def.FrequencyHz = opts.FrequencyHz
	def.DampingRatio = opts.DampingRatio

	return w.trackJoint(w.b2.CreateJoint(&def), false, false), nil
}

// PinRevoluteJoint pins two bodies together at a draw-space pivot so they
// rotate around it. Revolute joints are the only gear-capable joints.
func (w *World) PinRevoluteJoint(a, b Handle, pivot mathutil.Vec2, opts RevoluteJointOptions) (*Joint, error) {
	oa, ob, err := bodies(a, b)
	if err != nil {
		return nil, err
	}

	def := box2d.MakeB2RevoluteJointDef()
	def.Initialize(oa.body, ob.body, w.toWorld(pivot))
	if opts.Limit != nil {
		def.LowerAngle = mathutil.DegToRad(opts.Limit.Min)
		def.UpperAngle = mathutil.DegToRad(opts.Limit.Max)
		def.EnableLimit = true
	}
	if opts.Motor {
		def.MaxMotorTorque = opts.MaxMotorTorque
		def.MotorSpeed = 0
		def.EnableMotor = true
	}

	return w.trackJoint(w.b2.CreateJoint(&def), opts.Motor, true), nil
}

// PinPulleyJoint hangs two bodies from ground points. Lengths are measured
// from each ground point to its anchor; both are draw-space world points.
func (w *World) PinPulleyJoint(a Handle, groundA, anchorA mathutil.Vec2, b Handle, groundB, anchorB mathutil.Vec2, opts PulleyJointOptions) (*Joint, error) {
	oa, ob, err := bodies(a, b)
	if err != nil {
		return nil, err
	}
	ratio := opts.Ratio
	if ratio <= 0 {
		ratio = 1
	}

	def := box2d.MakeB2PulleyJointDef()
	def.Initialize(oa.body, ob.body,
		w.toWorld(groundA), w.toWorld(groundB),
		w.toWorld(anchorA), w.toWorld(anchorB),
		ratio)

	return w.trackJoint(w.b2.CreateJoint(&def), false, false), nil
}

// PinGearJoint couples two revolute joints so the second turns ratio times
// the first. Any other joint kind is rejected with ErrNotGearCapable.
func (w *World) PinGearJoint(a Handle, j1 *Joint, b Handle, j2 *Joint, ratio float64) (*Joint, error) {
	oa, ob, err := bodies(a, b)
	if err != nil {
		return nil, err
	}
	if !j1.Valid() || !j2.Valid() {
		return nil, ErrDestroyed
	}
	if !j1.gearCapable || !j2.gearCapable {
		if cfg.Debug.Enabled {
			log.Printf("Physics: gear joint needs two revolute joints")
		}
		return nil, ErrNotGearCapable
	}
	if math.IsNaN(ratio) || ratio == 0 {
		ratio = 1
	}

	def := box2d.MakeB2GearJointDef()
	def.Joint1 = j1.joint
	def.Joint2 = j2.joint
	def.BodyA = oa.body
	def.BodyB = ob.body
	def.Ratio = ratio

	g := w.trackJoint(w.b2.CreateJoint(&def), false, false)
	j1.gears = append(j1.gears, g)
	j2.gears = append(j2.gears, g)
	return g, nil
}
