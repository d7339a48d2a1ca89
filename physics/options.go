package physics

import (
	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/mathutil"
)

// BodyOptions configures a body created by one of the shape factories.
// Damping values are multiplied by the world scale before use.
type BodyOptions struct {
	Free          bool // dynamic when true, static otherwise
	Solid         bool // sensor when false
	Bullet        bool
	FixedRotation bool

	LinearDamping  float64
	AngularDamping float64

	Friction    float64
	Density     float64
	Restitution float64
}

// DefaultBodyOptions returns a solid, static body using the configured
// fixture defaults.
func DefaultBodyOptions() BodyOptions {
	return BodyOptions{
		Solid:       true,
		Friction:    cfg.Body.Friction,
		Density:     cfg.Body.Density,
		Restitution: cfg.Body.Restitution,
	}
}

// PlayerOptions configures a player controller. Speeds are in draw-space
// pixels per second and are measured along the player's own basis.
type PlayerOptions struct {
	MaxSpeed        mathutil.Vec2
	AirTravelFactor float64
	WallStick       int
	WallAlign       bool
	WallReduce      float64
	JumpTime        int
}

func DefaultPlayerOptions() PlayerOptions {
	return PlayerOptions{
		MaxSpeed:        mathutil.V(cfg.Player.MaxSpeedX, cfg.Player.MaxSpeedY),
		AirTravelFactor: cfg.Player.AirTravelFactor,
		WallStick:       cfg.Player.WallStick,
		WallAlign:       cfg.Player.WallAlign,
		WallReduce:      cfg.Player.WallReduce,
		JumpTime:        cfg.Player.JumpTime,
	}
}

// DistanceJointOptions configures PinDistanceJoint. Nil anchors default to
// the body origins.
type DistanceJointOptions struct {
	AnchorA *mathutil.Vec2
	AnchorB *mathutil.Vec2
	Collide bool

	// Spring softening; zero frequency keeps the joint rigid.
	FrequencyHz  float64
	DampingRatio float64
}

func DefaultDistanceJointOptions() DistanceJointOptions {
	return DistanceJointOptions{Collide: true}
}

// AngleLimit bounds a revolute joint, in degrees.
type AngleLimit struct {
	Min float64
	Max float64
}

// RevoluteJointOptions configures PinRevoluteJoint. A joint built without
// Motor ignores SetMotorSpeed.
type RevoluteJointOptions struct {
	Limit          *AngleLimit
	Motor          bool
	MaxMotorTorque float64
}

// PulleyJointOptions configures PinPulleyJoint. A zero ratio means 1.
type PulleyJointOptions struct {
	Ratio float64
}
