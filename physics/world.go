package physics

import (
	"log"
	"math"

	"github.com/ByteArena/box2d"
	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/mathutil"
)

// World owns the simulation and every body and joint created through it.
// All public lengths are draw-space pixels; the world converts with Scale.
type World struct {
	b2      *box2d.B2World
	scale   float64
	gravity mathutil.Vec2

	objects map[*box2d.B2Body]*Object
	joints  map[box2d.B2JointInterface]*Joint
}

// NewWorld creates a world with gravity given in pixels per second squared.
func NewWorld(gravity mathutil.Vec2) *World {
	scale := cfg.Physics.Scale
	b2 := box2d.MakeB2World(box2d.MakeB2Vec2(gravity.X*scale, gravity.Y*scale))
	return &World{
		b2:      &b2,
		scale:   scale,
		gravity: gravity,
		objects: make(map[*box2d.B2Body]*Object),
		joints:  make(map[box2d.B2JointInterface]*Joint),
	}
}

// Scale returns the world units per draw-space pixel.
func (w *World) Scale() float64 {
	return w.scale
}

func (w *World) Gravity() mathutil.Vec2 {
	return w.gravity
}

// UsingGravity reports whether the world pulls bodies in any direction.
func (w *World) UsingGravity() bool {
	return w.gravity.X != 0 || w.gravity.Y != 0
}

func (w *World) SetGravity(gravity mathutil.Vec2) {
	w.gravity = gravity
	w.b2.SetGravity(w.toWorld(gravity))
}

func (w *World) BodyCount() int {
	return len(w.objects)
}

func (w *World) JointCount() int {
	return len(w.joints)
}

// StepSimulation advances the world by one fixed step and clears forces.
func (w *World) StepSimulation() {
	w.b2.Step(cfg.Physics.TimeStep, cfg.Physics.VelocityIterations, cfg.Physics.PositionIterations)
	w.b2.ClearForces()
}

// Destroy removes every joint and body. Handles created by this world are
// invalid afterwards.
func (w *World) Destroy() {
	for _, j := range w.joints {
		w.destroyJoint(j)
	}
	for _, o := range w.objects {
		w.destroyObject(o)
	}
}

func (w *World) toWorld(v mathutil.Vec2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X*w.scale, v.Y*w.scale)
}

func (w *World) toDraw(v box2d.B2Vec2) mathutil.Vec2 {
	return mathutil.V(v.X/w.scale, v.Y/w.scale)
}

// createBody places a body at a position already in world units. Damping is
// scaled here so callers pass the same values they would pass for forces.
func (w *World) createBody(pos box2d.B2Vec2, free, bullet, canRotate bool, linearDamping, angularDamping float64) *box2d.B2Body {
	def := box2d.MakeB2BodyDef()
	def.Position = pos
	if free {
		def.Type = box2d.B2BodyType.B2_dynamicBody
	} else {
		def.Type = box2d.B2BodyType.B2_staticBody
	}
	def.LinearDamping = linearDamping * w.scale
	def.AngularDamping = angularDamping * w.scale
	def.FixedRotation = !canRotate
	def.Bullet = bullet
	return w.b2.CreateBody(&def)
}

func fixtureDef(shape box2d.B2ShapeInterface, solid bool, friction, density, restitution float64) box2d.B2FixtureDef {
	fd := box2d.MakeB2FixtureDef()
	fd.Shape = shape
	fd.IsSensor = !solid
	fd.Friction = friction
	fd.Density = density
	fd.Restitution = restitution
	return fd
}

func (w *World) track(body *box2d.B2Body, width, height float64, box bool) *Object {
	o := &Object{world: w, body: body, w: width, h: height, box: box}
	w.objects[body] = o
	body.SetUserData(o)
	return o
}

// CreateBox creates a rectangular body. x and y locate the top-left corner;
// the body origin sits at the box center.
func (w *World) CreateBox(x, y, width, height float64, opts BodyOptions) *Object {
	ww := width * w.scale
	wh := height * w.scale
	pos := box2d.MakeB2Vec2(x*w.scale+ww/2, y*w.scale+wh/2)

	body := w.createBody(pos, opts.Free, opts.Bullet, !opts.FixedRotation, opts.LinearDamping, opts.AngularDamping)
	shape := box2d.NewB2PolygonShape()
	shape.SetAsBox(ww/2, wh/2)
	fd := fixtureDef(shape, opts.Solid, opts.Friction, opts.Density, opts.Restitution)
	body.CreateFixtureFromDef(&fd)

	return w.track(body, ww, wh, true)
}

// CreateCircle creates a circular body centered on x, y. Its nominal size is
// the diameter in both directions.
func (w *World) CreateCircle(x, y, radius float64, opts BodyOptions) *Object {
	r := radius * w.scale
	body := w.createBody(box2d.MakeB2Vec2(x*w.scale, y*w.scale), opts.Free, opts.Bullet, !opts.FixedRotation, opts.LinearDamping, opts.AngularDamping)

	shape := box2d.NewB2CircleShape()
	shape.M_radius = r
	fd := fixtureDef(shape, opts.Solid, opts.Friction, opts.Density, opts.Restitution)
	body.CreateFixtureFromDef(&fd)

	return w.track(body, r*2, r*2, false)
}

// CreatePolygon creates a body at x, y from triangles given relative to that
// origin. Each triangle is rewound counter-clockwise before use. Triangles
// without exactly three vertices, or with no area, are skipped. The nominal
// size is the bounding box of every vertex given, skipped ones included.
func (w *World) CreatePolygon(x, y float64, triangles [][]mathutil.Vec2, opts BodyOptions) (*Object, error) {
	var valid [][3]mathutil.Vec2
	minPt := mathutil.V(math.Inf(1), math.Inf(1))
	maxPt := mathutil.V(math.Inf(-1), math.Inf(-1))

	for i, tri := range triangles {
		for _, p := range tri {
			minPt = mathutil.V(math.Min(minPt.X, p.X), math.Min(minPt.Y, p.Y))
			maxPt = mathutil.V(math.Max(maxPt.X, p.X), math.Max(maxPt.Y, p.Y))
		}
		if len(tri) != 3 {
			if cfg.Debug.Enabled {
				log.Printf("Physics: skipping malformed triangle %d with %d vertices", i, len(tri))
			}
			continue
		}
		if mathutil.TriangleArea(tri[0], tri[1], tri[2])*w.scale*w.scale < minTriangleArea {
			if cfg.Debug.Enabled {
				log.Printf("Physics: skipping degenerate triangle %d %v", i, tri)
			}
			continue
		}

		var ordered [3]mathutil.Vec2
		ccw := mathutil.IsCCW(tri[0], tri[1], tri[2])
		for j, p := range tri {
			idx := j
			if !ccw {
				idx = 2 - j
			}
			ordered[idx] = p
		}
		valid = append(valid, ordered)
	}

	if len(valid) == 0 {
		return nil, ErrNoGeometry
	}

	body := w.createBody(box2d.MakeB2Vec2(x*w.scale, y*w.scale), opts.Free, opts.Bullet, !opts.FixedRotation, opts.LinearDamping, opts.AngularDamping)
	for _, tri := range valid {
		verts := make([]box2d.B2Vec2, 3)
		for j, p := range tri {
			verts[j] = w.toWorld(p)
		}
		shape := box2d.NewB2PolygonShape()
		shape.Set(verts, 3)
		fd := fixtureDef(shape, opts.Solid, opts.Friction, opts.Density, opts.Restitution)
		body.CreateFixtureFromDef(&fd)
	}

	return w.track(body, (maxPt.X-minPt.X)*w.scale, (maxPt.Y-minPt.Y)*w.scale, false), nil
}

// Triangles smaller than this (in square world units) collapse inside the
// engine's vertex welding.
const minTriangleArea = 1e-6

// CreatePlayer creates a platformer character: a rectangle torso with a
// wheel at its base, on one bullet body that cannot rotate. x and y locate
// the top-left corner of the character.
func (w *World) CreatePlayer(x, y, width, height float64, opts PlayerOptions) *Player {
	if width > height {
		if cfg.Debug.Enabled {
			log.Printf("Physics: player width %.1f exceeds height %.1f, clamping", width, height)
		}
		width = height
	}
	if opts.MaxSpeed.X <= 0 || opts.MaxSpeed.Y <= 0 {
		if cfg.Debug.Enabled {
			log.Printf("Physics: player max speed %v must be positive, using defaults", opts.MaxSpeed)
		}
		opts.MaxSpeed = mathutil.V(cfg.Player.MaxSpeedX, cfg.Player.MaxSpeedY)
	}
	if opts.WallStick < 0 {
		opts.WallStick = 0
	}
	if opts.JumpTime < 0 {
		opts.JumpTime = 0
	}
	opts.WallReduce = mathutil.ClampFloat(opts.WallReduce, 0, 1)

	rectW := width * w.scale
	rectH := height*w.scale - rectW/2
	pos := box2d.MakeB2Vec2(x*w.scale+rectW/2, y*w.scale+rectH/2)
	body := w.createBody(pos, true, true, false, 0, cfg.Player.AngularDamping)

	rect := box2d.NewB2PolygonShape()
	rect.SetAsBox(rectW/2, rectH/2)
	fd := fixtureDef(rect, true, cfg.Player.BodyFriction, cfg.Player.BodyDensity, cfg.Player.BodyRestitution)
	body.CreateFixtureFromDef(&fd)

	wheel := box2d.NewB2CircleShape()
	wheel.M_radius = rectW / 2
	wheel.M_p = box2d.MakeB2Vec2(0, rectH/2)
	fd = fixtureDef(wheel, true, cfg.Player.WheelFriction, cfg.Player.BodyDensity, cfg.Player.BodyRestitution)
	body.CreateFixtureFromDef(&fd)

	p := &Player{
		Object: Object{
			world: w,
			body:  body,
			w:     width * w.scale,
			h:     height * w.scale,
			box:   true,
		},
		maxSpeed:        mathutil.Scale(opts.MaxSpeed, w.scale),
		airTravelFactor: opts.AirTravelFactor,
		wallStick:       opts.WallStick,
		wallReduce:      opts.WallReduce,
		maxJumpTime:     opts.JumpTime,
	}
	if opts.WallAlign {
		p.wallMagnetism = cfg.Player.WallMagnetism
	}
	w.objects[body] = &p.Object
	body.SetUserData(p)
	p.SetAngle(0, false)
	return p
}

func (w *World) destroyObject(o *Object) {
	if o.destroyed {
		return
	}
	// Joints attached to the body go first so gear joints never outlive the
	// joints they drive.
	var attached []*Joint
	for e := o.body.GetJointList(); e != nil; e = e.Next {
		if j, ok := w.joints[e.Joint]; ok {
			attached = append(attached, j)
		}
	}
	for _, j := range attached {
		w.destroyJoint(j)
	}

	delete(w.objects, o.body)
	w.b2.DestroyBody(o.body)
	o.destroyed = true
}
