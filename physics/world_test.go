package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/generic-star/mathutil"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestScaleRoundTrip(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})

	box := w.CreateBox(10, 20, 37.5, 12, DefaultBodyOptions())
	if !approx(box.Width(), 37.5, 1e-9) || !approx(box.Height(), 12, 1e-9) {
		t.Fatalf("box size = %vx%v, want 37.5x12", box.Width(), box.Height())
	}
	if !approx(box.DrawX(), 10+37.5/2, 1e-9) || !approx(box.DrawY(), 26, 1e-9) {
		t.Fatalf("box origin = (%v, %v), want its center", box.DrawX(), box.DrawY())
	}
	if box.DrawCenterX() != box.Width()/2 || box.DrawCenterY() != box.Height()/2 {
		t.Fatalf("box draw center = (%v, %v)", box.DrawCenterX(), box.DrawCenterY())
	}

	circle := w.CreateCircle(50, 60, 8, DefaultBodyOptions())
	if !approx(circle.Width(), 16, 1e-9) || !approx(circle.Height(), 16, 1e-9) {
		t.Fatalf("circle size = %vx%v, want 16x16", circle.Width(), circle.Height())
	}
	if !approx(circle.DrawX(), 50, 1e-9) || !approx(circle.DrawY(), 60, 1e-9) {
		t.Fatalf("circle origin = (%v, %v), want (50, 60)", circle.DrawX(), circle.DrawY())
	}
	if circle.DrawCenterX() != 0 || circle.DrawCenterY() != 0 {
		t.Fatal("circles are not boxes and have a zero draw center")
	}

	p := w.CreatePlayer(0, 0, 30, 70, DefaultPlayerOptions())
	if !approx(p.Width(), 30, 1e-9) || !approx(p.Height(), 70, 1e-9) {
		t.Fatalf("player size = %vx%v, want 30x70", p.Width(), p.Height())
	}
}

func TestCreatePolygon(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})

	triangles := [][]mathutil.Vec2{
		{mathutil.V(0, 0), mathutil.V(0, 40), mathutil.V(30, 0)}, // clockwise in y-up
		{mathutil.V(30, 0), mathutil.V(0, 40), mathutil.V(30, 40)},
		{mathutil.V(0, 0), mathutil.V(1, 1)}, // malformed
	}
	o, err := w.CreatePolygon(100, 100, triangles, DefaultBodyOptions())
	if err != nil {
		t.Fatalf("CreatePolygon: %v", err)
	}
	if !approx(o.Width(), 30, 1e-9) || !approx(o.Height(), 40, 1e-9) {
		t.Fatalf("polygon size = %vx%v, want 30x40", o.Width(), o.Height())
	}
	if o.DrawCenterX() != 0 {
		t.Fatal("polygons are not boxes")
	}
	if w.BodyCount() != 1 {
		t.Fatalf("BodyCount = %d, want 1", w.BodyCount())
	}
}

func TestCreatePolygonSizeCountsSkippedTriangles(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})

	triangles := [][]mathutil.Vec2{
		{mathutil.V(0, 0), mathutil.V(0, 40), mathutil.V(30, 0)},
		{mathutil.V(0, 0), mathutil.V(50, 50), mathutil.V(100, 100)}, // no area
		{mathutil.V(-20, 0), mathutil.V(0, 60)},                      // malformed
	}
	o, err := w.CreatePolygon(0, 0, triangles, DefaultBodyOptions())
	if err != nil {
		t.Fatalf("CreatePolygon: %v", err)
	}
	if !approx(o.Width(), 120, 1e-9) || !approx(o.Height(), 100, 1e-9) {
		t.Fatalf("polygon size = %vx%v, want 120x100", o.Width(), o.Height())
	}
}

func TestCreatePolygonWithoutTriangles(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})

	_, err := w.CreatePolygon(0, 0, [][]mathutil.Vec2{
		{mathutil.V(0, 0)},
		{mathutil.V(0, 0), mathutil.V(5, 5), mathutil.V(10, 10)},
	}, DefaultBodyOptions())
	if !errors.Is(err, ErrNoGeometry) {
		t.Fatalf("err = %v, want ErrNoGeometry", err)
	}
	if w.BodyCount() != 0 {
		t.Fatalf("BodyCount = %d, want no body left behind", w.BodyCount())
	}
}

func TestPlayerWidthClamped(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})
	opts := DefaultPlayerOptions()
	opts.WallReduce = 3

	p := w.CreatePlayer(0, 0, 90, 60, opts)
	if !approx(p.Width(), 60, 1e-9) {
		t.Fatalf("Width = %v, want clamped to height 60", p.Width())
	}
	if p.wallReduce != 1 {
		t.Fatalf("wallReduce = %v, want clamped to 1", p.wallReduce)
	}
	if !approx(p.DrawCenterY(), 30-15, 1e-9) {
		t.Fatalf("DrawCenterY = %v, want 15", p.DrawCenterY())
	}
}

func TestAngle(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})
	o := w.CreateBox(0, 0, 10, 10, DefaultBodyOptions())

	if o.Angle() != 0 {
		t.Fatalf("initial Angle = %v, want 0", o.Angle())
	}
	if err := o.SetAngle(90, false); err != nil {
		t.Fatal(err)
	}
	if !approx(o.Angle(), 90, 1e-9) {
		t.Fatalf("Angle = %v, want 90", o.Angle())
	}
	if err := o.SetAngle(45, true); err != nil {
		t.Fatal(err)
	}
	if !approx(o.Angle(), 135, 1e-9) {
		t.Fatalf("Angle after relative turn = %v, want 135", o.Angle())
	}
}

func TestDirectionalForceConvention(t *testing.T) {
	f := directional(10, 90)
	if !approx(f.X, 0, 1e-9) || !approx(f.Y, -10, 1e-9) {
		t.Fatalf("directional(10, 90) = %+v, want (0, -10)", f)
	}
	f = directional(10, 0)
	if !approx(f.X, 10, 1e-9) || !approx(f.Y, 0, 1e-9) {
		t.Fatalf("directional(10, 0) = %+v, want (10, 0)", f)
	}
}

func TestSetPositionAndVelocity(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})
	o := w.CreateBox(0, 0, 10, 10, BodyOptions{Free: true, Solid: true, Density: 1})

	if err := o.SetPosition(100, 50, false); err != nil {
		t.Fatal(err)
	}
	if err := o.SetPosition(5, 5, true); err != nil {
		t.Fatal(err)
	}
	if !approx(o.DrawX(), 105, 1e-9) || !approx(o.DrawY(), 55, 1e-9) {
		t.Fatalf("position = (%v, %v), want (105, 55)", o.DrawX(), o.DrawY())
	}

	if err := o.SetVelocity(30, -60); err != nil {
		t.Fatal(err)
	}
	v := o.Velocity()
	if !approx(v.X, 30, 1e-9) || !approx(v.Y, -60, 1e-9) {
		t.Fatalf("Velocity = %+v, want (30, -60)", v)
	}
}

func TestDestroyedHandle(t *testing.T) {
	w := NewWorld(mathutil.V(0, 500))
	o := w.CreateBox(0, 0, 10, 10, BodyOptions{Free: true, Solid: true, Density: 1})

	if err := o.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if o.Valid() {
		t.Fatal("handle still valid after Destroy")
	}
	if err := o.SetVelocity(1, 1); !errors.Is(err, ErrDestroyed) {
		t.Fatalf("SetVelocity err = %v, want ErrDestroyed", err)
	}
	if err := o.ApplyForce(1, 1); !errors.Is(err, ErrDestroyed) {
		t.Fatalf("ApplyForce err = %v, want ErrDestroyed", err)
	}
	if err := o.Destroy(); !errors.Is(err, ErrDestroyed) {
		t.Fatalf("second Destroy err = %v, want ErrDestroyed", err)
	}
	if o.DrawX() != 0 || o.Width() != 0 || o.Mass() != 0 {
		t.Fatal("queries on a destroyed handle should return zero values")
	}
	if w.BodyCount() != 0 {
		t.Fatalf("BodyCount = %d, want 0", w.BodyCount())
	}

	// Stepping after a destroy must not touch the freed body.
	w.StepSimulation()
}

func TestWorldDestroy(t *testing.T) {
	w := NewWorld(mathutil.V(0, 500))
	a := w.CreateBox(0, 0, 10, 10, BodyOptions{Free: true, Solid: true, Density: 1})
	b := w.CreateBox(20, 0, 10, 10, BodyOptions{Free: true, Solid: true, Density: 1})
	j, err := w.PinDistanceJoint(a, b, 20, DefaultDistanceJointOptions())
	if err != nil {
		t.Fatal(err)
	}

	w.Destroy()
	if a.Valid() || b.Valid() || j.Valid() {
		t.Fatal("handles should be invalid after World.Destroy")
	}
	if w.BodyCount() != 0 || w.JointCount() != 0 {
		t.Fatalf("counts = %d bodies, %d joints; want 0, 0", w.BodyCount(), w.JointCount())
	}
}

func TestUsingGravity(t *testing.T) {
	if NewWorld(mathutil.Vec2{}).UsingGravity() {
		t.Fatal("zero gravity world reports gravity")
	}
	w := NewWorld(mathutil.V(0, 500))
	if !w.UsingGravity() {
		t.Fatal("world with gravity reports none")
	}
	w.SetGravity(mathutil.Vec2{})
	if w.UsingGravity() {
		t.Fatal("SetGravity(0) should turn gravity off")
	}
}
