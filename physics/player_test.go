package physics

import (
	"testing"

	"github.com/automoto/generic-star/mathutil"
)

func TestClassifyNormalSymmetry(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})
	p := w.CreatePlayer(0, 0, 30, 70, DefaultPlayerOptions())
	right, up := p.Basis()

	left, rightWall, ground := classifyNormal(mathutil.Neg(right), right, up)
	if !left || rightWall || ground {
		t.Fatalf("-right: left=%v right=%v ground=%v, want only left", left, rightWall, ground)
	}
	left, rightWall, ground = classifyNormal(right, right, up)
	if left || !rightWall || ground {
		t.Fatalf("+right: left=%v right=%v ground=%v, want only right", left, rightWall, ground)
	}
	left, rightWall, ground = classifyNormal(mathutil.Neg(up), right, up)
	if left || rightWall || !ground {
		t.Fatalf("-up: left=%v right=%v ground=%v, want only ground", left, rightWall, ground)
	}
	// A 20 degree slope still counts as ground but is no wall.
	slope := mathutil.Normalize(mathutil.V(0.36, 1))
	if left, rightWall, ground = classifyNormal(slope, right, up); !ground || left || rightWall {
		t.Fatalf("slope: left=%v right=%v ground=%v, want only ground", left, rightWall, ground)
	}
}

func TestClassifyNormalRotated(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})
	p := w.CreatePlayer(0, 0, 30, 70, DefaultPlayerOptions())
	if err := p.SetAngle(90, false); err != nil {
		t.Fatal(err)
	}
	right, up := p.Basis()
	if !approx(right.X, 0, 1e-9) || !approx(right.Y, -1, 1e-9) {
		t.Fatalf("right at 90 degrees = %+v, want (0, -1)", right)
	}
	if !approx(up.X, -1, 1e-9) || !approx(up.Y, 0, 1e-9) {
		t.Fatalf("up at 90 degrees = %+v, want (-1, 0)", up)
	}

	// A floor beneath the screen is a wall for a player lying on its side.
	_, rightWall, ground := classifyNormal(mathutil.V(0, 1), right, up)
	if ground {
		t.Fatal("screen floor should not be ground for a rotated player")
	}
	if rightWall {
		t.Fatal("screen floor lies to the player's left")
	}
}

func TestJumpReset(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})
	p := w.CreatePlayer(100, 100, 30, 70, DefaultPlayerOptions())

	for i := 0; i < 3; i++ {
		if err := p.Jump(800, 0, false); err != nil {
			t.Fatal(err)
		}
	}
	if p.JumpTime() != 3 {
		t.Fatalf("JumpTime = %d, want 3", p.JumpTime())
	}

	if err := p.Jump(800, 0, true); err != nil {
		t.Fatal(err)
	}
	if p.JumpTime() != 1 {
		t.Fatalf("JumpTime after reset jump = %d, want 1", p.JumpTime())
	}

	// Held jump survives one step, an idle step clears it.
	if err := p.Step(); err != nil {
		t.Fatal(err)
	}
	if p.JumpTime() != 1 {
		t.Fatalf("JumpTime after held step = %d, want 1", p.JumpTime())
	}
	if err := p.Step(); err != nil {
		t.Fatal(err)
	}
	if p.JumpTime() != 0 {
		t.Fatalf("JumpTime after idle step = %d, want 0", p.JumpTime())
	}
}

func TestJumpExtensionCapped(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})
	opts := DefaultPlayerOptions()
	opts.JumpTime = 4
	p := w.CreatePlayer(100, 100, 30, 70, opts)

	for i := 0; i < 10; i++ {
		if err := p.Jump(800, 0, false); err != nil {
			t.Fatal(err)
		}
	}
	if p.JumpTime() != opts.JumpTime+1 {
		t.Fatalf("JumpTime = %d, want it to stop at %d", p.JumpTime(), opts.JumpTime+1)
	}
}

func TestFreshJumpKeepsHorizontalVelocity(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})
	p := w.CreatePlayer(100, 100, 30, 70, DefaultPlayerOptions())
	if err := p.SetVelocity(120, 250); err != nil {
		t.Fatal(err)
	}
	if err := p.Jump(0, 0, true); err != nil {
		t.Fatal(err)
	}
	v := p.Velocity()
	if !approx(v.X, 120, 1e-6) || !approx(v.Y, 0, 1e-6) {
		t.Fatalf("Velocity after fresh jump = %+v, want (120, 0)", v)
	}
}

func TestUnstickReversal(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})
	opts := DefaultPlayerOptions()
	opts.WallStick = 3
	p := w.CreatePlayer(100, 100, 30, 70, opts)

	for i := 0; i < 2; i++ {
		if err := p.Walk(200, true); err != nil {
			t.Fatal(err)
		}
		if err := p.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if p.WallUnstick() != 2 {
		t.Fatalf("WallUnstick = %d, want 2", p.WallUnstick())
	}

	if err := p.Walk(-200, true); err != nil {
		t.Fatal(err)
	}
	if err := p.Step(); err != nil {
		t.Fatal(err)
	}
	if p.WallUnstick() != -1 {
		t.Fatalf("WallUnstick after reversal = %d, want -1", p.WallUnstick())
	}

	// No input leaves the accumulator alone.
	if err := p.Walk(0, true); err != nil {
		t.Fatal(err)
	}
	if err := p.Step(); err != nil {
		t.Fatal(err)
	}
	if p.WallUnstick() != -1 {
		t.Fatalf("WallUnstick after idle step = %d, want -1", p.WallUnstick())
	}
}

func TestSpeedCapIdempotent(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})
	opts := DefaultPlayerOptions()
	opts.MaxSpeed = mathutil.V(100, 150)
	p := w.CreatePlayer(100, 100, 30, 70, opts)

	tests := []struct {
		name   string
		vx, vy float64
		wantX  float64
		wantY  float64
	}{
		{"fast right", 500, 0, 100, 0},
		{"fast left", -500, 0, -100, 0},
		{"falling", 0, 400, 0, 150},
		{"rising", 0, -400, 0, -150},
		{"diagonal", 300, 300, 100, 150},
		{"under the cap", 40, -20, 40, -20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.SetVelocity(tt.vx, tt.vy); err != nil {
				t.Fatal(err)
			}
			if err := p.Step(); err != nil {
				t.Fatal(err)
			}
			first := p.Velocity()
			if !approx(first.X, tt.wantX, 1e-6) || !approx(first.Y, tt.wantY, 1e-6) {
				t.Fatalf("capped velocity = %+v, want (%v, %v)", first, tt.wantX, tt.wantY)
			}
			if err := p.Step(); err != nil {
				t.Fatal(err)
			}
			second := p.Velocity()
			if !approx(first.X, second.X, 1e-9) || !approx(first.Y, second.Y, 1e-9) {
				t.Fatalf("second step changed velocity from %+v to %+v", first, second)
			}
		})
	}
}

func TestWalkOverwritesRightComponent(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})
	p := w.CreatePlayer(100, 100, 30, 70, DefaultPlayerOptions())
	if err := p.SetVelocity(-50, 80); err != nil {
		t.Fatal(err)
	}
	if err := p.Walk(200, true); err != nil {
		t.Fatal(err)
	}
	v := p.Velocity()
	if !approx(v.X, 200, 1e-6) || !approx(v.Y, 80, 1e-6) {
		t.Fatalf("Velocity after walk = %+v, want (200, 80)", v)
	}
}

func TestAirTravelFactor(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})
	opts := DefaultPlayerOptions()
	opts.AirTravelFactor = 0.5
	p := w.CreatePlayer(100, 100, 30, 70, opts)
	if err := p.Walk(-200, true); err != nil {
		t.Fatal(err)
	}
	if v := p.Velocity(); !approx(v.X, -100, 1e-6) {
		t.Fatalf("airborne walk speed = %v, want -100", v.X)
	}
}

// floorScene builds the reference scene: a static floor along y=380 and a
// 30x70 player dropped from (200, 100).
func floorScene() (*World, *Player) {
	w := NewWorld(mathutil.V(0, 500))
	w.CreateBox(0, 380, 640, 100, DefaultBodyOptions())
	return w, w.CreatePlayer(200, 100, 30, 70, DefaultPlayerOptions())
}

func TestPlayerSettlesOnFloor(t *testing.T) {
	w, p := floorScene()

	for i := 0; i < 300; i++ {
		if err := p.Step(); err != nil {
			t.Fatal(err)
		}
		w.StepSimulation()
	}
	if err := p.Step(); err != nil {
		t.Fatal(err)
	}

	top := p.DrawY() - p.DrawCenterY()
	if !approx(top, 380-p.Height(), 3) {
		t.Fatalf("player top = %v, want about %v", top, 380-p.Height())
	}
	if !p.IsOnGround() {
		t.Fatal("player resting on the floor should be on the ground")
	}
	if p.IsWallToLeft() || p.IsWallToRight() {
		t.Fatal("floor contact should not be classified as a wall")
	}
}

func TestWallMagnetism(t *testing.T) {
	w := NewWorld(mathutil.V(0, 500))
	w.CreateBox(100, 0, 100, 400, DefaultBodyOptions())
	opts := DefaultPlayerOptions()
	opts.WallReduce = 0.25
	p := w.CreatePlayer(200, 100, 30, 70, opts)

	w.StepSimulation()
	if err := p.SetVelocity(0, 400); err != nil {
		t.Fatal(err)
	}
	if err := p.Step(); err != nil {
		t.Fatal(err)
	}

	if !p.IsWallToLeft() || p.IsWallToRight() {
		t.Fatalf("wallToLeft=%v wallToRight=%v, want a wall on the left only", p.IsWallToLeft(), p.IsWallToRight())
	}
	if p.IsOnGround() {
		t.Fatal("player beside a wall in mid-air is not on the ground")
	}
	if p.body.M_force.X >= 0 {
		t.Fatalf("force = %+v, want a pull toward the left wall", p.body.M_force)
	}
	if v := p.Velocity(); !approx(v.Y, 150, 1e-6) {
		t.Fatalf("wall slide speed = %v, want 600*0.25", v.Y)
	}
}

func TestWallMagnetismDisabled(t *testing.T) {
	w := NewWorld(mathutil.V(0, 500))
	w.CreateBox(100, 0, 100, 400, DefaultBodyOptions())
	opts := DefaultPlayerOptions()
	opts.WallAlign = false
	p := w.CreatePlayer(200, 100, 30, 70, opts)

	w.StepSimulation()
	if err := p.Step(); err != nil {
		t.Fatal(err)
	}
	if !p.IsWallToLeft() {
		t.Fatal("wall should still be detected without magnetism")
	}
	if p.body.M_force.X != 0 || p.body.M_force.Y != 0 {
		t.Fatalf("force = %+v, want none", p.body.M_force)
	}
}

func TestNoMagnetismOnGround(t *testing.T) {
	w := NewWorld(mathutil.V(0, 500))
	w.CreateBox(0, 380, 640, 100, DefaultBodyOptions())
	w.CreateBox(100, 0, 100, 380, DefaultBodyOptions())
	p := w.CreatePlayer(200, 310, 30, 70, DefaultPlayerOptions())

	for i := 0; i < 5; i++ {
		w.StepSimulation()
		if err := p.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if !p.IsOnGround() || !p.IsWallToLeft() {
		t.Fatalf("onGround=%v wallToLeft=%v, want both", p.IsOnGround(), p.IsWallToLeft())
	}
	if p.body.M_force.X != 0 {
		t.Fatalf("force = %+v, want no wall pull while grounded", p.body.M_force)
	}
}

func TestWallMagnetismRightWall(t *testing.T) {
	w := NewWorld(mathutil.V(0, 500))
	w.CreateBox(230, 0, 100, 400, DefaultBodyOptions())
	p := w.CreatePlayer(200, 100, 30, 70, DefaultPlayerOptions())

	w.StepSimulation()
	if err := p.Step(); err != nil {
		t.Fatal(err)
	}
	if !p.IsWallToRight() || p.IsOnGround() {
		t.Fatalf("wallToRight=%v onGround=%v, want a wall on the right in mid-air", p.IsWallToRight(), p.IsOnGround())
	}
	if p.body.M_force.X <= 0 {
		t.Fatalf("force = %+v, want a pull toward the right wall", p.body.M_force)
	}
}

func TestWallMagnetismUntilLanding(t *testing.T) {
	w := NewWorld(mathutil.V(0, 500))
	w.CreateBox(0, 380, 640, 100, DefaultBodyOptions())
	w.CreateBox(100, 0, 100, 380, DefaultBodyOptions())
	p := w.CreatePlayer(200, 100, 30, 70, DefaultPlayerOptions())

	w.StepSimulation()
	if err := p.Step(); err != nil {
		t.Fatal(err)
	}
	if !p.IsWallToLeft() || p.IsOnGround() {
		t.Fatalf("wallToLeft=%v onGround=%v, want a wall on the left in mid-air", p.IsWallToLeft(), p.IsOnGround())
	}
	if p.body.M_force.X >= 0 {
		t.Fatalf("force = %+v, want a pull toward the wall before landing", p.body.M_force)
	}

	for i := 0; i < 120 && !p.IsOnGround(); i++ {
		w.StepSimulation()
		if err := p.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if !p.IsOnGround() {
		t.Fatalf("player never landed, at %v", p.Position())
	}
	if p.body.M_force.X != 0 {
		t.Fatalf("force = %+v, want no wall pull once grounded", p.body.M_force)
	}
}

func TestWallStickThreshold(t *testing.T) {
	w := NewWorld(mathutil.Vec2{})
	w.CreateBox(100, 0, 100, 400, DefaultBodyOptions())
	opts := DefaultPlayerOptions()
	opts.WallStick = 2
	p := w.CreatePlayer(200, 100, 30, 70, opts)

	step := func() {
		t.Helper()
		w.StepSimulation()
		if err := p.Step(); err != nil {
			t.Fatal(err)
		}
	}
	walk := func() {
		t.Helper()
		if err := p.Walk(200, true); err != nil {
			t.Fatal(err)
		}
	}

	step()
	walk()
	step()
	walk()
	step()
	if p.WallUnstick() != 2 {
		t.Fatalf("WallUnstick = %d, want 2", p.WallUnstick())
	}

	// At the threshold the wall still holds the player.
	step()
	if !p.IsWallToLeft() {
		t.Fatal("expected the wall on the left")
	}
	if p.body.M_force.X >= 0 {
		t.Fatalf("force = %+v, want a pull at the threshold", p.body.M_force)
	}
	walk()
	if v := p.Velocity(); approx(v.X, 200, 1e-6) {
		t.Fatal("walk should not move a player held at the threshold")
	}

	// One more walk away passes it.
	step()
	if p.WallUnstick() != 3 {
		t.Fatalf("WallUnstick = %d, want 3", p.WallUnstick())
	}
	step()
	if !p.IsWallToLeft() {
		t.Fatal("expected the wall on the left")
	}
	if p.body.M_force.X != 0 {
		t.Fatalf("force = %+v, want no pull past the threshold", p.body.M_force)
	}
	walk()
	if v := p.Velocity(); !approx(v.X, 200, 1e-6) {
		t.Fatalf("Velocity.X = %v, want 200 once past the threshold", v.X)
	}
}

func TestWallStickBlocksWalkingAway(t *testing.T) {
	w := NewWorld(mathutil.V(0, 500))
	w.CreateBox(100, 0, 100, 400, DefaultBodyOptions())
	opts := DefaultPlayerOptions()
	opts.WallStick = 2
	p := w.CreatePlayer(200, 100, 30, 70, opts)

	w.StepSimulation()
	if err := p.Step(); err != nil {
		t.Fatal(err)
	}
	if !p.IsWallToLeft() {
		t.Fatal("expected the wall on the left")
	}

	// The first walks away are absorbed by the stick threshold.
	if err := p.Walk(200, true); err != nil {
		t.Fatal(err)
	}
	if v := p.Velocity(); approx(v.X, 200, 1e-6) {
		t.Fatal("walk should not move a player still stuck to the wall")
	}

	for i := 0; i < 3; i++ {
		if err := p.Walk(200, true); err != nil {
			t.Fatal(err)
		}
		if err := p.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if p.WallUnstick() <= opts.WallStick {
		t.Fatalf("WallUnstick = %d, want above %d", p.WallUnstick(), opts.WallStick)
	}
	if err := p.Walk(200, true); err != nil {
		t.Fatal(err)
	}
	if v := p.Velocity(); !approx(v.X, 200, 1e-6) {
		t.Fatalf("Velocity.X = %v, want 200 once unstuck", v.X)
	}
}
