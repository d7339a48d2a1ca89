package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// PhysicsConfig contains the simulation constants shared by every world.
type PhysicsConfig struct {
	// Scale converts draw-space pixels into physics units (1 unit = 30 px).
	Scale float64

	// Fixed step; the simulation advances exactly this much per frame.
	TimeStep           float64
	VelocityIterations int
	PositionIterations int

	// Upper bound on contact edges scanned per player step.
	ContactScanLimit int

	// Gravity applied to free blocks when the world has none (px/s² per unit mass).
	BlockFallbackGravity float64
}

// BodyConfig holds the fixture defaults used by the shape factories.
type BodyConfig struct {
	Friction    float64
	Density     float64
	Restitution float64
}

// PlayerConfig contains player controller defaults and fixture constants.
type PlayerConfig struct {
	// Defaults applied when no option is given
	MaxSpeedX       float64 // px/s
	MaxSpeedY       float64 // px/s
	AirTravelFactor float64
	WallStick       int
	WallAlign       bool
	WallReduce      float64
	JumpTime        int

	// Contact classification tolerances
	MaxWallAngle   float64
	MaxGroundAngle float64

	// Force pulling the player against a touched wall when aligning is on
	WallMagnetism float64

	// Rectangle (upper body) fixture
	BodyFriction    float64
	BodyDensity     float64
	BodyRestitution float64

	// Wheel (feet) fixture
	WheelFriction float64

	AngularDamping float64
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled bool // Log corrected inputs and draw body outlines
}

// UIConfig contains overlay colors and font sizes
type UIConfig struct {
	BackgroundColor color.RGBA
	BlockColor      color.RGBA
	PlayerColor     color.RGBA
	GroundColor     color.RGBA
	WallColor       color.RGBA
	DebugFontSize   float64
}

// CameraConfig controls how the view follows the player
type CameraConfig struct {
	// Fraction of the distance to the target covered each frame
	FollowSmoothing float64
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Body BodyConfig
var Player PlayerConfig
var Debug DebugConfig
var UI UIConfig
var Camera CameraConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
		Title:  "Generic Star",
	}

	Physics = PhysicsConfig{
		Scale:                1.0 / 30.0,
		TimeStep:             1.0 / 30.0,
		VelocityIterations:   1,
		PositionIterations:   1,
		ContactScanLimit:     100,
		BlockFallbackGravity: 500,
	}

	Body = BodyConfig{
		Friction:    0.5,
		Density:     1.0,
		Restitution: 0.3,
	}

	Player = PlayerConfig{
		MaxSpeedX:       600,
		MaxSpeedY:       600,
		AirTravelFactor: 1,
		WallStick:       0,
		WallAlign:       true,
		WallReduce:      1,
		JumpTime:        4,

		MaxWallAngle:   0.1,
		MaxGroundAngle: 0.4,

		WallMagnetism: 10,

		BodyFriction:    0,
		BodyDensity:     0.1,
		BodyRestitution: 0.01,

		WheelFriction: 1,

		AngularDamping: 6,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.2,
	}

	Debug = DebugConfig{
		Enabled: false,
	}

	UI = UIConfig{
		BackgroundColor: color.RGBA{R: 30, G: 30, B: 40, A: 255},
		BlockColor:      Grey,
		PlayerColor:     Red,
		GroundColor:     Green,
		WallColor:       Orange,
		DebugFontSize:   10,
	}
}
