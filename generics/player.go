package generics

import (
	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/mathutil"
	"github.com/hajimehoshi/ebiten/v2"
)

const KindNamePlayer = "Player"

// Player is a controllable character. X and Y locate its center. Speeds are
// in pixels per second; JumpForce is the upward push per held frame and
// JumpLength the number of frames a held jump keeps pushing.
type Player struct {
	CtrlLeft  string `json:"ctrlLeft"`
	CtrlRight string `json:"ctrlRight"`
	CtrlUp    string `json:"ctrlUp"`
	CtrlRun   string `json:"ctrlRun"`

	X int `json:"x" jsonschema:"minimum=0"`
	Y int `json:"y" jsonschema:"minimum=0"`

	SprRight *Resource `json:"sprRight"`
	SprRWalk *Resource `json:"sprRWalk"`
	SprRJump *Resource `json:"sprRJump"`
	SndJump  *Resource `json:"sndJump"`

	Width  int `json:"width" jsonschema:"minimum=10,maximum=400"`
	Height int `json:"height" jsonschema:"minimum=10,maximum=400"`

	WalkSpeed       float64 `json:"walkSpeed" jsonschema:"minimum=50,maximum=400"`
	RunSpeed        float64 `json:"runSpeed" jsonschema:"minimum=50,maximum=800"`
	AirTravelFactor float64 `json:"airTravelFactor" jsonschema:"minimum=0,maximum=2"`
	JumpLength      int     `json:"jumpLength" jsonschema:"minimum=2,maximum=8"`
	JumpForce       float64 `json:"jumpForce" jsonschema:"minimum=600,maximum=1400"`

	WallJump   bool    `json:"wallJump"`
	WallStick  int     `json:"wallStick" jsonschema:"minimum=0,maximum=10"`
	WallReduce float64 `json:"wallReduce" jsonschema:"exclusiveMinimum=true,minimum=0,maximum=1"`
}

var playerFields = []Field{
	{Key: "ctrlLeft", Label: "Key Move Left", Kind: KindKeyboard, Default: "left"},
	{Key: "ctrlRight", Label: "Key Move Right", Kind: KindKeyboard, Default: "right"},
	{Key: "ctrlUp", Label: "Key Jump", Kind: KindKeyboard, Default: "up"},
	{Key: "ctrlRun", Label: "Key Run", Kind: KindKeyboard, Default: "z"},

	{Key: "x", Label: "X", Kind: KindInt, Min: 0, Max: unbounded, Default: 0},
	{Key: "y", Label: "Y", Kind: KindInt, Min: 0, Max: unbounded, Default: 0},

	{Key: "sprRight", Label: "Image (Facing Right)", Kind: KindSprite},
	{Key: "sprRWalk", Label: "Image (Walking Right)", Kind: KindSprite},
	{Key: "sprRJump", Label: "Image (Jumping Right)", Kind: KindSprite},
	{Key: "sndJump", Label: "Jump Sound", Kind: KindSound},

	{Key: "width", Label: "Width", Kind: KindPlayerWidth, Min: 10, Max: 400, Default: 30},
	{Key: "height", Label: "Height", Kind: KindPlayerHeight, Min: 10, Max: 400, Default: 70},

	{Key: "walkSpeed", Label: "Walking Speed", Kind: KindFloat, Min: 50, Max: 400, Default: 200.0},
	{Key: "runSpeed", Label: "Running Speed", Kind: KindFloat, Min: 50, Max: 800, Default: 300.0},
	{Key: "airTravelFactor", Label: "Air Speed Reduction", Kind: KindFloat, Min: 0, Max: 2, Default: 1.0},
	{Key: "jumpLength", Label: "Jump Length", Kind: KindInt, Min: 2, Max: 8, Default: 4},
	{Key: "jumpForce", Label: "Jump Speed", Kind: KindFloat, Min: 600, Max: 1400, Default: 800.0},

	{Key: "wallJump", Label: "Wall Jump", Kind: KindCheckbox, Default: true},
	{Key: "wallStick", Label: "Sticky Walls", Kind: KindInt, Min: 0, Max: 10, Default: 1},
	{Key: "wallReduce", Label: "Wall Slide Slowdown", Kind: KindFloat, Min: 0.01, Max: 1, Default: 1.0},
}

func NewPlayer() *Player {
	return &Player{
		CtrlLeft:        "left",
		CtrlRight:       "right",
		CtrlUp:          "up",
		CtrlRun:         "z",
		Width:           30,
		Height:          70,
		WalkSpeed:       200,
		RunSpeed:        300,
		AirTravelFactor: 1,
		JumpLength:      4,
		JumpForce:       800,
		WallJump:        true,
		WallStick:       1,
		WallReduce:      1,
	}
}

func (p *Player) Kind() string {
	return KindNamePlayer
}

func (p *Player) DescribeFields() []Field {
	return playerFields
}

func (p *Player) Bounds() Bounds {
	return Bounds{X: float64(p.X), Y: float64(p.Y), Width: float64(p.Width), Height: float64(p.Height)}
}

func (p *Player) Draw(dst *ebiten.Image, offset mathutil.Vec2) {
	drawPlaceholder(dst, p.Bounds(), offset, cfg.UI.PlayerColor)
}

func (p *Player) UpdatePointers(kind FieldKind, ev ResourceEvent) bool {
	changed := false
	switch kind {
	case KindSprite:
		for _, r := range []**Resource{&p.SprRight, &p.SprRWalk, &p.SprRJump} {
			changed = updatePointer(r, ev) || changed
		}
	case KindSound:
		changed = updatePointer(&p.SndJump, ev)
	}
	return changed
}

func (p *Player) validate() error {
	if p.Width > p.Height {
		return &FieldError{Kind: KindNamePlayer, Key: "width", Reason: "must not exceed height"}
	}
	return nil
}
