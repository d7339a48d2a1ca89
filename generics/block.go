package generics

import (
	"image/color"

	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/graphics"
	"github.com/automoto/generic-star/mathutil"
	"github.com/hajimehoshi/ebiten/v2"
)

const KindNameBlock = "Block"

// Block is a rectangular body. X and Y locate its center.
type Block struct {
	Sprite   *Resource `json:"spr"`
	X        int       `json:"x" jsonschema:"minimum=0"`
	Y        int       `json:"y" jsonschema:"minimum=0"`
	Rotation int       `json:"rotation" jsonschema:"minimum=0,maximum=360"`
	Width    int       `json:"width" jsonschema:"minimum=10,maximum=2000"`
	Height   int       `json:"height" jsonschema:"minimum=10,maximum=2000"`
	Free     bool      `json:"free"`
}

var blockFields = []Field{
	{Key: "spr", Label: "Sprite", Kind: KindSprite},
	{Key: "x", Label: "X", Kind: KindInt, Min: 0, Max: unbounded, Default: 0},
	{Key: "y", Label: "Y", Kind: KindInt, Min: 0, Max: unbounded, Default: 0},
	{Key: "rotation", Label: "Rotation", Kind: KindInt, Min: 0, Max: 360, Default: 0},
	{Key: "width", Label: "Width", Kind: KindInt, Min: 10, Max: 2000, Default: 50},
	{Key: "height", Label: "Height", Kind: KindInt, Min: 10, Max: 2000, Default: 50},
	{Key: "free", Label: "Free", Kind: KindCheckbox, Default: false},
}

func NewBlock() *Block {
	return &Block{Width: 50, Height: 50}
}

func (b *Block) Kind() string {
	return KindNameBlock
}

func (b *Block) DescribeFields() []Field {
	return blockFields
}

func (b *Block) Bounds() Bounds {
	return Bounds{
		X:        float64(b.X),
		Y:        float64(b.Y),
		Width:    float64(b.Width),
		Height:   float64(b.Height),
		Rotation: float64(b.Rotation),
	}
}

func (b *Block) Draw(dst *ebiten.Image, offset mathutil.Vec2) {
	drawPlaceholder(dst, b.Bounds(), offset, cfg.UI.BlockColor)
}

func (b *Block) UpdatePointers(kind FieldKind, ev ResourceEvent) bool {
	if kind != KindSprite {
		return false
	}
	return updatePointer(&b.Sprite, ev)
}

func drawPlaceholder(dst *ebiten.Image, bd Bounds, offset mathutil.Vec2, c color.Color) {
	graphics.FillRect(dst, bd.X-offset.X, bd.Y-offset.Y, bd.Width, bd.Height, bd.Rotation, bd.Width/2, bd.Height/2, c)
}
