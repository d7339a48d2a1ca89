package graphics

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/mathutil"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteOptions control how DrawSprite places a texture. Width and Height
// default to the frame size. Rotation is in degrees; positive values turn
// counter-clockwise on screen, matching physics angles. CenterX and CenterY
// locate the pivot inside the sprite. FlipX mirrors the frame inside its
// quad before rotation.
type SpriteOptions struct {
	Width, Height    float64
	Rotation         float64
	CenterX, CenterY float64
	FrameX, FrameY   int
	FrameCols        int
	FrameRows        int
	FlipX            bool
}

// spriteGeoM maps a srcW by srcH image onto a w by h quad pivoting around
// (cx, cy) and placed at (x, y).
func spriteGeoM(srcW, srcH, x, y, w, h, rot, cx, cy float64) ebiten.GeoM {
	var g ebiten.GeoM
	if srcW > 0 && srcH > 0 {
		g.Scale(w/srcW, h/srcH)
	}
	g.Translate(-cx, -cy)
	g.Rotate(-mathutil.DegToRad(rot))
	g.Translate(x, y)
	return g
}

// DrawSprite draws one frame of tex at x, y. A nil texture draws nothing.
func DrawSprite(dst *ebiten.Image, tex *Texture, x, y float64, o SpriteOptions) {
	if dst == nil || tex == nil || tex.Image == nil {
		return
	}
	b := tex.Image.Bounds()
	src := FrameRect(b.Dx(), b.Dy(), o.FrameX, o.FrameY, o.FrameCols, o.FrameRows).Add(b.Min)
	frame := tex.Image.SubImage(src).(*ebiten.Image)

	fw, fh := float64(src.Dx()), float64(src.Dy())
	w, h := o.Width, o.Height
	if w == 0 {
		w = fw
	}
	if h == 0 {
		h = fh
	}

	op := &ebiten.DrawImageOptions{}
	if o.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(fw, 0)
	}
	op.GeoM.Concat(spriteGeoM(fw, fh, x, y, w, h, o.Rotation, o.CenterX, o.CenterY))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(frame, op)
}

// DrawSpriteTiled fills a w by h quad with tex repeated rx times across and
// ry times down. Textures not loaded as tileable are still drawn.
func DrawSpriteTiled(dst *ebiten.Image, tex *Texture, x, y, w, h, rot, cx, cy, rx, ry float64) {
	if dst == nil || tex == nil || tex.Image == nil {
		return
	}
	if !tex.Tileable && cfg.Debug.Enabled {
		log.Printf("Graphics: cannot tile %s, it was not loaded as tileable", tex.Path)
	}
	if rx <= 0 {
		rx = 1
	}
	if ry <= 0 {
		ry = 1
	}

	b := tex.Image.Bounds()
	sw, sh := float32(b.Dx()), float32(b.Dy())
	g := spriteGeoM(1, 1, x, y, 1, 1, rot, cx, cy)

	corner := func(px, py float64, u, v float32) ebiten.Vertex {
		dx, dy := g.Apply(px, py)
		return ebiten.Vertex{
			DstX: float32(dx), DstY: float32(dy),
			SrcX: float32(b.Min.X) + u*sw, SrcY: float32(b.Min.Y) + v*sh,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}
	u, v := float32(rx), float32(ry)
	verts := []ebiten.Vertex{
		corner(0, 0, 0, 0),
		corner(w, 0, u, 0),
		corner(w, h, u, v),
		corner(0, h, 0, v),
	}
	indices := []uint16{0, 1, 2, 0, 2, 3}

	op := &ebiten.DrawTrianglesOptions{}
	op.Address = ebiten.AddressClampToZero
	if tex.Tileable {
		op.Address = ebiten.AddressRepeat
	}
	op.Filter = ebiten.FilterLinear
	dst.DrawTriangles(verts, indices, tex.Image, op)
}

var (
	pixelOnce sync.Once
	pixel     *ebiten.Image
)

func whitePixel() *ebiten.Image {
	pixelOnce.Do(func() {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	})
	return pixel
}

// FillRect draws a solid w by h rectangle rotated about (cx, cy).
func FillRect(dst *ebiten.Image, x, y, w, h, rot, cx, cy float64, c color.Color) {
	if dst == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(1, 1, x, y, w, h, rot, cx, cy)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(whitePixel(), op)
}

// Drawable is anything with a draw-space position, size, angle and pivot.
// Physics objects and players satisfy it.
type Drawable interface {
	DrawX() float64
	DrawY() float64
	Width() float64
	Height() float64
	Angle() float64
	DrawCenterX() float64
	DrawCenterY() float64
}

// ObjectOptions returns the sprite options that lay a whole texture over d.
func ObjectOptions(d Drawable) SpriteOptions {
	return SpriteOptions{
		Width:    d.Width(),
		Height:   d.Height(),
		Rotation: d.Angle(),
		CenterX:  d.DrawCenterX(),
		CenterY:  d.DrawCenterY(),
	}
}

// DrawObject draws tex over d, shifted by the camera offset.
func DrawObject(dst *ebiten.Image, tex *Texture, d Drawable, offset mathutil.Vec2, flip bool) {
	o := ObjectOptions(d)
	o.FlipX = flip
	DrawSprite(dst, tex, d.DrawX()-offset.X, d.DrawY()-offset.Y, o)
}

// RotatedCorners returns the four screen corners of a w by h quad at x, y
// rotated about (cx, cy).
func RotatedCorners(x, y, w, h, rot, cx, cy float64) [4]mathutil.Vec2 {
	g := spriteGeoM(1, 1, x, y, 1, 1, rot, cx, cy)
	var out [4]mathutil.Vec2
	for i, p := range [4][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}} {
		px, py := g.Apply(p[0], p[1])
		out[i] = mathutil.V(px, py)
	}
	return out
}
