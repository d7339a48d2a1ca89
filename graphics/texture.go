package graphics

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a loaded image. Tileable textures may be drawn with
// DrawSpriteTiled.
type Texture struct {
	Image    *ebiten.Image
	Path     string
	Tileable bool
}

func (t *Texture) Width() int {
	if t == nil || t.Image == nil {
		return 0
	}
	return t.Image.Bounds().Dx()
}

func (t *Texture) Height() int {
	if t == nil || t.Image == nil {
		return 0
	}
	return t.Image.Bounds().Dy()
}

// FrameRect returns the source rectangle of frame (fx, fy) in a sheet of
// cols by rows equally sized frames. Frame indices are clamped to the sheet.
func FrameRect(imgW, imgH, fx, fy, cols, rows int) image.Rectangle {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	fx = min(max(fx, 0), cols-1)
	fy = min(max(fy, 0), rows-1)

	fw := imgW / cols
	fh := imgH / rows
	return image.Rect(fx*fw, fy*fh, (fx+1)*fw, (fy+1)*fh)
}
