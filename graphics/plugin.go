package graphics

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"path"

	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/tasks"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Plugin loads textures from a file system and draws them.
type Plugin struct {
	fsys  fs.FS
	tasks *tasks.Queue
	cache map[string]*Texture
}

func NewPlugin(fsys fs.FS, q *tasks.Queue) *Plugin {
	return &Plugin{
		fsys:  fsys,
		tasks: q,
		cache: make(map[string]*Texture),
	}
}

// LoadImage decodes p in the background and passes the texture to onLoaded
// on the frame thread. Failures are logged and onLoaded is not called.
func (p *Plugin) LoadImage(imgPath string, onLoaded func(*Texture), tileable bool) {
	imgPath = path.Clean(imgPath)
	if tex, ok := p.cache[imgPath]; ok {
		if tileable && !tex.Tileable {
			tex.Tileable = true
		}
		if onLoaded != nil {
			onLoaded(tex)
		}
		return
	}

	p.tasks.Go("image:"+imgPath, func() (any, error) {
		raw, err := fs.ReadFile(p.fsys, imgPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read image %s: %w", imgPath, err)
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image %s: %w", imgPath, err)
		}
		return img, nil
	}, func(v any, err error) {
		if err != nil {
			log.Printf("Graphics: %v", err)
			return
		}
		tex, ok := p.cache[imgPath]
		if !ok {
			tex = &Texture{Image: ebiten.NewImageFromImage(v.(image.Image)), Path: imgPath}
			p.cache[imgPath] = tex
			if cfg.Debug.Enabled {
				log.Printf("Graphics: loaded %s (%dx%d)", imgPath, tex.Width(), tex.Height())
			}
		}
		if tileable {
			tex.Tileable = true
		}
		if onLoaded != nil {
			onLoaded(tex)
		}
	})
}
