package rooms

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io/fs"
	"log"
	"math"
	"strconv"

	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/generics"
	"github.com/automoto/generic-star/mathutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// ImportTMX builds a room from a Tiled map. Objects in groups named after a
// generic kind ("Block", "Player") become instances, and custom properties
// named after a field override it. Tiled rotates objects clockwise about
// their top-left corner; that becomes a center and a counter-clockwise
// rotation.
func ImportTMX(fsys fs.FS, p string) (*Room, error) {
	m, err := tiled.LoadFile(p, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load map %s: %w", p, err)
	}

	room := New(nameOf(p))
	room.Width = m.Width * m.TileWidth
	room.Height = m.Height * m.TileHeight
	room.ViewWidth = min(room.Width, cfg.Game.RoomWidth)
	room.ViewHeight = min(room.Height, cfg.Game.RoomHeight)

	for _, og := range m.ObjectGroups {
		proto, err := generics.New(og.Name)
		if err != nil {
			if cfg.Debug.Enabled {
				log.Printf("Rooms: skipping object group %q in %s", og.Name, p)
			}
			continue
		}
		for _, o := range og.Objects {
			g, err := objectToGeneric(proto, o)
			if err != nil {
				return nil, fmt.Errorf("map %s object %d: %w", p, o.ID, err)
			}
			room.Add(g)
		}
	}

	if err := room.Validate(); err != nil {
		return nil, err
	}
	room.Background = renderTiles(m, fsys, p)
	return room, nil
}

// renderTiles flattens the visible tile layers into one image. A map without
// tile layers, or whose tilesets cannot be read, has no background.
func renderTiles(m *tiled.Map, fsys fs.FS, p string) image.Image {
	if len(m.Layers) == 0 {
		return nil
	}
	renderer, err := render.NewRendererWithFileSystem(m, fsys)
	if err != nil {
		log.Printf("Warning: Failed to create renderer for %s: %v", p, err)
		return nil
	}

	bg := image.NewRGBA(image.Rect(0, 0, m.Width*m.TileWidth, m.Height*m.TileHeight))
	for i, layer := range m.Layers {
		if !layer.Visible || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %d of %s: %v", i, p, err)
			continue
		}
		mask := image.NewUniform(color.Alpha{A: uint8(math.Round(float64(layer.Opacity) * 255))})
		draw.DrawMask(bg, bg.Bounds(), renderer.Result, image.Point{}, mask, image.Point{}, draw.Over)
		renderer.Clear()
	}
	return bg
}

func objectToGeneric(proto generics.Generic, o *tiled.Object) (generics.Generic, error) {
	kind := proto.Kind()
	defaults, err := generics.New(kind)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(defaults)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	described := make(map[string]generics.Field)
	for _, f := range proto.DescribeFields() {
		described[f.Key] = f
	}

	// Tiled pivots on the top-left corner; rotate the half-size offset with
	// it to find the center.
	rad := mathutil.DegToRad(o.Rotation)
	cx, cy := mathutil.RotatePoint(o.X+o.Width/2, o.Y+o.Height/2, o.X, o.Y, rad)
	fields["x"] = math.Round(cx)
	fields["y"] = math.Round(cy)
	if o.Width > 0 {
		fields["width"] = math.Round(o.Width)
	}
	if o.Height > 0 {
		fields["height"] = math.Round(o.Height)
	}
	if _, ok := described["rotation"]; ok {
		fields["rotation"] = mathutil.NormalizeDeg(360 - math.Round(o.Rotation))
	}

	for _, f := range proto.DescribeFields() {
		s := o.Properties.GetString(f.Key)
		if s == "" {
			continue
		}
		v, err := propertyValue(f, s)
		if err != nil {
			return nil, &generics.FieldError{Kind: kind, Key: f.Key, Reason: err.Error()}
		}
		fields[f.Key] = v
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	return generics.Decode(kind, raw)
}

func propertyValue(f generics.Field, s string) (any, error) {
	switch f.Kind {
	case generics.KindKeyboard:
		return s, nil
	case generics.KindCheckbox:
		return strconv.ParseBool(s)
	case generics.KindSprite, generics.KindSound:
		return generics.Resource{URL: s}, nil
	default:
		return strconv.ParseFloat(s, 64)
	}
}
