package rooms

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	cfg "github.com/automoto/generic-star/config"
	"github.com/automoto/generic-star/generics"
)

var ErrInvalidRoom = errors.New("invalid room")

// Room is one level: its size, the size of the view onto it, and the
// generics placed in it.
type Room struct {
	Name       string     `json:"name"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	ViewWidth  int        `json:"viewWidth"`
	ViewHeight int        `json:"viewHeight"`
	Instances  []Instance `json:"instances"`

	// Flattened tile layers of an imported map; JSON rooms have none.
	Background image.Image `json:"-"`
}

// Instance is one placed generic. It serializes as {"type", "fields"}.
type Instance struct {
	generics.Generic
}

func (i Instance) MarshalJSON() ([]byte, error) {
	if i.Generic == nil {
		return nil, fmt.Errorf("%w: empty instance", ErrInvalidRoom)
	}
	return generics.Encode(i.Generic)
}

func (i *Instance) UnmarshalJSON(data []byte) error {
	var env generics.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	g, err := generics.Decode(env.Type, env.Fields)
	if err != nil {
		return err
	}
	i.Generic = g
	return nil
}

// New returns an empty room with the default dimensions.
func New(name string) *Room {
	return &Room{
		Name:       name,
		Width:      cfg.Game.RoomWidth,
		Height:     cfg.Game.RoomHeight,
		ViewWidth:  cfg.Game.RoomWidth,
		ViewHeight: cfg.Game.RoomHeight,
	}
}

// Add appends g to the room.
func (r *Room) Add(g generics.Generic) {
	r.Instances = append(r.Instances, Instance{Generic: g})
}

// Validate checks the room dimensions and that at most one Player is placed.
func (r *Room) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: room %q size %dx%d must be positive", ErrInvalidRoom, r.Name, r.Width, r.Height)
	}
	if r.ViewWidth <= 0 || r.ViewHeight <= 0 {
		return fmt.Errorf("%w: room %q view %dx%d must be positive", ErrInvalidRoom, r.Name, r.ViewWidth, r.ViewHeight)
	}
	players := 0
	for i, inst := range r.Instances {
		if inst.Generic == nil {
			return fmt.Errorf("%w: room %q instance %d is empty", ErrInvalidRoom, r.Name, i)
		}
		if inst.Kind() == generics.KindNamePlayer {
			players++
		}
	}
	if players > 1 {
		return fmt.Errorf("%w: room %q has %d players, at most one is allowed", ErrInvalidRoom, r.Name, players)
	}
	return nil
}

// Load reads a room file. JSON rooms are decoded strictly; .tmx maps are
// imported with ImportTMX.
func Load(fsys fs.FS, p string) (*Room, error) {
	if strings.EqualFold(path.Ext(p), ".tmx") {
		return ImportTMX(fsys, p)
	}

	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read room %s: %w", p, err)
	}
	room := New("")
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(room); err != nil {
		return nil, fmt.Errorf("failed to decode room %s: %w", p, err)
	}
	if room.Name == "" {
		room.Name = nameOf(p)
	}
	if err := room.Validate(); err != nil {
		return nil, err
	}
	return room, nil
}

// LoadAll loads every room in dir, sorted by name.
func LoadAll(fsys fs.FS, dir string) ([]*Room, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read rooms directory %s: %w", dir, err)
	}

	var rooms []*Room
	for _, e := range entries {
		ext := strings.ToLower(path.Ext(e.Name()))
		if e.IsDir() || (ext != ".json" && ext != ".tmx") {
			continue
		}
		room, err := Load(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].Name < rooms[j].Name
	})
	return rooms, nil
}

// Find looks up a room by name in dir, trying .json before .tmx.
func Find(fsys fs.FS, dir, name string) (*Room, error) {
	for _, ext := range []string{".json", ".tmx"} {
		p := path.Join(dir, name+ext)
		if _, err := fs.Stat(fsys, p); err == nil {
			return Load(fsys, p)
		}
	}
	return nil, fmt.Errorf("room %q not found in %s: %w", name, dir, fs.ErrNotExist)
}

// Save writes r as indented JSON.
func Save(w io.Writer, r *Room) error {
	if err := r.Validate(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode room %s: %w", r.Name, err)
	}
	return nil
}

func nameOf(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
