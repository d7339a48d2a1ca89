package generics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/automoto/generic-star/input"
	"github.com/automoto/generic-star/mathutil"
	"github.com/hajimehoshi/ebiten/v2"
)

// Bounds is a rectangle centered on X, Y and rotated by Rotation degrees.
type Bounds struct {
	X, Y          float64
	Width, Height float64
	Rotation      float64
}

// Generic is one object kind that can be placed in a room.
type Generic interface {
	Kind() string
	DescribeFields() []Field
	// Draw renders an editor placeholder, shifted by the view offset.
	Draw(dst *ebiten.Image, offset mathutil.Vec2)
	// UpdatePointers follows a rename or delete of a resource of the given
	// kind and reports whether any field changed.
	UpdatePointers(kind FieldKind, ev ResourceEvent) bool
	Bounds() Bounds
}

type validator interface {
	validate() error
}

var manifest = map[string]func() Generic{
	KindNameBlock:  func() Generic { return NewBlock() },
	KindNamePlayer: func() Generic { return NewPlayer() },
}

// Kinds lists every registered generic kind in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(manifest))
	for k := range manifest {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// New returns a generic of the given kind holding its default values.
func New(kind string) (Generic, error) {
	ctor, ok := manifest[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return ctor(), nil
}

// Envelope is the serialized form of a generic.
type Envelope struct {
	Type   string          `json:"type"`
	Fields json.RawMessage `json:"fields"`
}

// Encode writes g as {"type": kind, "fields": {...}}.
func Encode(g Generic) ([]byte, error) {
	fields, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", g.Kind(), err)
	}
	return json.Marshal(Envelope{Type: g.Kind(), Fields: fields})
}

// Decode builds a generic of kind from its fields object. Every described
// field must be present with a value of the right type inside its range, and
// no other field may appear.
func Decode(kind string, raw json.RawMessage) (Generic, error) {
	g, err := New(kind)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode %s fields: %w", kind, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("decode %s fields: fields must be an object", kind)
	}

	known := make(map[string]bool)
	for _, f := range g.DescribeFields() {
		known[f.Key] = true
		v, ok := fields[f.Key]
		if !ok {
			return nil, &FieldError{Kind: kind, Key: f.Key, Reason: "missing"}
		}
		if reason := checkValue(f, v); reason != "" {
			return nil, &FieldError{Kind: kind, Key: f.Key, Reason: reason}
		}
	}

	extra := make([]string, 0)
	for k := range fields {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return nil, &FieldError{Kind: kind, Key: extra[0], Reason: "unknown field"}
	}

	if err := json.Unmarshal(raw, g); err != nil {
		return nil, fmt.Errorf("decode %s fields: %w", kind, err)
	}
	if v, ok := g.(validator); ok {
		if err := v.validate(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// checkValue returns why v is not acceptable for f, or "" when it is.
func checkValue(f Field, v json.RawMessage) string {
	switch {
	case f.Kind == KindKeyboard:
		var name string
		if err := json.Unmarshal(v, &name); err != nil {
			return "must be a key name"
		}
		if _, err := input.ParseKey(name); err != nil {
			return err.Error()
		}

	case f.numeric():
		var n float64
		if err := json.Unmarshal(v, &n); err != nil {
			return "must be a number"
		}
		if f.integral() && n != math.Trunc(n) {
			return "must be an integer"
		}
		if n < f.Min || n > f.Max {
			if math.IsInf(f.Max, 1) {
				return fmt.Sprintf("must be at least %g", f.Min)
			}
			return fmt.Sprintf("must be between %g and %g", f.Min, f.Max)
		}

	case f.Kind == KindCheckbox:
		var b bool
		if err := json.Unmarshal(v, &b); err != nil {
			return "must be true or false"
		}

	case f.Kind == KindSprite || f.Kind == KindSound:
		if string(bytes.TrimSpace(v)) == "null" {
			return ""
		}
		dec := json.NewDecoder(bytes.NewReader(v))
		dec.DisallowUnknownFields()
		var r Resource
		if err := dec.Decode(&r); err != nil {
			return "must be null or {\"url\": name}"
		}
		if r.URL == "" {
			return "url must not be empty"
		}
	}
	return ""
}

// Contains reports whether the draw-space point lies inside g, taking its
// rotation into account. Generics without an area contain nothing.
func Contains(g Generic, px, py float64) bool {
	b := g.Bounds()
	if b.Width <= 0 || b.Height <= 0 {
		return false
	}
	// Work with y pointing up so rotation matches the editor's angle sense.
	x, y := mathutil.RotatePoint(px-b.X, b.Y-py, 0, 0, -mathutil.DegToRad(b.Rotation))
	return math.Abs(x) <= b.Width/2 && math.Abs(y) <= b.Height/2
}

// IsOnScreen is a conservative visibility test: it compares the distance
// between the view center and g against the sum of both half diagonals.
// Generics without an area are always considered visible.
func IsOnScreen(g Generic, offset, view mathutil.Vec2) bool {
	b := g.Bounds()
	if b.Width <= 0 || b.Height <= 0 {
		return true
	}
	center := mathutil.Add(offset, mathutil.Scale(view, 0.5))
	reach := mathutil.Length(mathutil.Scale(view, 0.5)) + mathutil.Length(mathutil.V(b.Width/2, b.Height/2))
	return mathutil.Length(mathutil.Sub(center, mathutil.V(b.X, b.Y))) <= reach
}
