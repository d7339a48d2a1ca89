package generics

import (
	"errors"
	"fmt"
	"math"
)

// FieldKind selects how a field is edited and validated.
type FieldKind string

const (
	KindKeyboard     FieldKind = "keyboard"
	KindInt          FieldKind = "int"
	KindFloat        FieldKind = "float"
	KindPlayerWidth  FieldKind = "playerWidth"
	KindPlayerHeight FieldKind = "playerHeight"
	KindCheckbox     FieldKind = "checkbox"
	KindSprite       FieldKind = "sprite"
	KindSound        FieldKind = "sound"
)

// Field describes one editable property of a generic.
type Field struct {
	Key     string
	Label   string
	Kind    FieldKind
	Min     float64
	Max     float64
	Default any
}

func (f Field) integral() bool {
	return f.Kind == KindInt || f.Kind == KindPlayerWidth || f.Kind == KindPlayerHeight
}

func (f Field) numeric() bool {
	return f.integral() || f.Kind == KindFloat
}

var unbounded = math.Inf(1)

var ErrUnknownKind = errors.New("unknown generic kind")

// FieldError reports a field that failed validation.
type FieldError struct {
	Kind   string
	Key    string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Kind, e.Key, e.Reason)
}

// Resource points at a sprite or sound file by name.
type Resource struct {
	URL string `json:"url"`
}

// ResourceOp is the change made to a resource in the library.
type ResourceOp int

const (
	ResourceRenamed ResourceOp = iota
	ResourceDeleted
)

// ResourceEvent announces that the resource Name was renamed to NewName or
// deleted.
type ResourceEvent struct {
	Op      ResourceOp
	Name    string
	NewName string
}

// updatePointer applies ev to one resource field and reports a change.
func updatePointer(r **Resource, ev ResourceEvent) bool {
	if *r == nil || (*r).URL != ev.Name {
		return false
	}
	switch ev.Op {
	case ResourceRenamed:
		(*r).URL = ev.NewName
	case ResourceDeleted:
		*r = nil
	default:
		return false
	}
	return true
}
