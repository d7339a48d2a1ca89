package physics

import "errors"

var (
	// ErrDestroyed is returned when a mutator is called on a handle whose
	// body or joint has already been removed from the world.
	ErrDestroyed = errors.New("physics: handle used after destroy")

	ErrNotGearCapable = errors.New("physics: gear joint inputs must both be revolute joints")
	ErrNoGeometry     = errors.New("physics: polygon has no valid triangles")
)
