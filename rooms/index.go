package rooms

import (
	"math"

	"github.com/automoto/generic-star/generics"
	"github.com/automoto/generic-star/graphics"
	"github.com/solarlune/resolv"
)

const indexCellSize = 16

// Index answers point and area queries over a room's instances using a
// spatial hash of their bounding boxes.
type Index struct {
	space *resolv.Space
	room  *Room
}

const probeTag = "probe"

// NewIndex indexes every instance currently in room.
func NewIndex(room *Room) *Index {
	idx := &Index{
		space: resolv.NewSpace(room.Width, room.Height, indexCellSize, indexCellSize),
		room:  room,
	}
	for i, inst := range room.Instances {
		x, y, w, h := aabb(inst.Bounds())
		obj := resolv.NewObject(x, y, w, h, inst.Kind())
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		obj.Data = i
		idx.space.Add(obj)
	}
	return idx
}

// aabb returns the axis-aligned box around rotated bounds.
func aabb(b generics.Bounds) (x, y, w, h float64) {
	corners := graphics.RotatedCorners(b.X, b.Y, b.Width, b.Height, b.Rotation, b.Width/2, b.Height/2)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
	}
	return minX, minY, maxX - minX, maxY - minY
}

// query returns indexes of instances whose cells touch the given area, in
// placement order.
func (idx *Index) query(x, y, w, h float64) []int {
	probe := resolv.NewObject(x, y, math.Max(w, 1), math.Max(h, 1), probeTag)
	idx.space.Add(probe)
	defer idx.space.Remove(probe)

	check := probe.Check(0, 0)
	if check == nil {
		return nil
	}
	seen := make(map[int]bool)
	var out []int
	for _, obj := range check.Objects {
		i, ok := obj.Data.(int)
		if !ok || seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	sortInts(out)
	return out
}

// At returns the topmost instance containing the point, honoring rotation.
func (idx *Index) At(x, y float64) (generics.Generic, bool) {
	hits := idx.query(x, y, 1, 1)
	for i := len(hits) - 1; i >= 0; i-- {
		g := idx.room.Instances[hits[i]].Generic
		if generics.Contains(g, x, y) {
			return g, true
		}
	}
	return nil, false
}

// Visible returns the instances whose bounding boxes overlap the view
// rectangle, in placement order.
func (idx *Index) Visible(x, y, w, h float64) []generics.Generic {
	var out []generics.Generic
	for _, i := range idx.query(x, y, w, h) {
		g := idx.room.Instances[i].Generic
		bx, by, bw, bh := aabb(g.Bounds())
		if bx < x+w && bx+bw > x && by < y+h && by+bh > y {
			out = append(out, g)
		}
	}
	return out
}

func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
