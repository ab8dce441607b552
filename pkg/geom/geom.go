// Package geom provides the 2-D primitives shared by the joint layout
// and part-geometry code. Points are gonum r2 vectors; a Part is the
// closed quadrilateral outline of a single pin or tail, expressed in
// the joint's local plane (x along the joint line, y across the board).
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec aliases the gonum r2 vector so callers need not import gonum
// for the common case.
type Vec = r2.Vec

// Pt is a convenience constructor for an r2 vector.
func Pt(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Part is a closed quadrilateral: one pin or tail outline before
// extrusion into a board-depth solid. The four corners walked
// BottomLeft -> TopLeft -> TopRight -> BottomRight form a closed,
// non-self-intersecting polygon. Bottom is the root edge (the board's
// outer face), top is the tip edge (the joint line).
type Part struct {
	BottomLeft  Vec `json:"bottomLeft"`
	TopLeft     Vec `json:"topLeft"`
	TopRight    Vec `json:"topRight"`
	BottomRight Vec `json:"bottomRight"`
}

// Vertices returns the corners in closed walking order.
func (p Part) Vertices() []Vec {
	return []Vec{p.BottomLeft, p.TopLeft, p.TopRight, p.BottomRight}
}

// Translate returns the part displaced by d.
func (p Part) Translate(d Vec) Part {
	return Part{
		BottomLeft:  r2.Add(p.BottomLeft, d),
		TopLeft:     r2.Add(p.TopLeft, d),
		TopRight:    r2.Add(p.TopRight, d),
		BottomRight: r2.Add(p.BottomRight, d),
	}
}

// TipWidth returns the width of the part along its top (joint line) edge.
func (p Part) TipWidth() float64 {
	return p.TopRight.X - p.TopLeft.X
}

// RootWidth returns the width of the part along its bottom (outer face) edge.
func (p Part) RootWidth() float64 {
	return p.BottomRight.X - p.BottomLeft.X
}

// Inverted reports whether either horizontal edge has negative width,
// which would make the quadrilateral self-intersecting.
func (p Part) Inverted() bool {
	return p.TipWidth() < 0 || p.RootWidth() < 0
}

// Area returns the unsigned area of the quadrilateral (shoelace formula).
func (p Part) Area() float64 {
	v := p.Vertices()
	var sum float64
	for i := range v {
		j := (i + 1) % len(v)
		sum += v[i].X*v[j].Y - v[j].X*v[i].Y
	}
	return math.Abs(sum) / 2
}
