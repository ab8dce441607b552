// Package kernel defines the abstract geometry kernel interface used
// to turn joint outlines into renderable solids. The sdfx subpackage
// provides the implementation; the abstraction keeps the tessellator
// independent of the solid-modeling backend.
package kernel

import "github.com/chazu/dovetail/pkg/geom"

// Solid is an opaque handle to a geometry kernel solid.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Box creates a box of the given dimensions centered at the origin.
	Box(x, y, z float64) Solid

	// Extrude sweeps a closed 2-D profile (vertices in walking order,
	// in the xy plane) along the z axis, producing a solid of the
	// given depth centered on z = 0.
	Extrude(profile []geom.Vec, depth float64) (Solid, error)

	// Boolean operations.
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid

	// Translate displaces a solid.
	Translate(s Solid, x, y, z float64) Solid

	// ToMesh tessellates a solid into a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
