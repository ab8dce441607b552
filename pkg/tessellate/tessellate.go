// Package tessellate composes the pin board and tail board solids
// from a set of joint part outlines and produces one triangle mesh
// per board using a geometry kernel.
//
// Solids live in the frame of the part outlines: x along the joint
// line, y across the joint band (the tail board body sits at positive
// y, the pin board body at negative y), z through the board depth.
// The assembly offset translates the tail board along +y.
package tessellate

import (
	"fmt"

	"github.com/chazu/dovetail/pkg/geom"
	"github.com/chazu/dovetail/pkg/joint"
	"github.com/chazu/dovetail/pkg/kernel"
)

// bodyScale sizes each board's plain body (the stretch beyond the
// joint band) as a multiple of the band height. Purely visual.
const bodyScale = 3

// PinBoardName and TailBoardName identify the two meshes to the renderer.
const (
	PinBoardName  = "pin-board"
	TailBoardName = "tail-board"
)

// Boards builds the two board solids from the part outlines and
// tessellates them. The returned slice always holds the pin board
// mesh first, then the tail board mesh. offset is the tail board's
// current assembly translation along the joint perpendicular.
func Boards(parts joint.BuildResult, boardWidth, boardHeight, boardDepth, offset float64, variant joint.Variant, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if boardWidth <= 0 || boardHeight <= 0 || boardDepth <= 0 {
		return nil, fmt.Errorf("tessellate: board dimensions %.4f x %.4f x %.4f must be positive",
			boardWidth, boardHeight, boardDepth)
	}
	if len(parts.PinParts) == 0 {
		return nil, fmt.Errorf("tessellate: no pin parts; even a degenerate joint has one")
	}

	tails, err := unionParts(k, parts.TailParts, boardDepth)
	if err != nil {
		return nil, fmt.Errorf("tessellate: tail parts: %w", err)
	}

	pinBoard := pinBoardSolid(k, tails, boardWidth, boardHeight, boardDepth, variant)
	tailBoard := tailBoardSolid(k, tails, boardWidth, boardHeight, boardDepth)

	// The tail board animates; the pin board stays put.
	tailBoard = k.Translate(tailBoard, 0, offset, 0)

	pinMesh, err := k.ToMesh(pinBoard)
	if err != nil {
		return nil, fmt.Errorf("tessellate: pin board: %w", err)
	}
	pinMesh.Name = PinBoardName

	tailMesh, err := k.ToMesh(tailBoard)
	if err != nil {
		return nil, fmt.Errorf("tessellate: tail board: %w", err)
	}
	tailMesh.Name = TailBoardName

	return []*kernel.Mesh{pinMesh, tailMesh}, nil
}

// unionParts extrudes each outline through the board depth and unions
// the results. Returns nil for an empty part list (degenerate joint).
func unionParts(k kernel.Kernel, parts []geom.Part, depth float64) (kernel.Solid, error) {
	var acc kernel.Solid
	for i, p := range parts {
		solid, err := k.Extrude(p.Vertices(), depth)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		if acc == nil {
			acc = solid
		} else {
			acc = k.Union(acc, solid)
		}
	}
	return acc, nil
}

// pinBoardSolid is the body box plus the joint band with the tail
// sockets cut out. The angled convention leaves the band uncut: its
// tails sit on top of a plain board end.
func pinBoardSolid(k kernel.Kernel, tails kernel.Solid, w, h, d float64, variant joint.Variant) kernel.Solid {
	bodyLen := h * bodyScale
	body := k.Translate(k.Box(w, bodyLen, d), 0, -(h/2 + bodyLen/2), 0)

	band := k.Box(w, h, d)
	if variant == joint.VariantStraight && tails != nil {
		band = k.Difference(band, tails)
	}
	return k.Union(body, band)
}

// tailBoardSolid is the body box on the far side of the joint band
// plus the tails reaching into it.
func tailBoardSolid(k kernel.Kernel, tails kernel.Solid, w, h, d float64) kernel.Solid {
	bodyLen := h * bodyScale
	body := k.Translate(k.Box(w, bodyLen, d), 0, h/2+bodyLen/2, 0)
	if tails == nil {
		return body
	}
	return k.Union(body, tails)
}
