// Package joint computes through-dovetail joint layouts and the part
// outlines derived from them.
//
// The package has two halves, evaluated in dependency order:
//
//   - ComputeLayout derives tail/pin counts, widths, flare angle and
//     the corner mark offset from the workpiece dimensions and two
//     dials (division coarseness, tail-to-pin ratio).
//   - BuildParts turns a layout into the closed quadrilateral outlines
//     of every pin and tail along the joint line, in either the
//     straight-walled or the angled convention.
//
// Both are pure functions: the UI layer owns the current parameters
// and recomputes from scratch on every change. AssemblyState carries
// the assembled/exploded translation contract for the renderer.
package joint
