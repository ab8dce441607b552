package joint

import (
	"fmt"
	"math"

	"github.com/chazu/dovetail/pkg/geom"
)

// BuildResult holds the part outlines for both boards, each ordered
// left to right along the joint line. The slices are freshly allocated
// on every call and owned by the caller.
type BuildResult struct {
	PinParts  []geom.Part `json:"pinParts"`
	TailParts []geom.Part `json:"tailParts"`
}

// BuildParts generates the pin-board and tail-board outlines for a
// layout, in a local frame centered on the joint line: x = 0 at board
// mid-width, y = 0 at mid-thickness, roots at y = -boardHeight/2 and
// tips at y = +boardHeight/2. boardWidth/Height/Depth are the
// renderer's board dimensions; the layout's workpiece widths are
// scaled into them, so the outlines can be built at display scale.
//
// A degenerate layout (zero tails) yields a single full-span pin and
// no tails. A malformed layout or non-positive board dimension is an
// error; so is any parameter combination that would emit an inverted
// polygon.
func BuildParts(layout JointLayout, boardWidth, boardHeight, boardDepth float64, variant Variant) (BuildResult, error) {
	if boardWidth <= 0 || boardHeight <= 0 || boardDepth <= 0 {
		return BuildResult{}, fmt.Errorf("%w: board dimensions %.4f x %.4f x %.4f must be positive",
			ErrInvalidInput, boardWidth, boardHeight, boardDepth)
	}
	if err := checkLayout(layout); err != nil {
		return BuildResult{}, err
	}

	switch variant {
	case VariantStraight:
		return buildStraight(layout, boardWidth, boardHeight)
	case VariantAngled:
		return buildAngled(layout, boardWidth, boardHeight, boardDepth)
	}
	return BuildResult{}, fmt.Errorf("%w: unknown variant %v", ErrInvalidInput, variant)
}

// checkLayout rejects layouts that were not produced by ComputeLayout
// from valid inputs. Failing fast here beats emitting degenerate
// polygons that surface as invisible or inside-out meshes.
func checkLayout(l JointLayout) error {
	if l.TailsCount < 0 {
		return fmt.Errorf("%w: negative tails count %d", ErrInvalidInput, l.TailsCount)
	}
	if l.PinsCount != l.TailsCount+1 {
		return fmt.Errorf("%w: pins count %d, want tails+1 = %d", ErrInvalidInput, l.PinsCount, l.TailsCount+1)
	}
	if l.Workpiece.Width <= 0 {
		return fmt.Errorf("%w: workpiece width %.4f must be positive", ErrInvalidInput, l.Workpiece.Width)
	}
	if l.PinWidth <= 0 || l.TailWidth <= 0 {
		return fmt.Errorf("%w: part widths %.4f / %.4f must be positive", ErrInvalidInput, l.PinWidth, l.TailWidth)
	}
	if l.Angle <= 0 || l.Angle >= math.Pi/2 {
		return fmt.Errorf("%w: flare angle %.4f rad outside (0, pi/2)", ErrImpossibleGeometry, l.Angle)
	}
	return nil
}

// pinState is the left edge of the pin currently being accumulated
// while walking tails left to right. Each tail completes the pin to
// its left and opens the next one; the walk is an explicit fold so no
// mutable pin leaks across iterations.
type pinState struct {
	tipLeft  float64
	rootLeft float64
}

// stepPin completes the in-progress pin against the tail to its right
// and returns the state for the next pin. The pin's right corners are
// the tail's left corners, so adjacent parts share edges exactly.
func stepPin(st pinState, tail geom.Part) (geom.Part, pinState) {
	pin := geom.Part{
		BottomLeft:  geom.Pt(st.rootLeft, tail.BottomLeft.Y),
		TopLeft:     geom.Pt(st.tipLeft, tail.TopLeft.Y),
		TopRight:    tail.TopLeft,
		BottomRight: tail.BottomLeft,
	}
	return pin, pinState{tipLeft: tail.TopRight.X, rootLeft: tail.BottomRight.X}
}

// closePin finishes the run: the last pin's right edge is the board
// edge itself, not a computed mark, so it cannot fall out of the
// per-tail loop.
func closePin(st pinState, halfW, halfH float64) geom.Part {
	return geom.Part{
		BottomLeft:  geom.Pt(st.rootLeft, -halfH),
		TopLeft:     geom.Pt(st.tipLeft, halfH),
		TopRight:    geom.Pt(halfW, halfH),
		BottomRight: geom.Pt(halfW, -halfH),
	}
}

// buildStraight emits trapezoidal tails and the complementary pins.
// Tails are wider at the tip than at the root by the corner offset on
// each side; the two outer half-pins are clipped to the board edges.
func buildStraight(l JointLayout, boardWidth, boardHeight float64) (BuildResult, error) {
	scale := boardWidth / l.Workpiece.Width
	halfW := boardWidth / 2
	halfH := boardHeight / 2

	pinW := l.PinWidth * scale
	tailW := l.TailWidth * scale
	pitch := pinW + tailW
	cornerOffset := l.TailMarkOffset * scale

	if 2*cornerOffset >= tailW {
		return BuildResult{}, fmt.Errorf("%w: corner offset %.4f leaves no tail root (tail width %.4f)",
			ErrImpossibleGeometry, cornerOffset, tailW)
	}

	res := BuildResult{
		PinParts:  make([]geom.Part, 0, l.PinsCount),
		TailParts: make([]geom.Part, 0, l.TailsCount),
	}

	st := pinState{tipLeft: -halfW, rootLeft: -halfW}
	for i := 0; i < l.TailsCount; i++ {
		markLeft := -halfW + float64(i)*pitch + pinW
		markRight := markLeft + tailW
		tail := geom.Part{
			BottomLeft:  geom.Pt(markLeft+cornerOffset, -halfH),
			TopLeft:     geom.Pt(markLeft, halfH),
			TopRight:    geom.Pt(markRight, halfH),
			BottomRight: geom.Pt(markRight-cornerOffset, -halfH),
		}
		pin, next := stepPin(st, tail)
		res.PinParts = append(res.PinParts, pin)
		res.TailParts = append(res.TailParts, tail)
		st = next
	}
	res.PinParts = append(res.PinParts, closePin(st, halfW, halfH))

	return res, nil
}

// buildAngled emits only the tails, flared by the joint angle: each
// side edge is displaced at the root by boardDepth/tan(angle), so the
// flare depends on board thickness rather than a precomputed linear
// offset. The pin board stays a plain rectangle, emitted as a single
// full-span part.
func buildAngled(l JointLayout, boardWidth, boardHeight, boardDepth float64) (BuildResult, error) {
	scale := boardWidth / l.Workpiece.Width
	halfW := boardWidth / 2
	halfH := boardHeight / 2

	pinW := l.PinWidth * scale
	tailW := l.TailWidth * scale
	pitch := pinW + tailW
	disp := boardDepth / math.Tan(l.Angle)

	if 2*disp >= tailW {
		return BuildResult{}, fmt.Errorf("%w: root displacement %.4f leaves no tail root (tail width %.4f)",
			ErrImpossibleGeometry, disp, tailW)
	}

	res := BuildResult{
		PinParts: []geom.Part{{
			BottomLeft:  geom.Pt(-halfW, -halfH),
			TopLeft:     geom.Pt(-halfW, halfH),
			TopRight:    geom.Pt(halfW, halfH),
			BottomRight: geom.Pt(halfW, -halfH),
		}},
		TailParts: make([]geom.Part, 0, l.TailsCount),
	}

	for i := 0; i < l.TailsCount; i++ {
		markLeft := -halfW + float64(i)*pitch + pinW
		markRight := markLeft + tailW
		res.TailParts = append(res.TailParts, geom.Part{
			BottomLeft:  geom.Pt(markLeft+disp, -halfH),
			TopLeft:     geom.Pt(markLeft, halfH),
			TopRight:    geom.Pt(markRight, halfH),
			BottomRight: geom.Pt(markRight-disp, -halfH),
		})
	}

	return res, nil
}
