package joint

import "fmt"

// Mode is the endpoint the tail board is animating toward.
type Mode int

const (
	Assembled Mode = iota
	Exploded
)

func (m Mode) String() string {
	switch m {
	case Assembled:
		return "assembled"
	case Exploded:
		return "exploded"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// AssemblyState is the tail board's translation along the joint's
// perpendicular axis. The UI toggles Mode; the external animation
// loop advances Offset toward the mode's target each frame via Step.
// Easing speed is the loop's business; the targets and the clamping
// are the contract here.
type AssemblyState struct {
	Mode   Mode    `json:"mode"`
	Offset float64 `json:"offset"`
}

// TargetOffset returns the offset each mode animates toward:
// 0 when assembled, depth times the variant's explode factor when
// exploded.
func TargetOffset(m Mode, depth float64, v Variant) float64 {
	if m == Exploded {
		return depth * v.ExplodeFactor()
	}
	return 0
}

// Toggle flips the target mode without touching the current offset.
func (s *AssemblyState) Toggle() {
	if s.Mode == Assembled {
		s.Mode = Exploded
	} else {
		s.Mode = Assembled
	}
}

// Step moves the offset toward the current mode's target by at most
// delta (delta must be non-negative). The offset never leaves
// [0, exploded target], so a half-finished animation reversed
// mid-flight stays in range. Reports whether the target was reached.
func (s *AssemblyState) Step(delta, depth float64, v Variant) bool {
	limit := TargetOffset(Exploded, depth, v)
	target := TargetOffset(s.Mode, depth, v)

	if delta < 0 {
		delta = 0
	}
	switch {
	case s.Offset < target:
		s.Offset += delta
		if s.Offset > target {
			s.Offset = target
		}
	case s.Offset > target:
		s.Offset -= delta
		if s.Offset < target {
			s.Offset = target
		}
	}

	if s.Offset < 0 {
		s.Offset = 0
	}
	if s.Offset > limit {
		s.Offset = limit
	}
	return s.Offset == target
}
