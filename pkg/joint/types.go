package joint

import "fmt"

// DefaultRatio is the default tail-to-pin width ratio.
const DefaultRatio = 2.0

// WorkpieceSpec describes the board pair being joined.
// Width runs along the joint line, Height is the board thickness that
// sets tail depth. Both are millimeters and must be positive.
type WorkpieceSpec struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Division is the coarseness dial: how many tails fit per unit of
// width/height ratio. The factor strictly decreases fine -> coarse.
type Division int

const (
	DivisionFine Division = iota
	DivisionMedium
	DivisionCoarse
)

// Factor returns the tail-count scaling factor for the division.
func (d Division) Factor() float64 {
	switch d {
	case DivisionFine:
		return 1.0
	case DivisionMedium:
		return 2.0 / 3.0
	case DivisionCoarse:
		return 0.5
	default:
		return 0
	}
}

func (d Division) String() string {
	switch d {
	case DivisionFine:
		return "fine"
	case DivisionMedium:
		return "medium"
	case DivisionCoarse:
		return "coarse"
	default:
		return fmt.Sprintf("Division(%d)", int(d))
	}
}

// ParseDivision converts a user-facing division name to a Division.
func ParseDivision(s string) (Division, error) {
	switch s {
	case "fine":
		return DivisionFine, nil
	case "medium":
		return DivisionMedium, nil
	case "coarse":
		return DivisionCoarse, nil
	}
	return 0, fmt.Errorf("%w: unknown division %q, expected fine, medium, or coarse", ErrInvalidInput, s)
}

// Variant selects which of the two dovetail-shape conventions
// BuildParts emits.
type Variant int

const (
	// VariantStraight cuts both pins and tails as trapezoids flared by
	// the corner mark offset; adjacent parts share edges exactly.
	VariantStraight Variant = iota
	// VariantAngled cuts only the tails, flared by the joint angle and
	// board depth, atop a plain rectangular pin board.
	VariantAngled
)

func (v Variant) String() string {
	switch v {
	case VariantStraight:
		return "straight"
	case VariantAngled:
		return "angled"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ExplodeFactor returns the depth multiplier for the exploded offset
// target. The two conventions historically disagree and both are kept.
func (v Variant) ExplodeFactor() float64 {
	if v == VariantAngled {
		return 2
	}
	return 3
}

// ParseVariant converts a user-facing variant name to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "straight":
		return VariantStraight, nil
	case "angled":
		return VariantAngled, nil
	}
	return 0, fmt.Errorf("%w: unknown variant %q, expected straight or angled", ErrInvalidInput, s)
}

// JointLayout is the derived joint geometry. All fields are computed
// atomically by ComputeLayout from one input snapshot; values from
// different snapshots must never be mixed.
type JointLayout struct {
	Workpiece WorkpieceSpec `json:"workpiece"`
	Division  Division      `json:"division"`
	Ratio     float64       `json:"ratio"`

	TailsCount int `json:"tailsCount"`
	PinsCount  int `json:"pinsCount"`

	// PartsCount is PinsCount + TailsCount*Ratio; fractional when the
	// ratio is not integral.
	PartsCount float64 `json:"partsCount"`
	PartWidth  float64 `json:"partWidth"`
	PinWidth   float64 `json:"pinWidth"`
	TailWidth  float64 `json:"tailWidth"`

	// Angle is the half-angle of the dovetail flare in radians,
	// always inside (0, pi/2) for a valid layout.
	Angle float64 `json:"angle"`

	// TailMarkOffset is the horizontal offset, per side, between a
	// tail's centerline mark and its outer corner.
	TailMarkOffset float64 `json:"tailMarkOffset"`
}

// Degenerate reports whether the layout collapsed to a single
// full-width pin with no tails. This is a valid layout, not an error.
func (l JointLayout) Degenerate() bool {
	return l.TailsCount == 0
}
