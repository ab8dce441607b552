package joint

import (
	"fmt"
	"math"
)

// ComputeLayout derives a JointLayout from the workpiece dimensions,
// division setting and tail-to-pin ratio. It is pure and exact: no
// rounding is applied (rounded millimeter marks are a presentation
// concern). TailsCount == 0 is a valid degenerate result; callers get
// an error only for invalid inputs or impossible geometry.
func ComputeLayout(spec WorkpieceSpec, division Division, ratio float64) (JointLayout, error) {
	if spec.Width <= 0 {
		return JointLayout{}, fmt.Errorf("%w: width %.4f must be positive", ErrInvalidInput, spec.Width)
	}
	if spec.Height <= 0 {
		return JointLayout{}, fmt.Errorf("%w: height %.4f must be positive", ErrInvalidInput, spec.Height)
	}
	if ratio <= 0 {
		return JointLayout{}, fmt.Errorf("%w: tail-to-pin ratio %.4f must be positive", ErrInvalidInput, ratio)
	}
	factor := division.Factor()
	if factor <= 0 {
		return JointLayout{}, fmt.Errorf("%w: unknown division %v", ErrInvalidInput, division)
	}

	tails := int(math.Floor(spec.Width / spec.Height * factor))
	if tails < 0 {
		tails = 0
	}
	pins := tails + 1

	partsCount := float64(pins) + float64(tails)*ratio
	partWidth := spec.Width / partsCount
	tailWidth := partWidth * ratio

	if tailWidth <= 0 {
		return JointLayout{}, fmt.Errorf("%w: tail width %.4f", ErrImpossibleGeometry, tailWidth)
	}

	// Spannagel's layout: a triangle of altitude 3x the board height
	// subtends the tail's half-width at its apex; the flare half-angle
	// is taken at 2.5x the height, the mark offset at 3x.
	angle := math.Atan(2.5 * spec.Height / (tailWidth / 2))
	if angle <= 0 || angle >= math.Pi/2 {
		return JointLayout{}, fmt.Errorf("%w: flare angle %.4f rad outside (0, pi/2)", ErrImpossibleGeometry, angle)
	}
	markOffset := 3*spec.Height/math.Tan(angle) - tailWidth/2

	return JointLayout{
		Workpiece:      spec,
		Division:       division,
		Ratio:          ratio,
		TailsCount:     tails,
		PinsCount:      pins,
		PartsCount:     partsCount,
		PartWidth:      partWidth,
		PinWidth:       partWidth,
		TailWidth:      tailWidth,
		Angle:          angle,
		TailMarkOffset: markOffset,
	}, nil
}
