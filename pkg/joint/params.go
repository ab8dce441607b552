package joint

import "fmt"

// Params bundles every user-facing dial in boundary form: division
// and variant as names, so the same value crosses the frontend
// bindings, the preference store and the script engine unchanged.
type Params struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Division string  `json:"division"`
	Ratio    float64 `json:"ratio"`
	Variant  string  `json:"variant"`
	Depth    float64 `json:"depth"`
}

// DefaultParams returns the parameter set shown on first launch.
func DefaultParams() Params {
	return Params{
		Width:    100,
		Height:   15,
		Division: DivisionMedium.String(),
		Ratio:    DefaultRatio,
		Variant:  VariantStraight.String(),
		Depth:    20,
	}
}

// Resolve validates the boundary values and computes the layout.
func (p Params) Resolve() (JointLayout, Variant, error) {
	division, err := ParseDivision(p.Division)
	if err != nil {
		return JointLayout{}, 0, err
	}
	variant, err := ParseVariant(p.Variant)
	if err != nil {
		return JointLayout{}, 0, err
	}
	if p.Depth <= 0 {
		return JointLayout{}, 0, fmt.Errorf("%w: depth %.4f must be positive", ErrInvalidInput, p.Depth)
	}
	layout, err := ComputeLayout(WorkpieceSpec{Width: p.Width, Height: p.Height}, division, p.Ratio)
	if err != nil {
		return JointLayout{}, 0, err
	}
	return layout, variant, nil
}
