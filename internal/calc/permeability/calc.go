package permeability

import "math"

// Input is one snapshot of the nine well-test parameters. Units are fixed:
// STB/day, psi, ft, cP, RB/STB; skin is dimensionless.
type Input struct {
	FlowRate          float64 `json:"flow_rate"`
	ReservoirPressure float64 `json:"reservoir_pressure"`
	FlowingPressure   float64 `json:"flowing_pressure"`
	Thickness         float64 `json:"thickness"`
	Viscosity         float64 `json:"viscosity"`
	FVF               float64 `json:"fvf"`
	DrainageRadius    float64 `json:"drainage_radius"`
	WellboreRadius    float64 `json:"wellbore_radius"`
	Skin              float64 `json:"skin"`
}

type Result struct {
	PermeabilityMD float64 `json:"permeability_md"`
	DrawdownPsi    float64 `json:"drawdown_psi"`
	LogTerm        float64 `json:"log_term"`
	Notes          string  `json:"notes"`
}

// ValidationError names the input constraint a request violated. Its
// message is shown to the user as-is.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Message }

// Validate rejects only the combinations that make the radial-flow formula
// degenerate. Nonphysical values elsewhere (negative viscosity, negative
// flow rate) pass through: engineers probe those corners on purpose.
func Validate(in Input) error {
	if in.ReservoirPressure-in.FlowingPressure <= 0 {
		return &ValidationError{Field: "flowing_pressure", Message: "Pe must be greater than Pwf"}
	}
	if in.DrainageRadius <= in.WellboreRadius {
		return &ValidationError{Field: "drainage_radius", Message: "re must be greater than rw"}
	}
	if in.Thickness == 0 {
		return &ValidationError{Field: "thickness", Message: "h must be non-zero"}
	}
	return nil
}

// Calculate estimates permeability for steady-state radial flow:
// k = 162.6 q mu B (ln(re/rw) + s) / (h (Pe - Pwf))
func Calculate(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}
	dp := in.ReservoirPressure - in.FlowingPressure
	logTerm := math.Log(in.DrainageRadius / in.WellboreRadius)
	k := 162.6 * in.FlowRate * in.Viscosity * in.FVF * (logTerm + in.Skin) / (in.Thickness * dp)

	return Result{
		PermeabilityMD: k,
		DrawdownPsi:    dp,
		LogTerm:        logTerm,
		Notes:          "Steady-state radial flow estimate.",
	}, nil
}
