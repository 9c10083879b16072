package pss

import (
	"math"

	permeability "Darcy/internal/calc/permeability"
)

// Calculate estimates permeability for pseudo-steady-state radial flow,
// where the reservoir pressure is read as the volumetric average pressure:
// k = 162.6 q mu B (ln(re/rw) - 3/4 + s) / (h (Pavg - Pwf))
// Shares the steady-state tool's inputs and validation.
func Calculate(in permeability.Input) (permeability.Result, error) {
	if err := permeability.Validate(in); err != nil {
		return permeability.Result{}, err
	}
	dp := in.ReservoirPressure - in.FlowingPressure
	logTerm := math.Log(in.DrainageRadius/in.WellboreRadius) - 0.75
	k := 162.6 * in.FlowRate * in.Viscosity * in.FVF * (logTerm + in.Skin) / (in.Thickness * dp)

	return permeability.Result{
		PermeabilityMD: k,
		DrawdownPsi:    dp,
		LogTerm:        logTerm,
		Notes:          "Pseudo-steady-state radial flow estimate (average reservoir pressure).",
	}, nil
}
