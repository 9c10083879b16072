package permeability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput() Input {
	return Input{
		FlowRate:          500,
		ReservoirPressure: 2000,
		FlowingPressure:   1000,
		Thickness:         20,
		Viscosity:         1,
		FVF:               1,
		DrainageRadius:    1000,
		WellboreRadius:    0.333,
		Skin:              0,
	}
}

func expected(in Input) float64 {
	return 162.6 * in.FlowRate * in.Viscosity * in.FVF *
		(math.Log(in.DrainageRadius/in.WellboreRadius) + in.Skin) /
		(in.Thickness * (in.ReservoirPressure - in.FlowingPressure))
}

func TestCalculateMatchesFormula(t *testing.T) {
	in := baseInput()
	res, err := Calculate(in)
	require.NoError(t, err)
	require.InEpsilon(t, expected(in), res.PermeabilityMD, 1e-9)
	assert.InDelta(t, 1000, res.DrawdownPsi, 1e-12)
	assert.InEpsilon(t, math.Log(1000/0.333), res.LogTerm, 1e-12)
	assert.True(t, !math.IsNaN(res.PermeabilityMD) && !math.IsInf(res.PermeabilityMD, 0))
}

func TestCalculateRejectsNonPositiveDrawdown(t *testing.T) {
	for name, pwf := range map[string]float64{
		"pwf above pe": 2500,
		"pwf equal pe": 2000,
	} {
		t.Run(name, func(t *testing.T) {
			in := baseInput()
			in.FlowingPressure = pwf
			_, err := Calculate(in)
			require.Error(t, err)
			require.EqualError(t, err, "Pe must be greater than Pwf")

			verr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Equal(t, "flowing_pressure", verr.Field)
		})
	}
}

func TestCalculateRejectsDegenerateGeometry(t *testing.T) {
	in := baseInput()
	in.DrainageRadius = 0.2
	_, err := Calculate(in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	in = baseInput()
	in.DrainageRadius = in.WellboreRadius
	_, err = Calculate(in)
	require.ErrorAs(t, err, &verr)

	in = baseInput()
	in.Thickness = 0
	_, err = Calculate(in)
	require.ErrorAs(t, err, &verr)
}

func TestCalculateAcceptsNonphysicalValues(t *testing.T) {
	// Negative viscosity or flow rate is deliberately allowed: engineers
	// probe edge cases and the reference behavior does not range-check.
	in := baseInput()
	in.Viscosity = -2
	in.FlowRate = -100
	res, err := Calculate(in)
	require.NoError(t, err)
	require.InEpsilon(t, expected(in), res.PermeabilityMD, 1e-9)
}

func TestCalculateNegativeThicknessPasses(t *testing.T) {
	in := baseInput()
	in.Thickness = -20
	res, err := Calculate(in)
	require.NoError(t, err)
	require.InEpsilon(t, expected(in), res.PermeabilityMD, 1e-9)
}

func TestMonotonicity(t *testing.T) {
	set := func(f func(*Input, float64)) func(Input, float64) Input {
		return func(in Input, v float64) Input {
			f(&in, v)
			return in
		}
	}
	cases := []struct {
		name       string
		values     []float64
		apply      func(Input, float64) Input
		increasing bool
	}{
		{"flow rate", []float64{100, 500, 1500, 4000}, set(func(in *Input, v float64) { in.FlowRate = v }), true},
		{"viscosity", []float64{0.2, 1, 2.5, 5}, set(func(in *Input, v float64) { in.Viscosity = v }), true},
		{"fvf", []float64{0.8, 1, 1.2, 1.5}, set(func(in *Input, v float64) { in.FVF = v }), true},
		{"skin", []float64{-5, 0, 10, 20}, set(func(in *Input, v float64) { in.Skin = v }), true},
		{"drainage radius", []float64{200, 1000, 3000, 5000}, set(func(in *Input, v float64) { in.DrainageRadius = v }), true},
		{"thickness", []float64{5, 20, 60, 100}, set(func(in *Input, v float64) { in.Thickness = v }), false},
		{"wellbore radius", []float64{0.1, 0.333, 1, 5}, set(func(in *Input, v float64) { in.WellboreRadius = v }), false},
		{"flowing pressure", []float64{100, 500, 1000, 1900}, set(func(in *Input, v float64) { in.FlowingPressure = v }), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prev := math.NaN()
			for _, v := range tc.values {
				res, err := Calculate(tc.apply(baseInput(), v))
				require.NoError(t, err)
				if !math.IsNaN(prev) {
					if tc.increasing {
						assert.Greater(t, res.PermeabilityMD, prev, "at %v", v)
					} else {
						assert.Less(t, res.PermeabilityMD, prev, "at %v", v)
					}
				}
				prev = res.PermeabilityMD
			}
		})
	}
}
