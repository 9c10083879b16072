package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	permeability "Darcy/internal/calc/permeability"
	sensitivity "Darcy/internal/calc/sensitivity"
)

func baseInput() permeability.Input {
	return permeability.Input{
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

func TestRankCoversAllAxes(t *testing.T) {
	res, err := Rank(baseInput())
	require.NoError(t, err)
	require.Len(t, res.Ranking, len(sensitivity.All))
	assert.Empty(t, res.Skipped)
	assert.InDelta(t, 32.55, res.BaseK, 0.01)

	for i := 1; i < len(res.Ranking); i++ {
		assert.GreaterOrEqual(t, res.Ranking[i-1].RelativeSpread, res.Ranking[i].RelativeSpread)
	}
	for _, stat := range res.Ranking {
		assert.LessOrEqual(t, stat.MinK, stat.MaxK)
		assert.GreaterOrEqual(t, stat.RelativeSpread, 0.0)
	}
}

func TestRankSkipsDegenerateAxes(t *testing.T) {
	in := baseInput()
	in.ReservoirPressure = 120
	in.FlowingPressure = 60

	res, err := Rank(in)
	require.NoError(t, err)
	require.NotEmpty(t, res.Skipped)

	skipped := map[sensitivity.Axis]bool{}
	for _, s := range res.Skipped {
		skipped[s.Axis] = true
	}
	assert.True(t, skipped[sensitivity.AxisFlowingPressure])
	assert.Len(t, res.Ranking, len(sensitivity.All)-len(res.Skipped))
}

func TestRankRejectsInvalidBase(t *testing.T) {
	in := baseInput()
	in.FlowingPressure = 2500
	_, err := Rank(in)
	require.EqualError(t, err, "Pe must be greater than Pwf")
}
