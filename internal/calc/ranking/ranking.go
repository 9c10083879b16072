package ranking

import (
	"math"
	"sort"

	permeability "Darcy/internal/calc/permeability"
	sensitivity "Darcy/internal/calc/sensitivity"
)

type AxisStat struct {
	Axis           sensitivity.Axis `json:"axis"`
	Label          string           `json:"label"`
	MinK           float64          `json:"min_k"`
	MaxK           float64          `json:"max_k"`
	RelativeSpread float64          `json:"relative_spread"`
}

type SkippedAxis struct {
	Axis   sensitivity.Axis `json:"axis"`
	Reason string           `json:"reason"`
}

type Result struct {
	BaseK   float64       `json:"base_k"`
	Ranking []AxisStat    `json:"ranking"`
	Skipped []SkippedAxis `json:"skipped,omitempty"`
	Notes   string        `json:"notes"`
}

// Rank sweeps every axis one-at-a-time and orders them by how far the
// estimate moves across the axis's range, relative to the base estimate.
// Axes whose sweep cannot run from the current snapshot are reported as
// skipped instead of failing the whole request.
func Rank(in permeability.Input) (Result, error) {
	base, err := permeability.Calculate(in)
	if err != nil {
		return Result{}, err
	}

	out := Result{
		BaseK: base.PermeabilityMD,
		Notes: "One-at-a-time sensitivity, most influential parameter first.",
	}
	for _, axis := range sensitivity.All {
		series, err := sensitivity.Sweep(axis, in)
		if err != nil {
			out.Skipped = append(out.Skipped, SkippedAxis{Axis: axis, Reason: err.Error()})
			continue
		}
		min, max := series.Points[0].PermeabilityMD, series.Points[0].PermeabilityMD
		for _, p := range series.Points[1:] {
			min = math.Min(min, p.PermeabilityMD)
			max = math.Max(max, p.PermeabilityMD)
		}
		spread := max - min
		if base.PermeabilityMD != 0 {
			spread /= math.Abs(base.PermeabilityMD)
		}
		out.Ranking = append(out.Ranking, AxisStat{
			Axis:           axis,
			Label:          series.Label,
			MinK:           min,
			MaxK:           max,
			RelativeSpread: spread,
		})
	}
	sort.SliceStable(out.Ranking, func(i, j int) bool {
		return out.Ranking[i].RelativeSpread > out.Ranking[j].RelativeSpread
	})
	return out, nil
}
