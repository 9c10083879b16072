package sensitivity

import (
	"fmt"

	permeability "Darcy/internal/calc/permeability"
)

// Axis identifies which well-test parameter a sweep varies.
type Axis string

const (
	AxisFlowRate          Axis = "q"
	AxisThickness         Axis = "h"
	AxisDrainageRadius    Axis = "re"
	AxisViscosity         Axis = "mu"
	AxisDrawdown          Axis = "dp"
	AxisReservoirPressure Axis = "pe"
	AxisFlowingPressure   Axis = "pwf"
	AxisSkin              Axis = "s"
	AxisFVF               Axis = "fvf"
)

// All lists every sweepable axis in presentation order.
var All = []Axis{
	AxisFlowRate,
	AxisThickness,
	AxisDrainageRadius,
	AxisViscosity,
	AxisDrawdown,
	AxisReservoirPressure,
	AxisFlowingPressure,
	AxisSkin,
	AxisFVF,
}

// Samples is the fixed number of points per series, endpoints included.
const Samples = 50

type Point struct {
	Value          float64 `json:"value"`
	PermeabilityMD float64 `json:"permeability_md"`
}

type Series struct {
	Axis   Axis    `json:"axis"`
	Label  string  `json:"label"`
	Points []Point `json:"points"`
}

type axisDef struct {
	label string
	// bounds may depend on the current snapshot (pe and pwf ranges do).
	bounds func(in permeability.Input) (lo, hi float64)
	apply  func(in permeability.Input, v float64) permeability.Input
}

var axes = map[Axis]axisDef{
	AxisFlowRate: {
		label:  "Flow rate q (STB/day)",
		bounds: fixed(100, 4000),
		apply: func(in permeability.Input, v float64) permeability.Input {
			in.FlowRate = v
			return in
		},
	},
	AxisThickness: {
		label:  "Layer thickness h (ft)",
		bounds: fixed(5, 100),
		apply: func(in permeability.Input, v float64) permeability.Input {
			in.Thickness = v
			return in
		},
	},
	AxisDrainageRadius: {
		label:  "Drainage radius re (ft)",
		bounds: fixed(200, 5000),
		apply: func(in permeability.Input, v float64) permeability.Input {
			in.DrainageRadius = v
			return in
		},
	},
	AxisViscosity: {
		label:  "Viscosity mu (cP)",
		bounds: fixed(0.2, 5),
		apply: func(in permeability.Input, v float64) permeability.Input {
			in.Viscosity = v
			return in
		},
	},
	AxisDrawdown: {
		label:  "Pressure drop Pe-Pwf (psi)",
		bounds: fixed(100, 3000),
		// The drawdown goes straight into the denominator: Pwf stays put
		// and Pe is set so that Pe-Pwf equals the sample.
		apply: func(in permeability.Input, v float64) permeability.Input {
			in.ReservoirPressure = in.FlowingPressure + v
			return in
		},
	},
	AxisReservoirPressure: {
		label: "Reservoir pressure Pe (psi)",
		bounds: func(in permeability.Input) (float64, float64) {
			return in.FlowingPressure + 100, 5000
		},
		apply: func(in permeability.Input, v float64) permeability.Input {
			in.ReservoirPressure = v
			return in
		},
	},
	AxisFlowingPressure: {
		label: "Flowing pressure Pwf (psi)",
		bounds: func(in permeability.Input) (float64, float64) {
			return 100, in.ReservoirPressure - 50
		},
		apply: func(in permeability.Input, v float64) permeability.Input {
			in.FlowingPressure = v
			return in
		},
	},
	AxisSkin: {
		label:  "Skin factor s",
		bounds: fixed(-5, 20),
		apply: func(in permeability.Input, v float64) permeability.Input {
			in.Skin = v
			return in
		},
	},
	AxisFVF: {
		label:  "Formation volume factor B (RB/STB)",
		bounds: fixed(0.8, 1.5),
		apply: func(in permeability.Input, v float64) permeability.Input {
			in.FVF = v
			return in
		},
	},
}

func fixed(lo, hi float64) func(permeability.Input) (float64, float64) {
	return func(permeability.Input) (float64, float64) { return lo, hi }
}

// Label returns the human-readable axis name, or the raw id if unknown.
func Label(axis Axis) string {
	if def, ok := axes[axis]; ok {
		return def.label
	}
	return string(axis)
}

// Sweep re-evaluates the estimate over the axis's fixed range with every
// other field held at its current value, producing Samples points in
// increasing axis order.
func Sweep(axis Axis, in permeability.Input) (Series, error) {
	def, ok := axes[axis]
	if !ok {
		return Series{}, fmt.Errorf("unknown sweep axis %q", axis)
	}
	if err := baseCheck(axis, in); err != nil {
		return Series{}, err
	}

	lo, hi := def.bounds(in)
	if hi <= lo {
		return Series{}, &permeability.ValidationError{
			Field:   string(axis),
			Message: fmt.Sprintf("sweep range for %s is empty (Pe and Pwf too close)", axis),
		}
	}

	series := Series{Axis: axis, Label: def.label, Points: make([]Point, 0, Samples)}
	step := (hi - lo) / float64(Samples-1)
	for i := 0; i < Samples; i++ {
		v := lo + step*float64(i)
		if i == Samples-1 {
			v = hi
		}
		res, err := permeability.Calculate(def.apply(in, v))
		if err != nil {
			return Series{}, fmt.Errorf("sweep %s at %v: %w", axis, v, err)
		}
		series.Points = append(series.Points, Point{Value: v, PermeabilityMD: res.PermeabilityMD})
	}
	return series, nil
}

// SweepAll produces one independent series per requested axis, preserving
// request order. Any failing axis fails the whole request.
func SweepAll(requested []Axis, in permeability.Input) ([]Series, error) {
	if len(requested) == 0 {
		return nil, fmt.Errorf("no axes selected")
	}
	out := make([]Series, 0, len(requested))
	for _, axis := range requested {
		s, err := Sweep(axis, in)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// baseCheck refuses to sweep from a degenerate snapshot. Constraints on the
// swept field itself are exempt since the sweep replaces it sample by
// sample (the drawdown axis replaces both pressures' contribution at once).
func baseCheck(axis Axis, in permeability.Input) error {
	switch axis {
	case AxisReservoirPressure, AxisFlowingPressure, AxisDrawdown:
	default:
		if in.ReservoirPressure-in.FlowingPressure <= 0 {
			return &permeability.ValidationError{Field: "flowing_pressure", Message: "Pe must be greater than Pwf"}
		}
	}
	if axis != AxisDrainageRadius && in.DrainageRadius <= in.WellboreRadius {
		return &permeability.ValidationError{Field: "drainage_radius", Message: "re must be greater than rw"}
	}
	if axis != AxisThickness && in.Thickness == 0 {
		return &permeability.ValidationError{Field: "thickness", Message: "h must be non-zero"}
	}
	return nil
}
