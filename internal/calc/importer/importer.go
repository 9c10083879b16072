package importer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	permeability "Darcy/internal/calc/permeability"
)

// ParseSheet reads a two-column parameter sheet (name, value) into a well
// test input. Names match the JSON field names; rows with unknown names
// are ignored, so a header row is harmless. All nine parameters must be
// present exactly once.
func ParseSheet(rows [][]string) (permeability.Input, error) {
	var in permeability.Input
	setters := map[string]*float64{
		"flow_rate":          &in.FlowRate,
		"reservoir_pressure": &in.ReservoirPressure,
		"flowing_pressure":   &in.FlowingPressure,
		"thickness":          &in.Thickness,
		"viscosity":          &in.Viscosity,
		"fvf":                &in.FVF,
		"drainage_radius":    &in.DrainageRadius,
		"wellbore_radius":    &in.WellboreRadius,
		"skin":               &in.Skin,
	}
	seen := make(map[string]bool, len(setters))

	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(row[0]))
		dst, ok := setters[name]
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return permeability.Input{}, fmt.Errorf("row %d: bad value for %s: %q", i+1, name, row[1])
		}
		if seen[name] {
			return permeability.Input{}, fmt.Errorf("row %d: duplicate parameter %s", i+1, name)
		}
		seen[name] = true
		*dst = v
	}

	if len(seen) != len(setters) {
		var missing []string
		for name := range setters {
			if !seen[name] {
				missing = append(missing, name)
			}
		}
		sort.Strings(missing)
		return permeability.Input{}, fmt.Errorf("missing parameters: %s", strings.Join(missing, ", "))
	}
	return in, nil
}
