package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	permeability "Darcy/internal/calc/permeability"
	pss "Darcy/internal/calc/pss"
	ranking "Darcy/internal/calc/ranking"
	sensitivity "Darcy/internal/calc/sensitivity"
)

func main() {
	var in permeability.Input
	flag.Float64Var(&in.FlowRate, "q", 500, "flow rate (STB/day)")
	flag.Float64Var(&in.ReservoirPressure, "pe", 2000, "reservoir pressure (psi)")
	flag.Float64Var(&in.FlowingPressure, "pwf", 1000, "bottomhole flowing pressure (psi)")
	flag.Float64Var(&in.Thickness, "h", 20, "layer thickness (ft)")
	flag.Float64Var(&in.Viscosity, "mu", 1, "viscosity (cP)")
	flag.Float64Var(&in.FVF, "b", 1, "formation volume factor (RB/STB)")
	flag.Float64Var(&in.DrainageRadius, "re", 1000, "drainage radius (ft)")
	flag.Float64Var(&in.WellboreRadius, "rw", 0.333, "wellbore radius (ft)")
	flag.Float64Var(&in.Skin, "s", 0, "skin factor")
	sweepList := flag.String("sweep", "", "comma-separated axes to sweep (q,h,re,mu,dp,pe,pwf,s,fvf)")
	usePSS := flag.Bool("pss", false, "use the pseudo-steady-state form")
	rank := flag.Bool("rank", false, "rank parameters by sensitivity")
	flag.Parse()

	calc := permeability.Calculate
	if *usePSS {
		calc = pss.Calculate
	}
	res, err := calc(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Printf("Estimated permeability: %.2f mD\n", res.PermeabilityMD)
	fmt.Printf("Drawdown: %.2f psi, boundary term: %.4f\n", res.DrawdownPsi, res.LogTerm)

	if *sweepList != "" {
		var axes []sensitivity.Axis
		for _, name := range strings.Split(*sweepList, ",") {
			axes = append(axes, sensitivity.Axis(strings.TrimSpace(name)))
		}
		series, err := sensitivity.SweepAll(axes, in)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Sweep error:", err)
			os.Exit(1)
		}
		for _, s := range series {
			fmt.Printf("\n%s\n", s.Label)
			fmt.Printf("%14s %16s\n", "value", "k (mD)")
			for _, p := range s.Points {
				fmt.Printf("%14.3f %16.4f\n", p.Value, p.PermeabilityMD)
			}
		}
	}

	if *rank {
		rr, err := ranking.Rank(in)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Ranking error:", err)
			os.Exit(1)
		}
		fmt.Printf("\nSensitivity ranking (base k = %.2f mD)\n", rr.BaseK)
		for i, stat := range rr.Ranking {
			fmt.Printf("%2d. %-38s spread %.2fx (k %.2f to %.2f)\n",
				i+1, stat.Label, stat.RelativeSpread, stat.MinK, stat.MaxK)
		}
		for _, skipped := range rr.Skipped {
			fmt.Printf("    skipped %s: %s\n", skipped.Axis, skipped.Reason)
		}
	}
}
