package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	permeability "Darcy/internal/calc/permeability"
	sensitivity "Darcy/internal/calc/sensitivity"
)

type Input struct {
	Project string             `json:"project"`
	Author  string             `json:"author"`
	Title   string             `json:"title"`
	Notes   string             `json:"notes"`
	Well    permeability.Input `json:"well"`
	Axes    []sensitivity.Axis `json:"axes"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Well Test Permeability Report"
	}

	res, err := permeability.Calculate(input.Well)
	if err != nil {
		var verr *permeability.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Message, http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	var series []sensitivity.Series
	if len(input.Axes) > 0 {
		series, err = sensitivity.SweepAll(input.Axes, input.Well)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Inputs")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	rows := []struct {
		name  string
		value float64
	}{
		{"Flow rate q (STB/day)", input.Well.FlowRate},
		{"Reservoir pressure Pe (psi)", input.Well.ReservoirPressure},
		{"Flowing pressure Pwf (psi)", input.Well.FlowingPressure},
		{"Layer thickness h (ft)", input.Well.Thickness},
		{"Viscosity mu (cP)", input.Well.Viscosity},
		{"Formation volume factor B (RB/STB)", input.Well.FVF},
		{"Drainage radius re (ft)", input.Well.DrainageRadius},
		{"Wellbore radius rw (ft)", input.Well.WellboreRadius},
		{"Skin factor s", input.Well.Skin},
	}
	for _, row := range rows {
		pdf.Cell(100, 6, row.name)
		pdf.Cell(0, 6, fmt.Sprintf("%.3f", row.value))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Estimated permeability: %.2f mD", res.PermeabilityMD))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Drawdown Pe-Pwf: %.2f psi, ln(re/rw): %.4f", res.DrawdownPsi, res.LogTerm))
	pdf.Ln(10)

	if len(series) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Sensitivity")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, s := range series {
			first := s.Points[0]
			last := s.Points[len(s.Points)-1]
			min, max := first.PermeabilityMD, first.PermeabilityMD
			for _, p := range s.Points {
				if p.PermeabilityMD < min {
					min = p.PermeabilityMD
				}
				if p.PermeabilityMD > max {
					max = p.PermeabilityMD
				}
			}
			pdf.Cell(0, 6, fmt.Sprintf("%s: swept %.2f to %.2f, k %.2f to %.2f mD",
				s.Label, first.Value, last.Value, min, max))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if input.Notes != "" {
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"welltest-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
