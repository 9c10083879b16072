package export

import (
	"encoding/json"
	"errors"
	"net/http"

	permeability "Darcy/internal/calc/permeability"
	sensitivity "Darcy/internal/calc/sensitivity"
)

type Input struct {
	Well permeability.Input `json:"well"`
	Axes []sensitivity.Axis `json:"axes"`
}

type Handler struct{}

func (h *Handler) Xlsx(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	f, err := Workbook(input.Well, input.Axes)
	if err != nil {
		var verr *permeability.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Message, http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"sensitivity.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
