package sensitivity

import (
	"encoding/json"
	"errors"
	"net/http"

	permeability "Darcy/internal/calc/permeability"
)

type SweepRequest struct {
	Well permeability.Input `json:"well"`
	Axes []Axis             `json:"axes"`
}

type SweepResponse struct {
	Series []Series `json:"series"`
}

type Handler struct{}

func (h *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	var input SweepRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	series, err := SweepAll(input.Axes, input.Well)
	if err != nil {
		var verr *permeability.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Message, http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SweepResponse{Series: series})
}
