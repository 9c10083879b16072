package ranking

import (
	"encoding/json"
	"errors"
	"net/http"

	permeability "Darcy/internal/calc/permeability"
)

type Handler struct{}

func (h *Handler) Rank(w http.ResponseWriter, r *http.Request) {
	var input permeability.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Rank(input)
	if err != nil {
		var verr *permeability.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Message, http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
