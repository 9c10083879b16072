package importer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xuri/excelize/v2"

	permeability "Darcy/internal/calc/permeability"
)

type Handler struct{}

type ImportResult struct {
	Well   permeability.Input  `json:"well"`
	Result permeability.Result `json:"result"`
}

// Xlsx accepts a parameter-sheet upload and returns the single point
// estimate for it. One evaluation per upload; this is not a batch runner.
func (h *Handler) Xlsx(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) == 0 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	input, err := ParseSheet(rows)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := permeability.Calculate(input)
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
	json.NewEncoder(w).Encode(ImportResult{Well: input, Result: res})
}
