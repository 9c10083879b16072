package permeability

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerCalc(t *testing.T) {
	h := &Handler{}
	body := `{"flow_rate":500,"reservoir_pressure":2000,"flowing_pressure":1000,
		"thickness":20,"viscosity":1,"fvf":1,"drainage_radius":1000,
		"wellbore_radius":0.333,"skin":0}`
	req := httptest.NewRequest(http.MethodPost, "/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.InDelta(t, 32.55, res.PermeabilityMD, 0.01)
}

func TestHandlerCalcValidationMessage(t *testing.T) {
	h := &Handler{}
	body := `{"flow_rate":500,"reservoir_pressure":1000,"flowing_pressure":1500,
		"thickness":20,"viscosity":1,"fvf":1,"drainage_radius":1000,
		"wellbore_radius":0.333,"skin":0}`
	req := httptest.NewRequest(http.MethodPost, "/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pe must be greater than Pwf")
}

func TestHandlerCalcBadPayload(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/calc", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
