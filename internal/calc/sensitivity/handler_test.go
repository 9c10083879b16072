package sensitivity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerSweep(t *testing.T) {
	h := &Handler{}
	body := `{"well":{"flow_rate":500,"reservoir_pressure":2000,"flowing_pressure":1000,
		"thickness":20,"viscosity":1,"fvf":1,"drainage_radius":1000,
		"wellbore_radius":0.333,"skin":0},"axes":["re","s"]}`
	req := httptest.NewRequest(http.MethodPost, "/sweep", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Sweep(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res SweepResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.Len(t, res.Series, 2)
	assert.Equal(t, AxisDrainageRadius, res.Series[0].Axis)
	assert.Len(t, res.Series[0].Points, Samples)
}

func TestHandlerSweepInvalidBase(t *testing.T) {
	h := &Handler{}
	body := `{"well":{"flow_rate":500,"reservoir_pressure":1000,"flowing_pressure":1500,
		"thickness":20,"viscosity":1,"fvf":1,"drainage_radius":1000,
		"wellbore_radius":0.333,"skin":0},"axes":["q"]}`
	req := httptest.NewRequest(http.MethodPost, "/sweep", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Sweep(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pe must be greater than Pwf")
}
