package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverdi/wallplan/internal/model"
)

func testServer() *Server {
	return NewServer(":0", log.New(io.Discard))
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAssemblyEndpoint(t *testing.T) {
	s := testServer()

	rec := postJSON(t, s.Handler(), "/api/v1/assembly", model.BlockSystems[0].Input())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Config   model.WallAssemblyConfig   `json:"config"`
		Warnings []model.NarrowBlockWarning `json:"warnings"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, 413.0, resp.Config.SpacingMm)
	assert.Equal(t, []float64{0, 413, 826}, resp.Config.Placements[0].PositionsMm)
	assert.Empty(t, resp.Warnings)
}

func TestAssemblyEndpointReportsWarnings(t *testing.T) {
	s := testServer()

	in := model.BlockSystems[0].Input()
	in.Counts = model.CategoryCounts{Large: 3, Medium: 3, Small: 3}
	rec := postJSON(t, s.Handler(), "/api/v1/assembly", in)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Warnings []model.NarrowBlockWarning `json:"warnings"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Warnings)
}

func TestAssemblyEndpointValidation(t *testing.T) {
	s := testServer()

	in := model.BlockSystems[0].Input()
	in.Stud.ThicknessMm = -5
	rec := postJSON(t, s.Handler(), "/api/v1/assembly", in)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "INVALID_CONFIGURATION", body.Code)
	assert.NotEmpty(t, body.Message)
}

func TestAssemblyEndpointMalformedBody(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assembly", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayloadEndpoint(t *testing.T) {
	s := testServer()

	rec := postJSON(t, s.Handler(), "/api/v1/payload", model.BlockSystems[0].Input())
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]float64
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))

	// The payload carries exactly the seven wire fields.
	assert.Len(t, payload, 7)
	assert.Equal(t, 413.0, payload["spacing_mm"])
	assert.Equal(t, 3.0, payload["max_moraletti_large"])
	assert.Equal(t, 58.0, payload["thickness_mm"])
}

func TestSystemsEndpoint(t *testing.T) {
	s := testServer()

	rec := get(t, s.Handler(), "/api/v1/systems")
	require.Equal(t, http.StatusOK, rec.Code)

	var systems []model.BlockSystem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&systems))
	require.NotEmpty(t, systems)
	assert.Equal(t, "Modulo 413", systems[0].Name)
}

func TestSystemByNameEndpoint(t *testing.T) {
	s := testServer()

	rec := get(t, s.Handler(), "/api/v1/systems/Compact%20330")
	require.Equal(t, http.StatusOK, rec.Code)

	var system model.BlockSystem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&system))
	assert.Equal(t, "Compact 330", system.Name)
}

func TestSystemByNameNotFound(t *testing.T) {
	s := testServer()

	rec := get(t, s.Handler(), "/api/v1/systems/Unknown")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "SYSTEM_NOT_FOUND", body.Code)
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer()

	rec := get(t, s.Handler(), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
