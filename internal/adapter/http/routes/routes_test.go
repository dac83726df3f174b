package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"calcplanner/internal/infrastructure/config"
	"calcplanner/internal/infrastructure/kvstore"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, *App) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{Export: config.ExportConfig{Currency: "€"}}
	app, err := NewApp(kvstore.NewMemoryStore(), nil, cfg, zap.NewNop(), prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return NewRouter(app, cfg, zap.NewNop()), app
}

func call(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)
	w := call(t, r, http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRun_UnknownGinModeDoesNotPanic(t *testing.T) {
	t.Setenv("GIN_MODE", "prod")
	defer gin.SetMode(gin.TestMode)

	cfg := config.Load()
	assert.NotPanics(t, func() { gin.SetMode(cfg.GinMode) })
	assert.Equal(t, gin.ReleaseMode, gin.Mode())
}

func TestRouter_ExportFormats(t *testing.T) {
	r, _ := newTestRouter(t)
	w := call(t, r, http.MethodGet, "/v1/exports/formats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"formats":["html","pdf"],"default":"pdf"}`, w.Body.String())
}

func TestRouter_OptionalSurfaces(t *testing.T) {
	r, _ := newTestRouter(t)
	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodGet, "/metrics", "").Code)
	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodGet, "/swagger/index.html", "").Code)
}

func TestRouter_EstimateLifecycle(t *testing.T) {
	r, app := newTestRouter(t)

	// catalog starts from the defaults
	w := call(t, r, http.MethodGet, "/v1/materials", "")
	require.Equal(t, http.StatusOK, w.Code)
	var catalog struct {
		Materials []struct {
			ID        string  `json:"id"`
			UnitPrice float64 `json:"unit_price"`
		} `json:"materials"`
		Source string `json:"source"`
	}
	decode(t, w, &catalog)
	require.Len(t, catalog.Materials, 10)
	assert.Equal(t, "default", catalog.Source)

	// a blank form has one line per material
	w = call(t, r, http.MethodGet, "/v1/estimates/new", "")
	require.Equal(t, http.StatusOK, w.Code)
	var draft struct {
		LineItems []map[string]any `json:"line_items"`
	}
	decode(t, w, &draft)
	assert.Len(t, draft.LineItems, 10)

	// preview and create agree on the total
	form := `{"name":"Casa","line_items":[{"material_id":"1","quantity":10,"selected":true},{"material_id":"2","quantity":4}],"labor_rate_per_unit":5,"finishing_cost":100}`
	w = call(t, r, http.MethodPost, "/v1/estimates/preview", form)
	require.Equal(t, http.StatusOK, w.Code)
	var preview struct {
		Total float64 `json:"total"`
	}
	decode(t, w, &preview)
	assert.InDelta(t, 405.0, preview.Total, 1e-9)

	w = call(t, r, http.MethodPost, "/v1/estimates", form)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID    string  `json:"id"`
		Total float64 `json:"total"`
	}
	decode(t, w, &created)
	require.NotEmpty(t, created.ID)
	assert.InDelta(t, 405.0, created.Total, 1e-9)

	// a later price edit does not change the stored total
	w = call(t, r, http.MethodPatch, "/v1/materials/1/price", `{"unit_price":"30"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = call(t, r, http.MethodGet, "/v1/estimates/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Total float64 `json:"total"`
	}
	decode(t, w, &got)
	assert.InDelta(t, 405.0, got.Total, 1e-9)

	w = call(t, r, http.MethodGet, "/v1/materials", "")
	decode(t, w, &catalog)
	assert.Equal(t, "stored", catalog.Source)
	assert.InDelta(t, 30.0, catalog.Materials[0].UnitPrice, 1e-9)

	// export prints the stored total
	w = call(t, r, http.MethodGet, "/v1/estimates/"+created.ID+"/export?format=html", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "TOTAL: €405.00")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "orcamento-casa-")

	w = call(t, r, http.MethodGet, "/v1/estimates/"+created.ID+"/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))

	w = call(t, r, http.MethodGet, "/v1/estimates/"+created.ID+"/export?format=docx", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// edit goes through the hand-off and is consumed by the next form
	w = call(t, r, http.MethodPost, "/v1/estimates/"+created.ID+"/edit", "")
	require.Equal(t, http.StatusOK, w.Code)
	_, pending := app.Handoff.Pending()
	assert.True(t, pending)

	w = call(t, r, http.MethodGet, "/v1/estimates/new", "")
	require.Equal(t, http.StatusOK, w.Code)
	var edit struct {
		Name           string           `json:"name"`
		FromEstimateID string           `json:"from_estimate_id"`
		LineItems      []map[string]any `json:"line_items"`
	}
	decode(t, w, &edit)
	assert.Equal(t, "Casa", edit.Name)
	assert.Equal(t, created.ID, edit.FromEstimateID)
	assert.Len(t, edit.LineItems, 10)
	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodGet, "/v1/handoff", "").Code)

	// delete is idempotent
	assert.Equal(t, http.StatusNoContent, call(t, r, http.MethodDelete, "/v1/estimates/"+created.ID, "").Code)
	assert.Equal(t, http.StatusNoContent, call(t, r, http.MethodDelete, "/v1/estimates/"+created.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodGet, "/v1/estimates/"+created.ID, "").Code)

	w = call(t, r, http.MethodGet, "/v1/estimates", "")
	var list struct {
		Estimates []any `json:"estimates"`
	}
	decode(t, w, &list)
	assert.Empty(t, list.Estimates)
}

func TestRouter_ValidationErrors(t *testing.T) {
	r, _ := newTestRouter(t)

	w := call(t, r, http.MethodPost, "/v1/estimates", `{"name":"","line_items":[{"material_id":"1","quantity":1,"selected":true}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ESTIMATE_NAME")

	w = call(t, r, http.MethodPatch, "/v1/materials/404/price", `{"unit_price":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "MATERIAL_NOT_FOUND")
}
