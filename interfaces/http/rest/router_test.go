package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rootline-backend/application/services"
	"rootline-backend/domain/herbs"
	domainservices "rootline-backend/domain/services"
	"rootline-backend/infrastructure/config"
	"rootline-backend/infrastructure/llm"
	"rootline-backend/infrastructure/prompts"
	"rootline-backend/interfaces/http/rest/handlers"
	"rootline-backend/pkg/observability"
)

// envelope mirrors the standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(t *testing.T, provider llm.Provider) http.Handler {
	t.Helper()

	store, err := herbs.NewStore()
	require.NoError(t, err)

	logger := zap.NewNop()
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	intakeService := services.NewIntakeService(
		domainservices.NewMatcher(store, nil),
		provider,
		prompts.NewLibrary(),
		metrics,
		logger,
	)

	cfg := &config.Config{
		Environment:     "test",
		EnableMetrics:   true,
		EnableCORS:      false,
		ProviderTimeout: 60,
	}

	return NewRouter(RouterDeps{
		Config:        cfg,
		Logger:        logger,
		Metrics:       metrics,
		Registry:      registry,
		IntakeHandler: handlers.NewIntakeHandler(intakeService, logger),
		HerbHandler:   handlers.NewHerbHandler(store, logger),
	})
}

func okProvider() llm.Provider {
	return llm.GenerateFunc(func(_ context.Context, prompt string) (string, error) {
		return "generated guidance", nil
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, okProvider())

	rec, env := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	rec, _ = doJSON(t, router, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t, okProvider())

	// Generate some traffic first.
	doJSON(t, router, http.MethodGet, "/api/v1/herbs", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rootline_http_requests_total")
}

func TestRouter_ListHerbs(t *testing.T) {
	router := newTestRouter(t, okProvider())

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/herbs", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Herbs []herbs.HerbRecord `json:"herbs"`
		Count int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, len(data.Herbs), data.Count)
	assert.NotEmpty(t, data.Herbs)
}

func TestRouter_GetHerb(t *testing.T) {
	router := newTestRouter(t, okProvider())

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/herbs/tulsi", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var herb herbs.HerbRecord
	require.NoError(t, json.Unmarshal(env.Data, &herb))
	assert.Equal(t, "Tulsi", herb.Name)

	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/herbs/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestRouter_GetGraph(t *testing.T) {
	router := newTestRouter(t, okProvider())

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/herbs/graph", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Herbs []herbs.HerbRecord `json:"herbs"`
		Edges []herbs.HerbEdge   `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Herbs)
	assert.NotEmpty(t, data.Edges)
}

func TestRouter_MatchPreview(t *testing.T) {
	router := newTestRouter(t, okProvider())

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/match", map[string]interface{}{
		"symptoms":   "fatigue and brain fog",
		"goals":      "more energy and focus",
		"traditions": []string{"ayurvedic"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var data services.MatchResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Matches)
	assert.Equal(t, "brahmi", data.Matches[0].ID)
}

func TestRouter_MatchPreview_BadTradition(t *testing.T) {
	router := newTestRouter(t, okProvider())

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/match", map[string]interface{}{
		"symptoms":   "fatigue",
		"traditions": []string{"western"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestRouter_Intake(t *testing.T) {
	router := newTestRouter(t, okProvider())

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/intake", map[string]interface{}{
		"symptoms":     "fatigue and brain fog",
		"goals":        "more energy and focus",
		"restrictions": "nightshades",
		"traditions":   []string{"ayurvedic"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var plan services.WellnessPlan
	require.NoError(t, json.Unmarshal(env.Data, &plan))
	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, "generated guidance", plan.HerbalProtocol)
	assert.Equal(t, "generated guidance", plan.DailyRituals)
	assert.Equal(t, "generated guidance", plan.Nourishment)
	assert.Equal(t, "generated guidance", plan.MindAndSpirit)
	assert.NotEmpty(t, plan.Matches)
}

func TestRouter_Intake_Validation(t *testing.T) {
	router := newTestRouter(t, okProvider())

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "missing symptoms",
			body: map[string]interface{}{"goals": "sleep better"},
		},
		{
			name: "unknown field",
			body: map[string]interface{}{"symptoms": "tired", "bogus": true},
		},
		{
			name: "invalid tradition",
			body: map[string]interface{}{"symptoms": "tired eyes", "traditions": []string{"folk"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doJSON(t, router, http.MethodPost, "/api/v1/intake", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
		})
	}
}

func TestRouter_Intake_ProviderFailure(t *testing.T) {
	failing := llm.GenerateFunc(func(context.Context, string) (string, error) {
		return "", assert.AnError
	})
	router := newTestRouter(t, failing)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/intake", map[string]interface{}{
		"symptoms": "poor sleep and stress",
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UPSTREAM_ERROR", env.Error.Code)
}
