package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appideas/internal/config"
	"appideas/internal/generator"
	"appideas/internal/handlers"
	"appideas/internal/models"
	"appideas/internal/repositories"
	"appideas/internal/utils"
)

// MockHealthChecker reports a fixed storage state.
type MockHealthChecker struct {
	stats map[string]string
}

func (m *MockHealthChecker) Health() map[string]string {
	return m.stats
}

func testConfig() config.Config {
	return config.Config{
		Port:           8080,
		StorageDriver:  config.StorageMemory,
		AllowedOrigins: []string{"http://localhost:5173"},
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		PageSize:       4,
	}
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	repo := repositories.NewMemoryIdeaRepository()
	return newServer(testConfig(), repo, repo, generator.NewSeededSource(42)).RegisterRoutes()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

const validIdea = `{
	"title": "Habit Garden",
	"description": "Grow habits like plants.",
	"complexity": 2,
	"category": "Health & Wellness",
	"techStack": ["MOBILE"],
	"audience": "general",
	"features": ["Streaks"],
	"createdAt": "2025-03-01T10:00:00.000Z"
}`

func TestRootAndHealth(t *testing.T) {
	h := newTestHandler(t)

	rr := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"App Idea Generator API"}`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	health := decode[map[string]string](t, rr)
	assert.Equal(t, "memory", health["storage"])
}

func TestHealthReportsStorageFailure(t *testing.T) {
	down := &MockHealthChecker{stats: map[string]string{"message": "db down", "error": "timeout"}}
	s := newServer(testConfig(), repositories.NewMemoryIdeaRepository(), down, generator.NewSource())

	ch := handlers.NewCommonHandler(s.health)
	server := httptest.NewServer(http.HandlerFunc(ch.HealthHandler))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/api/generate/preview", "")

	rr := do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "app_ideas_generated_total")
	assert.Contains(t, rr.Body.String(), `path="/api/generate/preview"`)
}

func TestOptions(t *testing.T) {
	h := newTestHandler(t)

	rr := do(t, h, http.MethodGet, "/api/options", "")
	require.Equal(t, http.StatusOK, rr.Code)

	opts := decode[handlers.OptionsResponse](t, rr)
	require.Len(t, opts.Categories, 8)
	assert.Equal(t, "all", opts.Categories[0].Key)
	assert.Equal(t, "Productivity", opts.Categories[1].Label)
	assert.Len(t, opts.Technologies, 5)
	assert.Len(t, opts.Audiences, 6)
	require.Len(t, opts.Complexities, 5)
	assert.Equal(t, handlers.ComplexityOption{Value: 5, Label: "Complex"}, opts.Complexities[4])
}

func TestGenerate(t *testing.T) {
	h := newTestHandler(t)

	rr := do(t, h, http.MethodPost, "/api/generate", `{"complexity":4,"category":"finance","techFocus":["ai","iot"],"audience":"business"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	idea := decode[models.Idea](t, rr)
	assert.Equal(t, int64(1), idea.ID)
	assert.Equal(t, "Finance", idea.Category)
	assert.Equal(t, []string{"AI", "IOT"}, idea.TechStack)
	assert.Equal(t, "business", idea.Audience)
	assert.False(t, idea.Saved)

	rr = do(t, h, http.MethodGet, "/api/ideas/1", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	// empty body takes the defaults
	rr = do(t, h, http.MethodPost, "/api/generate", "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	idea = decode[models.Idea](t, rr)
	assert.Equal(t, []string{"WEB"}, idea.TechStack)
	assert.Equal(t, "general", idea.Audience)
}

func TestGenerateValidation(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"complexity out of range", `{"complexity":6}`, "complexity"},
		{"unknown category", `{"category":"gardening"}`, "category"},
		{"unknown technology", `{"techFocus":["web","blockchain"]}`, "techFocus[1]"},
		{"unknown audience", `{"audience":"pets"}`, "audience"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/api/generate", tt.body)
			require.Equal(t, http.StatusBadRequest, rr.Code)
			resp := decode[utils.ErrorResponse](t, rr)
			assert.Contains(t, resp.Errors, tt.field)
		})
	}

	rr := do(t, h, http.MethodPost, "/api/generate", `{"complexity":"high"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "complexity: must be of type int")

	rr = do(t, h, http.MethodPost, "/api/generate", `{"complexity":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/ideas", "")
	assert.Equal(t, "0", rr.Header().Get("X-Total-Count"))
}

func TestPreviewDoesNotPersist(t *testing.T) {
	h := newTestHandler(t)

	rr := do(t, h, http.MethodPost, "/api/generate/preview", `{"category":"social"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	idea := decode[models.Idea](t, rr)
	assert.Equal(t, "Social Media", idea.Category)
	assert.Zero(t, idea.ID)

	rr = do(t, h, http.MethodGet, "/api/ideas", "")
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestIdeaLifecycle(t *testing.T) {
	h := newTestHandler(t)

	rr := do(t, h, http.MethodPost, "/api/ideas", validIdea)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decode[models.Idea](t, rr)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, []string{}, created.Tags)

	rr = do(t, h, http.MethodPatch, "/api/ideas/1", `{"title":"Habit Forest","complexity":3}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := decode[models.Idea](t, rr)
	assert.Equal(t, "Habit Forest", updated.Title)
	assert.Equal(t, 3, updated.Complexity)
	assert.Equal(t, created.Description, updated.Description)

	rr = do(t, h, http.MethodPost, "/api/ideas/1/toggle-save", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[models.Idea](t, rr).Saved)

	rr = do(t, h, http.MethodGet, "/api/ideas/saved", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]models.Idea](t, rr), 1)

	rr = do(t, h, http.MethodGet, "/api/ideas/1/copy", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "App Idea: Habit Forest\nCategory: Health & Wellness\nComplexity: Moderate\nDescription: Grow habits like plants.", rr.Body.String())

	rr = do(t, h, http.MethodDelete, "/api/ideas/1", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, h, http.MethodDelete, "/api/ideas/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/ideas/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestIdeaRequestErrors(t *testing.T) {
	h := newTestHandler(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/ideas", validIdea).Code)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/ideas/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/ideas/0", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/ideas/99", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/api/ideas/99/toggle-save", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/ideas/99/copy", "").Code)

	rr := do(t, h, http.MethodPatch, "/api/ideas/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), models.ErrNoUpdateFields.Error())

	rr = do(t, h, http.MethodPatch, "/api/ideas/1", `{"complexity":0}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodPatch, "/api/ideas/99", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodPost, "/api/ideas", `{"title":"Missing fields"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decode[utils.ErrorResponse](t, rr)
	assert.Equal(t, "is required", resp.Errors["description"])
	assert.Equal(t, "is required", resp.Errors["techStack"])

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/ideas", "").Code)
}

func TestListSortingAndPagination(t *testing.T) {
	h := newTestHandler(t)

	for i, createdAt := range []string{
		"2025-01-03T00:00:00.000Z",
		"2025-01-01T00:00:00.000Z",
		"2025-01-05T00:00:00.000Z",
		"2025-01-02T00:00:00.000Z",
		"2025-01-04T00:00:00.000Z",
	} {
		body, err := json.Marshal(models.AddIdeaRequestBody{
			Title:       "Idea",
			Description: "d",
			Complexity:  1 + i,
			Category:    "Utility",
			TechStack:   []string{"WEB"},
			Audience:    "general",
			CreatedAt:   createdAt,
		})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/ideas", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	}

	ids := func(rr *httptest.ResponseRecorder) []int64 {
		var out []int64
		for _, idea := range decode[[]models.Idea](t, rr) {
			out = append(out, idea.ID)
		}
		return out
	}

	rr := do(t, h, http.MethodGet, "/api/ideas", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int64{3, 5, 1, 4}, ids(rr))
	assert.Equal(t, "5", rr.Header().Get("X-Total-Count"))
	assert.Equal(t, "2", rr.Header().Get("X-Total-Pages"))

	rr = do(t, h, http.MethodGet, "/api/ideas?sort=newest&page=2", "")
	assert.Equal(t, []int64{2}, ids(rr))

	rr = do(t, h, http.MethodGet, "/api/ideas?sort=oldest&limit=10", "")
	assert.Equal(t, []int64{2, 4, 1, 5, 3}, ids(rr))
	assert.Equal(t, "1", rr.Header().Get("X-Total-Pages"))

	rr = do(t, h, http.MethodGet, "/api/ideas?sort=complexity&limit=2", "")
	assert.Equal(t, []int64{5, 4}, ids(rr))

	rr = do(t, h, http.MethodGet, "/api/ideas?page=92233720368547760&limit=100", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
	assert.Equal(t, "5", rr.Header().Get("X-Total-Count"))

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/ideas?sort=title", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/ideas?page=zero", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/ideas?limit=500", "").Code)
}

func TestCorsPreflight(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/ideas/1", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRateLimitApplies(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 1
	repo := repositories.NewMemoryIdeaRepository()
	h := newServer(cfg, repo, repo, generator.NewSource()).RegisterRoutes()

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/options", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodGet, "/api/options", "").Code)
}
