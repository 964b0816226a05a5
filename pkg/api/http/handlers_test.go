package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(s, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"message": "Backend is working!"}, body)
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(s, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"status": "healthy"}, body)
}

func TestEndpointsAreIdempotent(t *testing.T) {
	s, _ := newTestServer(t)

	for _, path := range []string{"/", "/health"} {
		first := do(s, http.MethodGet, path, nil).Body.Bytes()
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, do(s, http.MethodGet, path, nil).Body.Bytes(), "path %s", path)
		}
	}
}

func TestRootThenHealth(t *testing.T) {
	s, _ := newTestServer(t)

	root := do(s, http.MethodGet, "/", nil)
	health := do(s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, root.Code)
	assert.JSONEq(t, `{"message":"Backend is working!"}`, root.Body.String())
	assert.Equal(t, http.StatusOK, health.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, health.Body.String())
}

func TestUndefinedRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"unknown path", http.MethodGet, "/nonexistent", http.StatusNotFound},
		{"unknown nested path", http.MethodGet, "/health/deep", http.StatusNotFound},
		{"post root", http.MethodPost, "/", http.StatusMethodNotAllowed},
		{"delete health", http.MethodDelete, "/health", http.StatusMethodNotAllowed},
		{"put root", http.MethodPut, "/", http.StatusMethodNotAllowed},
	}

	s, _ := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(s, tt.method, tt.path, nil)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
