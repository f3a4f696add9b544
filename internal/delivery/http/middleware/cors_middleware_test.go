package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		origin     string
		wantHeader string
	}{
		{name: "configured origin", origin: "https://clinica.example.com", wantHeader: "https://clinica.example.com"},
		{name: "empty falls back to wildcard", origin: "", wantHeader: "*"},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCORSMiddleware(tt.origin).Handle(next)

			req := httptest.NewRequest(http.MethodGet, "/api/pacientes", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})
	handler := NewCORSMiddleware("").Handle(next)

	req := httptest.NewRequest(http.MethodOptions, "/api/turnos", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, nextCalled)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}
