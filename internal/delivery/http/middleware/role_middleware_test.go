package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/esbreenn/clinica-turnos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/pacientes/1", nil)
	if role == "" {
		return req
	}
	ctx := context.WithValue(req.Context(), RoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{"admin passes", entity.RoleAdmin, http.StatusOK},
		{"recepcion is forbidden", entity.RoleRecepcion, http.StatusForbidden},
		{"unknown role is forbidden", "superuser", http.StatusForbidden},
		{"missing role is unauthorized", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RequireAdmin(next).ServeHTTP(rec, requestWithRole(tt.role))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRequireRoleMultiple(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := RequireRole(entity.RoleAdmin, entity.RoleRecepcion)

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, requestWithRole(entity.RoleRecepcion))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestActorID(t *testing.T) {
	assert.Nil(t, ActorID(context.Background()))

	userID := uuid.New()
	ctx := context.WithValue(context.Background(), UserIDKey, userID)
	got := ActorID(ctx)
	if assert.NotNil(t, got) {
		assert.Equal(t, userID, *got)
	}
}
