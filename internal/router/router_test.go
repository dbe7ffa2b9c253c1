package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"gatherchat/internal/common"
	"gatherchat/internal/config"
)

const (
	testSecret = "router-test-secret"
	adminID    = "00000000-0000-0000-0000-000000000000"
)

type whoami struct{}

func (whoami) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/whoami", func(w http.ResponseWriter, r *http.Request) {
		id, err := common.UserIDFromContext(r.Context())
		if err != nil {
			common.WriteError(w, http.StatusUnauthorized, err.Error())
			return
		}
		common.WriteJSON(w, http.StatusOK, map[string]string{"user_id": id})
	}).Methods(http.MethodGet)
}

func (whoami) RegisterAdminRoutes(r *mux.Router) {
	r.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodPost)
}

type publicPage struct{}

func (publicPage) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/media/{fileID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
}

func testRouter(log *zap.Logger, ready func(context.Context) error) *mux.Router {
	cfg := &config.Config{Auth: config.AuthConfig{JWTSecret: testSecret, AdminUserID: adminID}}
	return NewRouter(cfg, log, Routes{
		Public:        []RouteRegistrar{publicPage{}},
		Authenticated: []RouteRegistrar{whoami{}},
		Admin:         []AdminRouteRegistrar{whoami{}},
		Ready:         ready,
	})
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := common.GenerateToken(userID, userID+"@example.com", []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouter_Groups(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		caller     string
		wantStatus int
	}{
		{"health is public", http.MethodGet, "/health", "", http.StatusOK},
		{"media is public", http.MethodGet, "/media/abc", "", http.StatusOK},
		{"api requires auth", http.MethodGet, "/api/v1/whoami", "", http.StatusUnauthorized},
		{"api with token", http.MethodGet, "/api/v1/whoami", "user-1", http.StatusOK},
		{"admin without token", http.MethodPost, "/api/v1/admin/ping", "", http.StatusUnauthorized},
		{"admin as regular user", http.MethodPost, "/api/v1/admin/ping", "user-1", http.StatusForbidden},
		{"admin as admin", http.MethodPost, "/api/v1/admin/ping", adminID, http.StatusNoContent},
		{"unknown route", http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	router := testRouter(zap.NewNop(), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.caller != "" {
				req.Header.Set("Authorization", bearer(t, tt.caller))
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_IdentityReachesHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.Header.Set("Authorization", bearer(t, "user-42"))
	rec := httptest.NewRecorder()
	testRouter(zap.NewNop(), nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":"user-42"}`, rec.Body.String())
}

func TestRouter_Preflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/whoami", nil)
	rec := httptest.NewRecorder()
	testRouter(zap.NewNop(), nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestRouter_HealthReportsReadiness(t *testing.T) {
	router := testRouter(zap.NewNop(), func(context.Context) error {
		return errors.New("mysql down")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unhealthy")
}

func TestRouter_LogsRequests(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	router := testRouter(zap.New(core), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil))

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/v1/whoami", fields["path"])
	assert.EqualValues(t, http.StatusUnauthorized, fields["status"])
}
