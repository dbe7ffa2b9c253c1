// Package router assembles the HTTP route table.
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gatherchat/internal/common"
	"gatherchat/internal/config"
)

type RouteRegistrar interface {
	RegisterRoutes(r *mux.Router)
}

type AdminRouteRegistrar interface {
	RegisterAdminRoutes(r *mux.Router)
}

// Routes groups handlers by the guard they sit behind.
type Routes struct {
	Public        []RouteRegistrar
	Authenticated []RouteRegistrar
	Admin         []AdminRouteRegistrar

	// Ready backs /health; nil means always healthy.
	Ready func(ctx context.Context) error
}

// NewRouter builds the public, authenticated (/api/v1) and admin
// (/api/v1/admin) groups.
func NewRouter(cfg *config.Config, log *zap.Logger, routes Routes) *mux.Router {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(loggingMiddleware(log))

	// Preflight requests never carry a token. A Methods matcher here would turn
	// every unknown path into a 405.
	r.MatcherFunc(func(req *http.Request, _ *mux.RouteMatch) bool {
		return req.Method == http.MethodOptions
	}).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.HandleFunc("/health", healthCheckHandler(routes.Ready)).Methods(http.MethodGet)
	for _, h := range routes.Public {
		h.RegisterRoutes(r)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(common.AuthMiddleware([]byte(cfg.Auth.JWTSecret)))

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(common.AdminOnly(cfg.Auth.AdminUserID))
	for _, h := range routes.Admin {
		h.RegisterAdminRoutes(admin)
	}

	for _, h := range routes.Authenticated {
		h.RegisterRoutes(api)
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		common.WriteError(w, http.StatusNotFound, "not found")
	})

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)))
		})
	}
}

func healthCheckHandler(ready func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ready != nil {
			if err := ready(r.Context()); err != nil {
				common.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status":  "unhealthy",
					"service": "gatherchat",
				})
				return
			}
		}
		common.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "gatherchat",
		})
	}
}
