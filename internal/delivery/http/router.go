package http

import (
	"context"
	"net/http"
	"time"

	"turnos-api/internal/delivery/http/handler"
	"turnos-api/internal/delivery/http/middleware"
	"turnos-api/internal/metrics"
	"turnos-api/pkg/response"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Router struct {
	router            *mux.Router
	db                *gorm.DB
	shiftHandler      *handler.ShiftHandler
	auditLogHandler   *handler.AuditLogHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	db *gorm.DB,
	shiftHandler *handler.ShiftHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		db:                db,
		shiftHandler:      shiftHandler,
		auditLogHandler:   auditLogHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check and metrics
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	api.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Shift routes
	api.HandleFunc("/turnos", r.shiftHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/turnos", r.shiftHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/turnos/export", r.shiftHandler.Export).Methods(http.MethodGet)
	api.HandleFunc("/turnos/{id:[0-9]+}", r.shiftHandler.Get).Methods(http.MethodGet)

	// Audit trail
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Route-aware middleware runs after matching
	r.router.Use(middleware.Metrics)

	// CORS wraps the router so preflight requests never reach method matching
	var h http.Handler = r.router
	h = r.loggingMiddleware.Handle(h)
	h = r.corsMiddleware.Handle(h)
	h = middleware.RequestID(h)

	return h
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		response.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
