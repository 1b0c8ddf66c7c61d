package server

import (
	"context"
	"net/http"
	"time"

	"github.com/mstolarz/fakturo/auth"
	"github.com/mstolarz/fakturo/httpx"
	"github.com/mstolarz/fakturo/internal/handlers"
	"github.com/mstolarz/fakturo/internal/models"
	"github.com/mstolarz/fakturo/internal/services"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB) http.Handler {
	mux := http.NewServeMux()

	// Sessions must refer to a user that still exists.
	auth.SetUserVerifier(func(_ context.Context, uid uint) bool {
		var count int64
		if err := db.Model(&models.User{}).Where("id = ?", uid).Limit(1).Count(&count).Error; err != nil {
			return false
		}
		return count > 0
	})

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	ah := handlers.NewAuthHandler(db)
	mux.HandleFunc("POST /signup", ah.Signup)
	mux.HandleFunc("POST /login", ah.Login)
	mux.HandleFunc("POST /logout", ah.Logout)

	histSvc := services.NewHistoryService(db)
	clientSvc := services.NewClientService(db, histSvc)

	ch := handlers.NewClientHandler(clientSvc)
	mux.Handle("GET /clients", protected(ch.List))
	mux.Handle("POST /clients", protected(ch.Create))
	mux.Handle("GET /clients/{id}", protected(ch.Get))
	mux.Handle("PATCH /clients/{id}", protected(ch.Patch))
	mux.Handle("DELETE /clients/{id}", protected(ch.Delete))

	hh := handlers.NewHistoryHandler(histSvc)
	mux.Handle("GET /history", protected(hh.List))

	ih := handlers.NewInvoiceHandler(db)
	mux.Handle("GET /invoices", protected(ih.List))

	return auth.Middleware(withRecover(withLogging(mux)))
}

func protected(h http.HandlerFunc) http.Handler {
	return auth.RequireAuth(h)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Any("panic", rec).Str("path", r.URL.Path).Msg("recovered")
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
