package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Use(timeoutMiddleware(30 * time.Second))

		r.Post("/shortcuts", s.handleRegisterShortcuts)
		r.Get("/shortcuts", s.handleListShortcuts)

		r.Get("/reviews/due", s.handleDueItems)
		r.Get("/reviews/{id}", s.handleGetReviewItem)

		r.Post("/sessions", s.handleCreateSession)
		r.Post("/sessions/complete", s.handleCompleteSession)

		r.Get("/stats", s.handleStats)
		r.Get("/export", s.handleExport)
		r.Post("/import", s.handleImport)
	})
	return r
}
