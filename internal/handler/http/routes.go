package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withCORS)

	// Every endpoint is anonymous. Possession of a case ID (plus PIN where
	// set) is the only credential in the system.
	router.Group(func(r chi.Router) {
		r.Post("/api/cases", h.cases)
		r.Post("/api/consent", h.consent)
		r.Post("/api/risk", h.assessRisk)
		r.Post("/api/guardrails", h.checkGuardrails)
		r.Post("/api/retention", h.retention)
		r.Post("/api/handoff", h.handoff)
		r.Post("/api/summary", h.generateSummary)

		r.Get("/api/version", h.getServerVersion)
	})

	return router
}
