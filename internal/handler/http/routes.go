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

	// routes without authorization: profile and session management mirrors
	// the open-access model of the original client-side store
	router.Group(func(r chi.Router) {
		r.Post("/api/profile/register", h.register)
		r.Post("/api/profile/login", h.login)
		r.Post("/api/profile/logout", h.logout)
		r.Get("/api/session", h.session)
		r.Get("/api/profiles", h.listProfiles)
		r.Delete("/api/profiles/{id}", h.deleteProfile)
		r.Post("/api/admin/reset", h.resetAll)
		r.Post("/api/admin/verify", h.verifyOwner)
		r.Get("/api/compare", h.compare)
	})

	// oracle-backed routes require a bearer token issued at register/login
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/vibe", h.analyzeVibe)
		r.Post("/api/vibe/auto", h.scheduleAutoMatches)
		r.Get("/api/matches/auto", h.autoMatches)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
