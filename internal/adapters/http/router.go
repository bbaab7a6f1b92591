package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/viralforge/fantasymanager/internal/application"
)

// Handler is the HTTP adapter over the fantasy team use-cases.
type Handler struct {
	service *application.Service
}

func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

// NewRouter mounts the API under /api. Every failure, including unknown
// routes and panics, leaves through the error translator.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(accessLogMiddleware)
	r.Use(recoverMiddleware)
	r.NotFound(handler.notFound)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Route("/api", func(r chi.Router) {
		r.Get("/docs", handler.swaggerUI)
		r.Get("/openapi.yaml", handler.swaggerSpec)

		r.Route("/fTeams", func(r chi.Router) {
			// chi never binds an empty trailing segment, so the bare and
			// slash-terminated forms are mounted too and fail validation.
			for _, prefix := range []string{"/matches", "/matches/"} {
				r.Get(prefix, handler.listMatchFantasyTeams)
			}
			r.Get("/matches/{matchId}", handler.listMatchFantasyTeams)

			r.Route("/user/{userId}/matches", func(r chi.Router) {
				r.Get("/", handler.listUserFantasyTeams)
				r.Get("/{matchId}", handler.listUserFantasyTeams)

				r.Route("/{matchId}/fTeams", func(r chi.Router) {
					r.Get("/", handler.getFantasyTeam)
					r.Delete("/", handler.deleteFantasyTeam)
					r.Get("/{fantasyTeamId}", handler.getFantasyTeam)
					r.Delete("/{fantasyTeamId}", handler.deleteFantasyTeam)
					r.Put("/{fantasyTeamId}/players", handler.updateFantasyTeamPlayers)
				})
			})
		})
	})

	return r
}
