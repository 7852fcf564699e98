package main

import (
	"expvar"
	"github.com/go-chi/chi/v5"
	"net/http"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	// Router
	router.NotFound(app.notFoundResponse)
	router.MethodNotAllowed(app.methodNotAllowedRequest)

	// Middleware
	router.Use(app.metrics)
	router.Use(app.recoverPanic)
	router.Use(app.enableCORS)
	router.Use(app.rateLimit)

	// Healthcheck
	router.Get("/v1/healthcheck", app.HealthCheck)
	router.Method(http.MethodGet, "/v1/metrics", expvar.Handler())

	// Player Endpoints
	router.Route("/v1/player", func(router chi.Router) {
		router.Post("/", app.AddPlayer)
		router.Get("/{id}", app.GetPlayer)
		router.Delete("/{id}", app.RemovePlayer)
	})

	// Roster Endpoints
	router.Route("/v1/roster", func(router chi.Router) {
		router.Post("/import", app.ImportRoster)
		router.Get("/template", app.RosterTemplate)
		router.Post("/reset", app.ResetAllStats)
		router.Delete("/", app.ClearRoster)
	})

	// Action Endpoints
	router.Get("/v1/action", app.ListActions)
	router.Post("/v1/action", app.ApplyAction)
	router.Post("/v1/undo", app.UndoAction)

	// Box Score Endpoints
	router.Get("/v1/boxscore", app.GetBoxScore)
	router.Get("/v1/boxscore/export", app.ExportBoxScore)
	router.Get("/v1/boxscore/watch", app.WatchBoxScore)

	return router
}
