package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/songjournal/internal/httpserver/deps"
	"github.com/MrSnakeDoc/songjournal/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/songjournal/internal/httpserver/mw"
)

func init() { Register(registerToday) }

func registerToday(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/api/today", handlers.Today(d))
}
