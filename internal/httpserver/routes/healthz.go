package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/songjournal/internal/httpserver/deps"
	"github.com/MrSnakeDoc/songjournal/internal/httpserver/handlers"
)

func init() { Register(registerHealthz) }

// Liveness stays open so container probes never need a host or CIDR match
func registerHealthz(r chi.Router, d deps.Deps) {
	r.Get("/healthz", handlers.Healthz(d))
}
