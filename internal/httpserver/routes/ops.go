package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/songjournal/internal/httpserver/deps"
	"github.com/MrSnakeDoc/songjournal/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/songjournal/internal/httpserver/mw"
)

func init() { Register(registerOps) }

// Operator endpoints share the CIDR allow-list; reload also checks the Host header.
func registerOps(r chi.Router, d deps.Deps) {
	r.Group(func(r chi.Router) {
		r.Use(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger))

		r.Get("/readyz", handlers.Readyz(d))
		r.Get("/infra", handlers.Infra(d))
		r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Post("/reload", handlers.Reload(d))
	})
}
