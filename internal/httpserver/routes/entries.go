package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/songjournal/internal/httpserver/deps"
	"github.com/MrSnakeDoc/songjournal/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/songjournal/internal/httpserver/mw"
)

func init() { Register(registerEntries) }

func registerEntries(r chi.Router, d deps.Deps) {
	host := mw.EnforceHost(d.AllowedHosts, d.Logger)
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateLimitBurst,
		RefillPerIPPerMin: d.RateLimitPerMin,
		MaxEntries:        10000,
		TrustProxy:        d.TrustProxy,
	})

	r.Route("/api/entries", func(r chi.Router) {
		r.Use(host)
		r.Get("/", handlers.ListEntries(d))
		r.With(limit).Post("/", handlers.CreateEntry(d))
		r.Delete("/", handlers.ClearEntries(d))
	})
}
