package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/songjournal/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
}

// Readyz reports ready once the journal is loaded and, with the redis backend, redis answers
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ready := d.Journal != nil
		if ready && d.RedisClient != nil {
			ctx, cancel := context.WithTimeout(r.Context(), time.Second)
			defer cancel()
			ready = d.RedisClient.Ping(ctx).Err() == nil
		}

		status := http.StatusOK
		if !ready {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, readyzResponse{Ready: ready})
	}
}
