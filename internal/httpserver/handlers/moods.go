package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/songjournal/internal/httpserver/deps"
)

type moodsResponse struct {
	Moods  []string `json:"moods"`
	Source string   `json:"source"`
}

// Moods lists the preset mood tags
func Moods(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, moodsResponse{
			Moods:  d.Moods.All(),
			Source: d.Moods.Source(),
		})
	}
}
