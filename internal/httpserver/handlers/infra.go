package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/songjournal/internal/httpserver/deps"
)

type componentStatus struct {
	OK          bool   `json:"ok"`
	Backend     string `json:"backend,omitempty"`
	Entries     *int   `json:"entries,omitempty"`
	LastSaved   string `json:"last_saved,omitempty"`
	MoodsLoaded *int   `json:"moods_loaded,omitempty"`
	Source      string `json:"source,omitempty"`
	LastReload  string `json:"last_reload,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Error       string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"storage":  storageStatus(d),
			"moods":    moodsStatus(d),
			"metadata": metadataStatus(d),
		}
		if d.RedisClient != nil {
			components["redis"] = checkRedis(r.Context(), d)
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

func determineMode(components map[string]componentStatus) string {
	// Memory and slot out of sync: entries may be lost on restart
	if storage, exists := components["storage"]; exists && !storage.OK {
		return "degraded"
	}

	if redis, exists := components["redis"]; exists && !redis.OK {
		return "degraded"
	}

	return "optimal"
}

func storageStatus(d deps.Deps) componentStatus {
	st := d.Journal.Status()
	entries := st.Entries

	cs := componentStatus{
		OK:        st.InSync,
		Backend:   st.Backend,
		Entries:   &entries,
		LastSaved: formatTime(st.LastSaved),
		Error:     st.LastError,
	}
	if !st.InSync {
		cs.Impact = "unsaved-entries-lost-on-restart"
	}
	return cs
}

func moodsStatus(d deps.Deps) componentStatus {
	count := d.Moods.Count()
	return componentStatus{
		OK:          count > 0,
		MoodsLoaded: &count,
		Source:      d.Moods.Source(),
		LastReload:  formatTime(d.Moods.GetLastReload()),
	}
}

func metadataStatus(d deps.Deps) componentStatus {
	mode := "uncached"
	if d.MetadataCache {
		mode = "cached"
	}
	return componentStatus{
		OK:      true,
		Backend: d.OEmbedEndpoint,
		Mode:    mode,
		Impact:  "best-effort",
	}
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "journal-writes-failing",
			Error:  err.Error(),
		}
	}

	return componentStatus{
		OK:   true,
		Mode: "optimal",
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format("2006-01-02 15:04:05")
}
