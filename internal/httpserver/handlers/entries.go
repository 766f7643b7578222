package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MrSnakeDoc/songjournal/internal/domain"
	"github.com/MrSnakeDoc/songjournal/internal/httpserver/deps"
	"github.com/MrSnakeDoc/songjournal/internal/journal"
	"github.com/MrSnakeDoc/songjournal/internal/logger"
)

const maxSubmitBytes = 64 << 10

// entryResponse is an entry as rendered by the API, with its derived fields.
type entryResponse struct {
	domain.Entry
	Moods    []string `json:"moods"`
	EmbedURL string   `json:"embedUrl,omitempty"`
}

type listResponse struct {
	Count   int             `json:"count"`
	Entries []entryResponse `json:"entries"`
}

type submitRequest struct {
	Link        string   `json:"link"`
	Note        string   `json:"note"`
	Moods       []string `json:"moods"`       // preset tags, toggled in order
	CustomMoods []string `json:"customMoods"` // free-text tags, added once
}

func toResponse(e domain.Entry) entryResponse {
	moods := e.Moods()
	if moods == nil {
		moods = []string{}
	}
	return entryResponse{
		Entry:    e,
		Moods:    moods,
		EmbedURL: e.EmbedURL(),
	}
}

// ListEntries returns the whole journal, newest first
func ListEntries(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := d.Journal.Entries()

		resp := listResponse{
			Count:   len(entries),
			Entries: make([]entryResponse, 0, len(entries)),
		}
		for _, e := range entries {
			resp.Entries = append(resp.Entries, toResponse(e))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// CreateEntry admits a submission into the journal
func CreateEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSubmitBytes)).Decode(&req); err != nil {
			d.Logger.Debug("invalid submission body", logger.Error(err))
			writeMessage(w, http.StatusBadRequest, "Request body must be a JSON object.")
			return
		}

		form := &journal.Form{Link: req.Link, Note: req.Note}
		for _, m := range req.Moods {
			form.ToggleMood(m)
		}
		for _, m := range req.CustomMoods {
			form.CustomMood = m
			form.CommitCustomMood()
		}

		entry, err := d.Admitter.Submit(r.Context(), form)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidTrackLink) {
				writeMessage(w, http.StatusUnprocessableEntity, domain.InvalidTrackLinkMessage)
				return
			}
			d.Logger.Error("failed to add entry", logger.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Could not add the entry.")
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(entry))
	}
}

// ClearEntries empties the journal. The caller must pass confirm=true.
func ClearEntries(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

		if err := d.Journal.Clear(r.Context(), confirmed); err != nil {
			if errors.Is(err, journal.ErrClearNotConfirmed) {
				writeMessage(w, http.StatusConflict, "Clear all entries? Repeat the request with confirm=true.")
				return
			}
			d.Logger.Error("failed to clear journal", logger.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Could not clear the journal.")
			return
		}

		d.Logger.Info("journal cleared via endpoint",
			logger.String("remote_ip", r.RemoteAddr))
		w.WriteHeader(http.StatusNoContent)
	}
}

// Today returns the most recent entry added today
func Today(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry, ok := d.Journal.Today()
		if !ok {
			writeMessage(w, http.StatusNotFound, "No entry yet for today.")
			return
		}
		writeJSON(w, http.StatusOK, toResponse(entry))
	}
}
