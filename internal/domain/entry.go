package domain

import (
	"strings"
	"time"
)

const (
	// UnknownTitle is stored when no metadata could be fetched for a track.
	UnknownTitle = "Unknown track"

	// EmbedBaseURL is the player endpoint addressed by a track identifier.
	EmbedBaseURL = "https://open.spotify.com/embed/track/"
)

// Entry represents a single journal record.
//
// An Entry is created exactly once on submission and never mutated.
// It only leaves the journal when the whole collection is cleared.
type Entry struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the creation time in Unix milliseconds.
	ID int64 `json:"id"`

	// Date is the creation timestamp (UTC, millisecond precision).
	Date time.Time `json:"date"`

	// ─────────────────────────────
	// User input
	// ─────────────────────────────

	// Mood is the comma-joined set of selected tags.
	// Example: "happy, chill"
	Mood string `json:"mood"`

	// Note is the free-text reason this track fits the day.
	Note string `json:"note"`

	// TrackID is the identifier extracted from RawLink.
	// Empty only for rows written before identifiers were required.
	TrackID string `json:"trackId,omitempty"`

	// RawLink is the link or URI exactly as the user typed it.
	RawLink string `json:"rawLink"`

	// ─────────────────────────────
	// Metadata (best effort)
	// ─────────────────────────────

	Title     string  `json:"title"`
	Artist    string  `json:"artist"`
	Thumbnail *string `json:"thumbnail"`
}

// Moods splits the stored mood string back into trimmed tags.
func (e Entry) Moods() []string {
	if strings.TrimSpace(e.Mood) == "" {
		return nil
	}
	parts := strings.Split(e.Mood, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Embeddable reports whether the entry carries a track identifier.
func (e Entry) Embeddable() bool {
	return e.TrackID != ""
}

// EmbedURL returns the player URL for the entry, or "" when it has no track.
func (e Entry) EmbedURL() string {
	if !e.Embeddable() {
		return ""
	}
	return EmbedBaseURL + e.TrackID
}
