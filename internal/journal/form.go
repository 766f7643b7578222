package journal

import (
	"context"
	"strings"

	"github.com/MrSnakeDoc/songjournal/internal/domain"
	"github.com/MrSnakeDoc/songjournal/internal/logger"
	"github.com/MrSnakeDoc/songjournal/internal/oembed"
)

// Enricher resolves best-effort metadata for a track. It never fails.
type Enricher interface {
	Enrich(ctx context.Context, rawLink, trackID string) oembed.Metadata
}

// Form holds the user's pending input for the next entry.
type Form struct {
	Link       string
	Note       string
	CustomMood string
	Moods      domain.MoodSelection
}

// ToggleMood selects or deselects a preset tag.
func (f *Form) ToggleMood(tag string) {
	f.Moods.Toggle(tag)
}

// CommitCustomMood adds the typed custom mood to the selection and clears
// the text field. Blank text is left untouched.
func (f *Form) CommitCustomMood() {
	if strings.TrimSpace(f.CustomMood) == "" {
		return
	}
	f.Moods.Add(f.CustomMood)
	f.CustomMood = ""
}

// Reset empties every field.
func (f *Form) Reset() {
	f.Link = ""
	f.Note = ""
	f.CustomMood = ""
	f.Moods.Reset()
}

// Admitter turns a submitted form into a journal entry.
type Admitter struct {
	journal  *Journal
	enricher Enricher
	logger   logger.Logger
}

// NewAdmitter creates an Admitter. A nil enricher stores placeholder metadata.
func NewAdmitter(j *Journal, enricher Enricher, log logger.Logger) *Admitter {
	return &Admitter{
		journal:  j,
		enricher: enricher,
		logger:   log,
	}
}

// Submit validates the form, enriches it and adds the entry to the journal.
//
// When the link holds no track identifier, domain.ErrInvalidTrackLink is
// returned and neither the journal nor the form change. On success the
// form is reset.
func (a *Admitter) Submit(ctx context.Context, f *Form) (domain.Entry, error) {
	trackID, ok := domain.ExtractTrackID(f.Link)
	if !ok {
		a.logger.Info("submission rejected, no track id in link",
			logger.String("link", f.Link))
		return domain.Entry{}, domain.ErrInvalidTrackLink
	}

	md := oembed.Placeholder()
	if a.enricher != nil {
		md = a.enricher.Enrich(ctx, f.Link, trackID)
	}

	entry, err := a.journal.Add(ctx, Draft{
		Mood:      f.Moods.Join(),
		Note:      f.Note,
		TrackID:   trackID,
		RawLink:   f.Link,
		Title:     md.Title,
		Artist:    md.Artist,
		Thumbnail: md.ThumbnailPtr(),
	})
	if err != nil {
		return domain.Entry{}, err
	}

	f.Reset()
	return entry, nil
}
