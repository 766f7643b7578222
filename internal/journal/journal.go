// Package journal owns the ordered entry collection and its durable slot.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/songjournal/internal/domain"
	"github.com/MrSnakeDoc/songjournal/internal/logger"
	"github.com/MrSnakeDoc/songjournal/internal/store"
)

var (
	// ErrClearNotConfirmed is returned by Clear when the caller did not confirm.
	ErrClearNotConfirmed = errors.New("clearing the journal requires confirmation")

	// ErrMissingRawLink is returned by Add for a draft without the user's input.
	ErrMissingRawLink = errors.New("entry has no raw link")
)

// Slot is the single durable location holding the serialized journal.
// Read returns store.ErrNotFound when nothing was ever written.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// describer is implemented by slots that can name themselves.
type describer interface {
	Describe() string
}

// Options tunes a Journal. Zero values pick sensible defaults.
type Options struct {
	Now      func() time.Time // clock, defaults to time.Now
	Location *time.Location   // calendar used by Today, defaults to time.Local
}

// Draft carries everything an entry needs except its identity.
type Draft struct {
	Mood      string
	Note      string
	TrackID   string
	RawLink   string
	Title     string
	Artist    string
	Thumbnail *string
}

// SaveStatus describes the last write to the slot.
type SaveStatus struct {
	Backend   string    `json:"backend"`
	Entries   int       `json:"entries"`
	LastSaved time.Time `json:"last_saved"`
	LastError string    `json:"last_error,omitempty"`
	InSync    bool      `json:"in_sync"`
}

// Journal is the application state: the newest-first entry list and the
// slot it is mirrored to. It is safe for concurrent use.
type Journal struct {
	mu      sync.Mutex
	entries []domain.Entry
	lastID  int64

	slot   Slot
	logger logger.Logger
	now    func() time.Time
	loc    *time.Location

	lastSaved   time.Time
	lastSaveErr error
}

// New creates a journal and loads whatever the slot holds.
// A missing or unparsable payload yields an empty journal, never an error.
func New(ctx context.Context, slot Slot, log logger.Logger, opts Options) *Journal {
	j := &Journal{
		entries: []domain.Entry{},
		slot:    slot,
		logger:  log,
		now:     opts.Now,
		loc:     opts.Location,
	}
	if j.now == nil {
		j.now = time.Now
	}
	if j.loc == nil {
		j.loc = time.Local
	}

	j.load(ctx)
	return j
}

func (j *Journal) load(ctx context.Context) {
	data, err := j.slot.Read(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			j.logger.Info("no journal found in slot, starting empty")
		} else {
			j.logger.Warn("failed to read journal slot, starting empty",
				logger.Error(err))
		}
		return
	}

	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		j.logger.Warn("journal slot holds unparsable data, starting empty",
			logger.Int("bytes", len(data)),
			logger.Error(err))
		return
	}
	if entries == nil {
		entries = []domain.Entry{}
	}

	for _, e := range entries {
		if e.ID > j.lastID {
			j.lastID = e.ID
		}
	}
	j.entries = entries

	j.logger.Info("journal loaded",
		logger.Int("entries", len(entries)))
}

// Add stamps a draft with an id and date, prepends it and saves the journal.
// A failed save is logged and recorded but the entry stays in memory.
func (j *Journal) Add(ctx context.Context, d Draft) (domain.Entry, error) {
	if d.RawLink == "" {
		return domain.Entry{}, ErrMissingRawLink
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	id := now.UnixMilli()
	if id <= j.lastID {
		id = j.lastID + 1
	}
	j.lastID = id

	entry := domain.Entry{
		ID:        id,
		Date:      now.UTC().Truncate(time.Millisecond),
		Mood:      d.Mood,
		Note:      d.Note,
		TrackID:   d.TrackID,
		RawLink:   d.RawLink,
		Title:     d.Title,
		Artist:    d.Artist,
		Thumbnail: d.Thumbnail,
	}

	next := make([]domain.Entry, 0, len(j.entries)+1)
	next = append(next, entry)
	next = append(next, j.entries...)
	j.entries = next

	j.saveLocked(ctx)

	j.logger.Info("journal entry added",
		logger.Int64("id", entry.ID),
		logger.String("track_id", entry.TrackID),
		logger.Int("entries", len(j.entries)))

	return entry, nil
}

// Clear empties the journal and saves the empty state. It refuses to do
// anything unless confirmed is true.
func (j *Journal) Clear(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrClearNotConfirmed
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	removed := len(j.entries)
	j.entries = []domain.Entry{}
	j.saveLocked(ctx)

	j.logger.Info("journal cleared",
		logger.Int("removed", removed))
	return nil
}

// Entries returns a copy of the journal, newest first.
func (j *Journal) Entries() []domain.Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]domain.Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// Today returns the most recently added entry dated today.
func (j *Journal) Today() (domain.Entry, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return domain.SelectToday(j.entries, j.now(), j.loc)
}

// Status reports whether the slot reflects the in-memory journal.
func (j *Journal) Status() SaveStatus {
	j.mu.Lock()
	defer j.mu.Unlock()

	st := SaveStatus{
		Backend:   "unknown",
		Entries:   len(j.entries),
		LastSaved: j.lastSaved,
		InSync:    j.lastSaveErr == nil,
	}
	if d, ok := j.slot.(describer); ok {
		st.Backend = d.Describe()
	}
	if j.lastSaveErr != nil {
		st.LastError = j.lastSaveErr.Error()
	}
	return st
}

// saveLocked mirrors the whole list to the slot. Callers hold j.mu.
func (j *Journal) saveLocked(ctx context.Context) {
	// the save must outlive a client that hangs up mid-request
	ctx = context.WithoutCancel(ctx)

	data, err := json.Marshal(j.entries)
	if err == nil {
		err = j.slot.Write(ctx, data)
	}
	if err != nil {
		j.lastSaveErr = fmt.Errorf("save journal: %w", err)
		j.logger.Error("failed to persist journal, memory and slot now differ",
			logger.Int("entries", len(j.entries)),
			logger.Error(err))
		return
	}

	j.lastSaveErr = nil
	j.lastSaved = j.now()
}
