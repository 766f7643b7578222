package index

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/songjournal/internal/domain"
)

// MoodCatalog holds the preset mood tags offered to the user.
// It starts with domain.DefaultMoods and is replaced wholesale on reload.
type MoodCatalog struct {
	mu         sync.RWMutex
	moods      []string
	source     string    // "builtin" or the file path
	lastReload time.Time // zero until a file was loaded
}

// NewMoodCatalog creates a catalog seeded with the built-in moods
func NewMoodCatalog() *MoodCatalog {
	moods := make([]string, len(domain.DefaultMoods))
	copy(moods, domain.DefaultMoods)
	return &MoodCatalog{
		moods:  moods,
		source: "builtin",
	}
}

// Update replaces all moods in the catalog. An empty list is ignored.
func (c *MoodCatalog) Update(moods []string, source string) {
	if len(moods) == 0 {
		return
	}

	next := make([]string, len(moods))
	copy(next, moods)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.moods = next
	c.source = source
	c.lastReload = time.Now()
}

// All returns the moods in display order
func (c *MoodCatalog) All() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(c.moods))
	copy(out, c.moods)
	return out
}

// Contains reports whether tag is a preset mood
func (c *MoodCatalog) Contains(tag string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, m := range c.moods {
		if m == tag {
			return true
		}
	}
	return false
}

// Count returns the number of preset moods
func (c *MoodCatalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.moods)
}

// Source returns where the current moods came from
func (c *MoodCatalog) Source() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.source
}

// GetLastReload returns the timestamp of the last file reload
func (c *MoodCatalog) GetLastReload() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastReload
}
