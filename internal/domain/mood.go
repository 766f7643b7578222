package domain

import "strings"

// MoodSeparator joins selected tags into Entry.Mood.
const MoodSeparator = ", "

// DefaultMoods is the preset vocabulary offered when no moods file is configured.
var DefaultMoods = []string{
	"happy",
	"chill",
	"energetic",
	"sad",
	"nostalgic",
	"romantic",
	"angry",
	"focused",
	"dreamy",
	"inspired",
}

// MoodSelection is the ordered set of tags selected for the next entry.
// The zero value is an empty selection ready to use.
type MoodSelection struct {
	tags []string
}

// Toggle selects tag if absent and deselects it if present.
func (s *MoodSelection) Toggle(tag string) {
	if i := s.index(tag); i >= 0 {
		s.tags = append(s.tags[:i], s.tags[i+1:]...)
		return
	}
	s.tags = append(s.tags, tag)
}

// Add selects a free-text tag once. Blank input is ignored.
// Returns true when the tag was newly added.
func (s *MoodSelection) Add(custom string) bool {
	tag := strings.TrimSpace(custom)
	if tag == "" || s.index(tag) >= 0 {
		return false
	}
	s.tags = append(s.tags, tag)
	return true
}

// Contains reports whether tag is currently selected.
func (s *MoodSelection) Contains(tag string) bool {
	return s.index(tag) >= 0
}

// Tags returns a copy of the selected tags in selection order.
func (s *MoodSelection) Tags() []string {
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}

// Join returns the tags as stored in Entry.Mood.
func (s *MoodSelection) Join() string {
	return strings.Join(s.tags, MoodSeparator)
}

// Reset clears the selection.
func (s *MoodSelection) Reset() {
	s.tags = nil
}

func (s *MoodSelection) index(tag string) int {
	for i, t := range s.tags {
		if t == tag {
			return i
		}
	}
	return -1
}
