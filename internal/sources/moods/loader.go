package moods

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when a moods file declares no usable tag.
var ErrEmpty = errors.New("moods file declares no moods")

// Loader handles loading and parsing of the preset moods file
type Loader struct {
	filePath string
}

// NewLoader creates a new moods loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Path returns the file being loaded
func (l *Loader) Path() string {
	return l.filePath
}

// Load reads the file and returns its moods, trimmed and deduplicated in file order
func (l *Loader) Load() ([]string, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read moods file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a moods document
func Parse(data []byte) ([]string, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse moods yaml: %w", err)
	}

	seen := make(map[string]bool, len(f.Moods))
	out := make([]string, 0, len(f.Moods))
	for _, m := range f.Moods {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}

	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}
