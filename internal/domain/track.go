package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MinTrackIDLength is the canonical length of a provider track identifier.
const MinTrackIDLength = 22

// InvalidTrackLinkMessage is shown to the user when a submission is rejected.
const InvalidTrackLinkMessage = "Please enter a valid Spotify track link."

// ErrInvalidTrackLink is returned when no identifier can be extracted from user input.
var ErrInvalidTrackLink = errors.New("invalid track link")

var (
	// track/<id> in URLs, track:<id> in URIs
	trackRefPattern = regexp.MustCompile(fmt.Sprintf(`(?i)track[/:]([A-Za-z0-9]{%d,})`, MinTrackIDLength))
	bareIDPattern   = regexp.MustCompile(fmt.Sprintf(`^[A-Za-z0-9]{%d,}$`, MinTrackIDLength))
)

// ExtractTrackID returns the track identifier contained in a link, URI or bare ID.
//
// Examples:
//
//	"https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC" -> "4uLU6hMCjMI75M1A2tKUQC"
//	"spotify:track:4uLU6hMCjMI75M1A2tKUQC"                  -> "4uLU6hMCjMI75M1A2tKUQC"
//	"4uLU6hMCjMI75M1A2tKUQC"                                -> "4uLU6hMCjMI75M1A2tKUQC"
//	"not-a-real-link"                                       -> "", false
func ExtractTrackID(input string) (string, bool) {
	if input == "" {
		return "", false
	}

	if m := trackRefPattern.FindStringSubmatch(input); m != nil {
		return m[1], true
	}

	trimmed := strings.TrimSpace(input)
	if bareIDPattern.MatchString(trimmed) {
		return trimmed, true
	}

	return "", false
}
