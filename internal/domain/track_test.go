package domain

import "testing"

func TestExtractTrackID(t *testing.T) {
	const id = "4uLU6hMCjMI75M1A2tKUQC"

	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{
			name:   "web link",
			input:  "https://open.spotify.com/track/" + id,
			wantID: id,
			wantOK: true,
		},
		{
			name:   "web link with query string",
			input:  "https://open.spotify.com/track/" + id + "?si=abc123",
			wantID: id,
			wantOK: true,
		},
		{
			name:   "spotify uri",
			input:  "spotify:track:" + id,
			wantID: id,
			wantOK: true,
		},
		{
			name:   "uppercase prefix",
			input:  "SPOTIFY:TRACK:" + id,
			wantID: id,
			wantOK: true,
		},
		{
			name:   "link embedded in text",
			input:  "listen to this https://open.spotify.com/intl-fr/track/" + id + " now",
			wantID: id,
			wantOK: true,
		},
		{
			name:   "bare id",
			input:  id,
			wantID: id,
			wantOK: true,
		},
		{
			name:   "bare id with surrounding whitespace",
			input:  "  " + id + "\n",
			wantID: id,
			wantOK: true,
		},
		{
			name:   "longer token is kept whole",
			input:  "spotify:track:" + id + "XYZ",
			wantID: id + "XYZ",
			wantOK: true,
		},
		{
			name:   "not a link",
			input:  "not-a-real-link",
			wantOK: false,
		},
		{
			name:   "empty",
			input:  "",
			wantOK: false,
		},
		{
			name:   "token too short after track/",
			input:  "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQ",
			wantOK: false,
		},
		{
			name:   "bare token too short",
			input:  "4uLU6hMCjMI75M1A2tKUQ",
			wantOK: false,
		},
		{
			name:   "bare id with text around it",
			input:  "id " + id,
			wantOK: false,
		},
		{
			name:   "album link",
			input:  "https://open.spotify.com/album/" + id,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractTrackID(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ExtractTrackID(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.wantID {
				t.Errorf("ExtractTrackID(%q) = %q, want %q", tt.input, got, tt.wantID)
			}
		})
	}
}

func TestEntryEmbedURL(t *testing.T) {
	e := Entry{TrackID: "4uLU6hMCjMI75M1A2tKUQC"}
	if got, want := e.EmbedURL(), "https://open.spotify.com/embed/track/4uLU6hMCjMI75M1A2tKUQC"; got != want {
		t.Errorf("EmbedURL() = %q, want %q", got, want)
	}

	legacy := Entry{RawLink: "something else"}
	if legacy.Embeddable() {
		t.Error("entry without track id should not be embeddable")
	}
	if got := legacy.EmbedURL(); got != "" {
		t.Errorf("EmbedURL() = %q, want empty", got)
	}
}

func TestEntryMoods(t *testing.T) {
	tests := []struct {
		mood string
		want []string
	}{
		{mood: "", want: nil},
		{mood: "happy", want: []string{"happy"}},
		{mood: "happy, chill", want: []string{"happy", "chill"}},
		{mood: " happy ,, late night ", want: []string{"happy", "late night"}},
	}

	for _, tt := range tests {
		got := Entry{Mood: tt.mood}.Moods()
		if len(got) != len(tt.want) {
			t.Fatalf("Moods(%q) = %v, want %v", tt.mood, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Moods(%q)[%d] = %q, want %q", tt.mood, i, got[i], tt.want[i])
			}
		}
	}
}
