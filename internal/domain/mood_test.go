package domain

import "testing"

func TestMoodSelectionToggle(t *testing.T) {
	var s MoodSelection

	s.Toggle("happy")
	s.Toggle("chill")
	if got := s.Join(); got != "happy, chill" {
		t.Fatalf("Join() = %q, want %q", got, "happy, chill")
	}

	// selecting twice deselects
	s.Toggle("happy")
	if s.Contains("happy") {
		t.Error("happy should be deselected after second toggle")
	}
	if got := s.Join(); got != "chill" {
		t.Errorf("Join() = %q, want %q", got, "chill")
	}
}

func TestMoodSelectionAdd(t *testing.T) {
	var s MoodSelection

	if !s.Add("  rainy day ") {
		t.Error("Add() should accept a new tag")
	}
	if s.Add("rainy day") {
		t.Error("Add() should ignore an exact duplicate")
	}
	if s.Add("   ") {
		t.Error("Add() should ignore blank input")
	}
	if !s.Add("Rainy Day") {
		t.Error("Add() dedup is case-sensitive")
	}

	tags := s.Tags()
	if len(tags) != 2 || tags[0] != "rainy day" || tags[1] != "Rainy Day" {
		t.Errorf("Tags() = %v", tags)
	}
}

func TestMoodSelectionMixed(t *testing.T) {
	var s MoodSelection
	s.Toggle("sad")
	s.Add("sad")
	s.Add("monday")

	if got := s.Join(); got != "sad, monday" {
		t.Errorf("Join() = %q, want %q", got, "sad, monday")
	}

	s.Reset()
	if got := s.Join(); got != "" {
		t.Errorf("Join() after Reset = %q, want empty", got)
	}
	if len(s.Tags()) != 0 {
		t.Error("Tags() after Reset should be empty")
	}
}

func TestMoodSelectionTagsIsCopy(t *testing.T) {
	var s MoodSelection
	s.Toggle("happy")

	tags := s.Tags()
	tags[0] = "mutated"

	if !s.Contains("happy") {
		t.Error("mutating Tags() result must not affect the selection")
	}
}
