package domain

import (
	"testing"
	"time"
)

func TestSelectToday(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	now := time.Date(2026, 10, 15, 9, 0, 0, 0, paris)

	first := Entry{ID: 1, Date: time.Date(2026, 10, 15, 6, 0, 0, 0, time.UTC)}
	second := Entry{ID: 2, Date: time.Date(2026, 10, 15, 6, 30, 0, 0, time.UTC)}
	yesterday := Entry{ID: 3, Date: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)}
	// 23:30 UTC on the 14th is already the 15th in Paris
	lateUTC := Entry{ID: 4, Date: time.Date(2026, 10, 14, 23, 30, 0, 0, time.UTC)}

	tests := []struct {
		name    string
		entries []Entry
		wantID  int64
		wantOK  bool
	}{
		{
			name:    "newest first wins",
			entries: []Entry{second, first, yesterday},
			wantID:  2,
			wantOK:  true,
		},
		{
			name:    "no entry today",
			entries: []Entry{yesterday},
			wantOK:  false,
		},
		{
			name:    "empty list",
			entries: nil,
			wantOK:  false,
		},
		{
			name:    "calendar day in location, not utc",
			entries: []Entry{lateUTC, yesterday},
			wantID:  4,
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectToday(tt.entries, now, paris)
			if ok != tt.wantOK {
				t.Fatalf("SelectToday() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.ID != tt.wantID {
				t.Errorf("SelectToday() id = %d, want %d", got.ID, tt.wantID)
			}
		})
	}
}

func TestSelectTodayIsNotA24hWindow(t *testing.T) {
	now := time.Date(2026, 10, 15, 0, 10, 0, 0, time.UTC)
	twentyMinutesAgo := Entry{ID: 1, Date: now.Add(-20 * time.Minute)}

	if _, ok := SelectToday([]Entry{twentyMinutesAgo}, now, time.UTC); ok {
		t.Error("entry from the previous calendar day must not be selected")
	}
}
