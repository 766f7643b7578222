package domain

import "time"

// SelectToday returns the first entry, in list order, dated on the same
// calendar day as now in loc. A nil loc means time.Local.
func SelectToday(entries []Entry, now time.Time, loc *time.Location) (Entry, bool) {
	if loc == nil {
		loc = time.Local
	}

	y, m, d := now.In(loc).Date()
	for _, e := range entries {
		ey, em, ed := e.Date.In(loc).Date()
		if ey == y && em == m && ed == d {
			return e, true
		}
	}
	return Entry{}, false
}
