package schedule

import "time"

// Daily fires once a day at Hour:Minute in Location. Runs missed while
// the process was down are not replayed.
type Daily struct {
	Hour     int
	Minute   int
	Location *time.Location
	// Start is the first day a run may fire on. Zero means no limit.
	Start time.Time
}

// Next returns the first fire time strictly after t.
func (d Daily) Next(t time.Time) time.Time {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}

	if !d.Start.IsZero() && t.Before(d.Start) {
		t = d.Start.Add(-time.Nanosecond)
	}

	local := t.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), d.Hour, d.Minute, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, d.Hour, d.Minute, 0, 0, loc)
	}
	return next
}
