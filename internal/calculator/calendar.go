package calculator

import "time"

// BusinessDays lists every weekday in [start, end], midnight UTC, ascending.
// Market holidays are not modeled; a holiday simply scores against the data
// available through its eve.
func BusinessDays(start, end time.Time) []time.Time {
	var days []time.Time
	for d := Midnight(start); !d.After(Midnight(end)); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		days = append(days, d)
	}
	return days
}

// Midnight truncates a time to midnight UTC, discarding any zone offset.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
