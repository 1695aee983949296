package domain

import (
	"encoding/json"
	"time"
)

// DateOnly is a calendar date marshaled as an ISO "YYYY-MM-DD" string.
// Invoice dates are stored and exchanged in this format.
type DateOnly struct {
	time.Time
}

// NewDate builds a DateOnly from a time, dropping the clock portion.
func NewDate(t time.Time) DateOnly {
	return DateOnly{Time: t.Truncate(24 * time.Hour)}
}

// Today returns the current calendar date in UTC.
func Today() DateOnly {
	now := time.Now().UTC()
	return DateOnly{Time: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
}

// String renders the date in ISO format.
func (d DateOnly) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// UnmarshalJSON parses date-only strings, treating empty and null as zero.
func (d *DateOnly) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON renders the date as "YYYY-MM-DD", or null when zero.
func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}
