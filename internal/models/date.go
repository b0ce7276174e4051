package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const (
	layoutDate = "2006-01-02"
)

// Date is a calendar date carried over JSON as "YYYY-MM-DD" or RFC3339.
// Values without a time-of-day component are written back as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate wraps t, normalized to UTC.
func NewDate(t time.Time) Date {
	return Date{Time: t.UTC()}
}

// ParseDate accepts "YYYY-MM-DD" or RFC3339 (with optional fractional seconds).
func ParseDate(s string) (Date, error) {
	for _, layout := range []string{layoutDate, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC3339", s)
}

// MustDate is ParseDate for literals; it panics on bad input.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) dateOnly() bool {
	t := d.Time.UTC()
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// String renders the date the same way it is marshaled.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	if d.dateOnly() {
		return d.Time.UTC().Format(layoutDate)
	}
	return d.Time.UTC().Format(time.RFC3339Nano)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
