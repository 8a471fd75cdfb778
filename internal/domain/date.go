package domain

import (
	"fmt"
	"strings"
	"time"
)

// Date is a time.Time that also accepts plain "2006-01-02" strings when
// decoding JSON. Clients send calendar dates for trip and stop ranges;
// stored records use full RFC 3339 timestamps.
type Date struct {
	t time.Time
}

// NewDate wraps t.
func NewDate(t time.Time) Date { return Date{t: t} }

// Time returns the underlying time value (UTC midnight for date-only input).
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether the date was never set.
func (d Date) IsZero() bool { return d.t.IsZero() }

// UnmarshalJSON accepts RFC 3339 timestamps, "2006-01-02" dates, and null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.t = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.t = t
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD or RFC 3339", ErrValidation, s)
	}
	d.t = t.UTC()
	return nil
}

// MarshalJSON writes the RFC 3339 form, or null for the zero value.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.t.Format(time.RFC3339) + `"`), nil
}
