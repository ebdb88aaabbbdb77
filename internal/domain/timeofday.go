package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time within a day, stored as minutes since
// midnight. The wire and display form is "HH:MM". Schedule comparisons
// happen on this type rather than on raw strings so that overlap math
// is independent of formatting.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" (24h, zero-padded) into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// MustTimeOfDay is ParseTimeOfDay that panics on error. For constants and tests.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Minutes returns the total minutes since midnight.
func (t TimeOfDay) Minutes() int { return int(t) }

// Add returns the time of day shifted by the given number of minutes.
func (t TimeOfDay) Add(minutes int) TimeOfDay { return t + TimeOfDay(minutes) }

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool { return t < other }

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool { return t > other }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalJSON encodes the time as a "HH:MM" JSON string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a "HH:MM" JSON string.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer; the column type is postgres "time".
func (t TimeOfDay) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute()), nil
}

// Scan implements sql.Scanner for postgres "time" columns, which lib/pq
// returns as either time.Time, []byte, or string depending on the query.
func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return fmt.Errorf("cannot scan NULL into TimeOfDay; use NullTimeOfDay")
	case time.Time:
		*t = TimeOfDay(v.Hour()*60 + v.Minute())
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// NullTimeOfDay is a TimeOfDay that may be NULL, mirroring sql.NullTime.
type NullTimeOfDay struct {
	TimeOfDay TimeOfDay
	Valid     bool
}

func (n *NullTimeOfDay) Scan(src any) error {
	if src == nil {
		n.TimeOfDay, n.Valid = 0, false
		return nil
	}
	n.Valid = true
	return n.TimeOfDay.Scan(src)
}

func (n NullTimeOfDay) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.TimeOfDay.Value()
}

// Ptr returns a pointer to the time, or nil when NULL.
func (n NullTimeOfDay) Ptr() *TimeOfDay {
	if !n.Valid {
		return nil
	}
	t := n.TimeOfDay
	return &t
}

// NullTimeOfDayFrom builds a NullTimeOfDay from an optional time.
func NullTimeOfDayFrom(t *TimeOfDay) NullTimeOfDay {
	if t == nil {
		return NullTimeOfDay{}
	}
	return NullTimeOfDay{TimeOfDay: *t, Valid: true}
}
