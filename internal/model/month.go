package model

import (
	"fmt"
	"time"
)

// Month is a calendar month ("YYYY-MM"). The zero value means unknown and
// excludes a row from monthly aggregation.
type Month struct {
	Year int
	Mon  time.Month
}

// MonthOf returns the Month containing t, or the zero Month for a zero time.
func MonthOf(t time.Time) Month {
	if t.IsZero() {
		return Month{}
	}
	return Month{Year: t.Year(), Mon: t.Month()}
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("parsing month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// IsZero reports whether the month is unknown.
func (m Month) IsZero() bool {
	return m.Year == 0
}

func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Mon))
}

// Before reports whether m precedes o in calendar order.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Mon < o.Mon
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	if m.Mon == time.December {
		return Month{Year: m.Year + 1, Mon: time.January}
	}
	return Month{Year: m.Year, Mon: m.Mon + 1}
}

// FirstDay returns midnight UTC on the first day of the month.
func (m Month) FirstDay() time.Time {
	return time.Date(m.Year, m.Mon, 1, 0, 0, 0, 0, time.UTC)
}

// MonthRange returns every month from lo through hi inclusive.
func MonthRange(lo, hi Month) []Month {
	if lo.IsZero() || hi.IsZero() || hi.Before(lo) {
		return nil
	}
	var months []Month
	for m := lo; !hi.Before(m); m = m.Next() {
		months = append(months, m)
	}
	return months
}
